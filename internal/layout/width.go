package layout

import (
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// UsableWidth returns how many characters of tableWidth remain for cell
// content once the columns+1 vertical glyphs and the left and right padding
// of every cell are taken out. The result is clamped at zero.
func UsableWidth(tableWidth, singlePadWidth, columns int) (int, error) {
	if singlePadWidth < 0 {
		return 0, clierrors.InvalidArgument("usableWidth", "singlePadWidth", "must be >= 0, got %d", singlePadWidth)
	}
	if tableWidth < 1 {
		return 0, clierrors.InvalidArgument("usableWidth", "tableWidth", "must be >= 1, got %d", tableWidth)
	}
	if columns < 1 {
		return 0, clierrors.InvalidArgument("usableWidth", "columns", "must be >= 1, got %d", columns)
	}
	return max(0, tableWidth-(columns+1)-2*singlePadWidth*columns), nil
}
