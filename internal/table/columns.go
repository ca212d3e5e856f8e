package table

import (
	"fmt"
	"strconv"
	"strings"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/layout"
)

// ParseColumns parses a comma-separated column spec such as "ID:4,Title:6".
// A column without ":width" gets width 0, meaning it is sized later by
// InferWidths.
func ParseColumns(spec string) ([]Column, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var cols []Column
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, widthStr, hasWidth := strings.Cut(part, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, clierrors.NewUserError(fmt.Sprintf("invalid column spec %q", part), "Use name or name:width, e.g. --columns ID:4,Title:12")
		}
		col := Column{Name: name}
		if hasWidth {
			w, err := strconv.Atoi(strings.TrimSpace(widthStr))
			if err != nil || w < layout.MinChopWidth {
				return nil, clierrors.NewUserError(fmt.Sprintf("invalid width in column spec %q", part), fmt.Sprintf("Widths must be integers >= %d, e.g. --columns ID:4", layout.MinChopWidth))
			}
			col.Width = w
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// InferWidths sizes every column whose Width is 0 from its content: the
// longer of its name and its longest value, clamped to [layout.MinChopWidth,
// maxWidth]. A maxWidth <= 0 disables the upper bound.
func InferWidths(cols []Column, records []map[string]string, maxWidth int) []Column {
	out := make([]Column, len(cols))
	for i, c := range cols {
		if c.Width > 0 {
			out[i] = c
			continue
		}
		w := layout.CharCount(c.Name)
		for _, rec := range records {
			if n := layout.CharCount(rec[c.Name]); n > w {
				w = n
			}
		}
		if maxWidth > 0 && w > maxWidth {
			w = maxWidth
		}
		out[i] = Column{Name: c.Name, Width: max(w, layout.MinChopWidth)}
	}
	return out
}

// FitColumns shrinks the widest columns one character at a time until the
// rendered table is no wider than tableWidth, or every column is down to
// layout.MinChopWidth. It returns the adjusted columns and whether they fit.
func FitColumns(cols []Column, tableWidth, pad int) ([]Column, bool, error) {
	usable, err := layout.UsableWidth(tableWidth, pad, max(len(cols), 1))
	if err != nil {
		return nil, false, err
	}

	out := append([]Column(nil), cols...)
	for {
		total, widest := 0, -1
		for i, c := range out {
			total += c.Width
			if c.Width > layout.MinChopWidth && (widest < 0 || c.Width > out[widest].Width) {
				widest = i
			}
		}
		if total <= usable {
			return out, true, nil
		}
		if widest < 0 {
			return out, false, nil
		}
		out[widest].Width--
	}
}
