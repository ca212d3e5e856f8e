package layout

import (
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// Normalize pads every column in place with Absent fragments until all
// columns are as tall as the tallest one. Columns that are already at full
// height keep their backing arrays. An empty matrix is left alone.
func Normalize(columns [][]Fragment) error {
	if columns == nil {
		return clierrors.InvalidArgument("normalize", "columns", "must not be nil")
	}
	if len(columns) == 0 {
		return nil
	}

	height, err := MaxListSize(columns)
	if err != nil {
		return err
	}
	for i, c := range columns {
		for len(c) < height {
			c = append(c, Absent())
		}
		columns[i] = c
	}
	return nil
}
