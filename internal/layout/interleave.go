package layout

import (
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// MaxListSize returns the length of the longest inner sequence.
func MaxListSize[T any](lists [][]T) (int, error) {
	if lists == nil {
		return 0, clierrors.InvalidArgument("maxListSize", "lists", "must not be nil")
	}
	if len(lists) == 0 {
		return 0, &clierrors.EmptyCollectionError{Op: "maxListSize"}
	}

	longest := 0
	for _, l := range lists {
		if len(l) > longest {
			longest = len(l)
		}
	}
	return longest, nil
}

// Interleave transposes column-major input into row-major output: row i of
// the result holds columns[0][i], columns[1][i], ... in column order.
// All inner sequences must share one length; run Normalize first.
func Interleave[T any](columns [][]T) ([][]T, error) {
	if columns == nil {
		return nil, clierrors.InvalidArgument("interleave", "columns", "must not be nil")
	}
	if len(columns) == 0 {
		return nil, &clierrors.EmptyCollectionError{Op: "interleave"}
	}

	height := len(columns[0])
	for _, c := range columns[1:] {
		if len(c) != height {
			sizes := make([]int, len(columns))
			for i, col := range columns {
				sizes[i] = len(col)
			}
			return nil, &clierrors.MismatchedSizesError{Op: "interleave", Sizes: sizes}
		}
	}

	rows := make([][]T, height)
	for i := range rows {
		row := make([]T, len(columns))
		for j, c := range columns {
			row[j] = c[i]
		}
		rows[i] = row
	}
	return rows, nil
}
