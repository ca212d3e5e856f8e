package input

import (
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/table"
)

// Table lays the dataset out under cols, or under every dataset column when
// cols is empty. Columns with no width are sized from the data, capped at
// maxWidth when it is positive. Record keys outside the selected columns are
// dropped.
func (d *Dataset) Table(cols []table.Column, maxWidth int) (*table.Table, error) {
	if len(cols) == 0 {
		for _, name := range d.Columns {
			cols = append(cols, table.Column{Name: name})
		}
	}
	if len(cols) == 0 {
		return nil, clierrors.NewUserError("no columns found in input", "Provide records with at least one field, or pass --columns")
	}

	h, err := table.NewHeader(table.InferWidths(cols, d.Records, maxWidth)...)
	if err != nil {
		return nil, err
	}
	t, err := table.New(h)
	if err != nil {
		return nil, err
	}
	for _, rec := range d.Records {
		values := make(map[string]string, h.ColumnCount())
		for k, v := range rec {
			if h.Has(k) {
				values[k] = v
			}
		}
		if err := t.AddRow(table.NewRow(values)); err != nil {
			return nil, err
		}
	}
	return t, nil
}
