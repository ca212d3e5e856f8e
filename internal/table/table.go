// Package table is the data model the renderer reads from: an ordered header
// of fixed-width columns and the rows of named values printed beneath it.
package table

import (
	"fmt"
	"sort"
	"strings"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/layout"
)

// Column is a named column with a fixed display width.
type Column struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

// Header is the ordered set of columns of a table.
type Header struct {
	columns []Column
	index   map[string]int
}

// NewHeader validates cols and returns a header in the given order.
// Names must be unique and non-empty, widths at least 1.
func NewHeader(cols ...Column) (*Header, error) {
	if len(cols) == 0 {
		return nil, &clierrors.ValidationError{Field: "columns", Message: "at least one column is required"}
	}

	h := &Header{
		columns: make([]Column, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if strings.TrimSpace(c.Name) == "" {
			return nil, &clierrors.ValidationError{Field: fmt.Sprintf("columns[%d]", i), Message: "name cannot be empty"}
		}
		if c.Width < layout.MinChopWidth {
			return nil, &clierrors.ValidationError{Field: c.Name, Message: fmt.Sprintf("width must be at least %d, got %d", layout.MinChopWidth, c.Width)}
		}
		if _, dup := h.index[c.Name]; dup {
			return nil, &clierrors.ValidationError{Field: c.Name, Message: "duplicate column name"}
		}
		h.columns[i] = c
		h.index[c.Name] = i
	}
	return h, nil
}

// Columns returns a copy of the columns in header order.
func (h *Header) Columns() []Column {
	return append([]Column(nil), h.columns...)
}

// Names returns the column names in header order.
func (h *Header) Names() []string {
	names := make([]string, len(h.columns))
	for i, c := range h.columns {
		names[i] = c.Name
	}
	return names
}

// Width returns the configured width of the named column.
func (h *Header) Width(name string) (int, bool) {
	i, ok := h.index[name]
	if !ok {
		return 0, false
	}
	return h.columns[i].Width, true
}

// Has reports whether the header contains the named column.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// TotalWidth is the sum of all column widths.
func (h *Header) TotalWidth() int {
	total := 0
	for _, c := range h.columns {
		total += c.Width
	}
	return total
}

// ColumnCount returns the number of columns.
func (h *Header) ColumnCount() int {
	return len(h.columns)
}

// Row maps column names to cell values. A column without an entry is an
// absent value and prints as an empty cell.
type Row struct {
	values map[string]string
}

// NewRow copies values into a Row.
func NewRow(values map[string]string) Row {
	r := Row{values: make(map[string]string, len(values))}
	for k, v := range values {
		r.values[k] = v
	}
	return r
}

// Value returns the value stored for the named column.
func (r Row) Value(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the column names present in the row, sorted.
func (r Row) Names() []string {
	names := make([]string, 0, len(r.values))
	for k := range r.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Table is a header plus the data rows printed below it.
type Table struct {
	header *Header
	rows   []Row
}

// New creates an empty table over header.
func New(header *Header) (*Table, error) {
	if header == nil {
		return nil, clierrors.InvalidArgument("table", "header", "must not be nil")
	}
	return &Table{header: header}, nil
}

// AddRow appends r after checking that every value it carries belongs to a
// header column.
func (t *Table) AddRow(r Row) error {
	for _, name := range r.Names() {
		if !t.header.Has(name) {
			return clierrors.UnknownColumnError(name, t.header.Names())
		}
	}
	t.rows = append(t.rows, r)
	return nil
}

// Header returns the table header.
func (t *Table) Header() *Header {
	return t.header
}

// HeaderRow returns a row whose values are the column names, so the header
// block can be laid out like any other row.
func (t *Table) HeaderRow() Row {
	values := make(map[string]string, t.header.ColumnCount())
	for _, name := range t.header.Names() {
		values[name] = name
	}
	return Row{values: values}
}

// Rows returns the data rows in insertion order.
func (t *Table) Rows() []Row {
	return t.rows
}

// TotalWidth is the sum of the header's column widths.
func (t *Table) TotalWidth() int {
	return t.header.TotalWidth()
}

// ColumnCount returns the number of header columns.
func (t *Table) ColumnCount() int {
	return t.header.ColumnCount()
}
