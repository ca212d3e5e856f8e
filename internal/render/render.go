// Package render turns a table into bordered, fixed-width text lines.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/salmonumbrella/asciitable/internal/design"
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/layout"
	"github.com/salmonumbrella/asciitable/internal/table"
)

// Printer writes a table to an output sink. A Printer is not safe for
// concurrent use; callers sharing one must serialize PrintTable calls.
type Printer struct {
	w      io.Writer
	table  *table.Table
	design *design.Design
	logger *slog.Logger
}

// Option configures a Printer.
type Option func(*Printer)

// WithDesign draws the table with d instead of a default design.
func WithDesign(d *design.Design) Option {
	return func(p *Printer) {
		if d != nil {
			p.design = d
		}
	}
}

// WithLogger sets the logger used for per-row debug records.
func WithLogger(l *slog.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPrinter creates a Printer that writes t to w.
func NewPrinter(w io.Writer, t *table.Table, opts ...Option) (*Printer, error) {
	if w == nil {
		return nil, clierrors.InvalidArgument("printer", "writer", "must not be nil")
	}
	if t == nil {
		return nil, clierrors.InvalidArgument("printer", "table", "must not be nil")
	}
	p := &Printer{
		w:      w,
		table:  t,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.design == nil {
		d, err := design.New(t)
		if err != nil {
			return nil, err
		}
		p.design = d
	}
	return p, nil
}

// Design returns the design the printer draws with.
func (p *Printer) Design() *design.Design {
	return p.design
}

// PrintTable writes the header block, then every data row followed by a
// plain border, closing the last row with the fancy border instead. The
// first failure stops the output.
func (p *Printer) PrintTable() error {
	fancy := p.design.FancyBorder()
	plain := p.design.PlainBorder()

	if err := p.writeLine(fancy); err != nil {
		return err
	}
	header, err := p.RenderRow(p.table.HeaderRow())
	if err != nil {
		return fmt.Errorf("render header: %w", err)
	}
	if err := p.writeLines(header); err != nil {
		return err
	}
	if err := p.writeLine(fancy); err != nil {
		return err
	}

	rows := p.table.Rows()
	for i, row := range rows {
		lines, err := p.RenderRow(row)
		if err != nil {
			return fmt.Errorf("render row %d: %w", i+1, err)
		}
		p.logger.Debug("rendered row", "row", i+1, "lines", len(lines))
		if err := p.writeLines(lines); err != nil {
			return err
		}
		border := plain
		if i == len(rows)-1 {
			border = fancy
		}
		if err := p.writeLine(border); err != nil {
			return err
		}
	}
	return nil
}

// RenderRow lays out one logical row as the physical lines it prints as.
// Missing values print as empty cells.
func (p *Printer) RenderRow(row table.Row) ([]string, error) {
	cols := p.table.Header().Columns()

	matrix := make([][]layout.Fragment, len(cols))
	for i, c := range cols {
		value, _ := row.Value(c.Name)
		parts, err := layout.Chop(value, c.Width)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		matrix[i] = layout.Fragments(parts)
	}
	if err := layout.Normalize(matrix); err != nil {
		return nil, err
	}
	physical, err := layout.Interleave(matrix)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(physical))
	for i, line := range physical {
		out[i] = p.formatLine(line, cols)
	}
	return out, nil
}

func (p *Printer) formatLine(line []layout.Fragment, cols []table.Column) string {
	sep := string(p.design.Vertical())
	pad := p.design.Padding()

	var b strings.Builder
	b.WriteString(sep)
	for i, f := range line {
		b.WriteString(FormatCell(f, cols[i].Width, pad))
		b.WriteString(sep)
	}
	return b.String()
}

// FormatCell renders one fragment as pad spaces, the text left-aligned in
// width characters, and pad spaces. Absent fragments render as blanks.
func FormatCell(f layout.Fragment, width, pad int) string {
	text, ok := f.Text()
	if !ok {
		return strings.Repeat(" ", width+2*pad)
	}
	side := strings.Repeat(" ", pad)
	return side + text + strings.Repeat(" ", max(0, width-layout.CharCount(text))) + side
}

func (p *Printer) writeLines(lines []string) error {
	for _, l := range lines {
		if err := p.writeLine(l); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) writeLine(line string) error {
	if _, err := io.WriteString(p.w, line+"\n"); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// Render prints t into a string.
func Render(t *table.Table, opts ...Option) (string, error) {
	var b strings.Builder
	p, err := NewPrinter(&b, t, opts...)
	if err != nil {
		return "", err
	}
	if err := p.PrintTable(); err != nil {
		return "", err
	}
	return b.String(), nil
}
