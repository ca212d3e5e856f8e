package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/asciitable/internal/render"
	"github.com/salmonumbrella/asciitable/internal/table"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the bordered ASCII table (default).
	FormatTable Format = "table"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatTable.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "", "text":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected table|json|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// Format reports the printer's format.
func (p *Printer) Format() Format {
	return p.format
}

// PrintTable writes t as an ASCII table, or as a list of records in json
// and yaml modes. The render options only apply to the table format.
func (p *Printer) PrintTable(t *table.Table, opts ...render.Option) error {
	if t == nil {
		return nil
	}
	switch p.format {
	case FormatTable, "":
		tp, err := render.NewPrinter(p.w, t, opts...)
		if err != nil {
			return err
		}
		return tp.PrintTable()
	default:
		return p.Print(Records(t))
	}
}

// Print outputs data in the configured format. In table format, values are
// written with their default formatting, one per line for string slices.
func (p *Printer) Print(data interface{}) error {
	if data == nil {
		return nil
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(data)
	case FormatYAML:
		return p.printYAML(data)
	case FormatTable, "":
		return p.printText(data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

func (p *Printer) printJSON(data interface{}) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(data)
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}

func (p *Printer) printText(data interface{}) error {
	switch v := data.(type) {
	case []string:
		for _, line := range v {
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}
		return nil
	case fmt.Stringer:
		_, err := fmt.Fprintln(p.w, v.String())
		return err
	default:
		_, err := fmt.Fprintf(p.w, "%v\n", data)
		return err
	}
}
