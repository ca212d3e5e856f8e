// Package input reads tabular data from CSV, JSON or YAML and turns it into
// ordered string records ready to be laid out as a table.
package input

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"gopkg.in/yaml.v3"
)

// Format is an input data format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts an --input-format value. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatAuto, "":
		return FormatAuto, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatTSV:
		return FormatTSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", clierrors.NewUserError(fmt.Sprintf("invalid --input-format %q", s), "Use one of: auto, csv, tsv, json, yaml")
	}
}

// Options controls how a document becomes a dataset.
type Options struct {
	Format Format
	// Name is the source file name, used for format detection by extension.
	Name string
	// Delimiter separates CSV fields; zero means ','.
	Delimiter rune
	// JSONPath selects the records inside the document before Query runs.
	JSONPath string
	// Query is a jq program applied to the records.
	Query string
}

// Dataset is an ordered list of records plus the column order they were
// found in.
type Dataset struct {
	Columns []string
	Records []map[string]string
}

// Load reads r completely and converts it to a Dataset.
func Load(r io.Reader, opts Options) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = DetectFormat(opts.Name, data)
	}
	slog.Debug("loading input", "format", format, "bytes", len(data), "name", opts.Name)

	var (
		doc   any
		order []string
	)
	switch format {
	case FormatCSV:
		doc, order, err = decodeCSV(data, opts.Delimiter)
	case FormatTSV:
		delim := opts.Delimiter
		if delim == 0 {
			delim = '\t'
		}
		doc, order, err = decodeCSV(data, delim)
	case FormatJSON:
		doc, order, err = decodeJSON(data)
	case FormatYAML:
		doc, order, err = decodeYAML(data)
	default:
		err = fmt.Errorf("unsupported input format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(opts.JSONPath) != "" {
		if doc, err = applyJSONPath(doc, opts.JSONPath); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(opts.Query) != "" {
		if doc, err = runQuery(opts.Query, doc); err != nil {
			return nil, err
		}
	}

	return tabulate(doc, order)
}

// DetectFormat guesses the format from the file extension, then from the
// first non-blank byte of data.
func DetectFormat(name string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	case ".json", ".ndjson":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatCSV
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	case '-':
		return FormatYAML
	}
	firstLine, _, _ := bytes.Cut(trimmed, []byte("\n"))
	firstLine = bytes.TrimSpace(firstLine)
	if bytes.HasSuffix(firstLine, []byte(":")) || (bytes.Contains(firstLine, []byte(": ")) && !bytes.Contains(firstLine, []byte(","))) {
		if isYAMLMapping(trimmed) {
			return FormatYAML
		}
	}
	return FormatCSV
}

// isYAMLMapping reports whether data is a single YAML document whose top
// level is a mapping. A CSV header like "Note: text" followed by plain rows
// fails this check.
func isYAMLMapping(data []byte) bool {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return false
	}
	return node.Kind == yaml.DocumentNode && len(node.Content) == 1 && node.Content[0].Kind == yaml.MappingNode
}
