package input

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// decodeCSV reads a header line and the records below it. Every record
// becomes an object keyed by the header names.
func decodeCSV(data []byte, delimiter rune) (any, []string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	if delimiter != 0 {
		r.Comma = delimiter
	}
	r.TrimLeadingSpace = !unicode.IsSpace(r.Comma)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, clierrors.NewUserError("input is empty", "Provide a CSV header line followed by records")
	}
	if err != nil {
		return nil, nil, clierrors.WrapUserError(err, "failed to parse CSV header", "")
	}

	var records []any
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
				return nil, nil, clierrors.WrapUserError(err, "CSV record does not match the header",
					fmt.Sprintf("Every record needs %d fields", len(header)))
			}
			return nil, nil, clierrors.WrapUserError(err, "failed to parse CSV", "")
		}
		rec := make(map[string]any, len(header))
		for i, name := range header {
			rec[name] = fields[i]
		}
		records = append(records, rec)
	}
	return records, header, nil
}

func decodeJSON(data []byte) (any, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, clierrors.WrapUserError(err, "failed to parse JSON input", "Check the input is valid JSON or pass --input-format")
		}
		docs = append(docs, normalizeValue(v))
	}
	if len(docs) == 0 {
		return nil, nil, clierrors.NewUserError("input is empty", "Provide a JSON array of objects")
	}

	order := keyOrder(data)
	// A stream of objects (NDJSON) is treated like an array of them.
	if len(docs) == 1 {
		return docs[0], order, nil
	}
	return docs, order, nil
}

func decodeYAML(data []byte) (any, []string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, nil, clierrors.WrapUserError(err, "failed to parse YAML input", "Check the input is valid YAML or pass --input-format")
	}
	if node.Kind == 0 {
		return nil, nil, clierrors.NewUserError("input is empty", "Provide a YAML sequence of mappings")
	}

	var doc any
	if err := node.Decode(&doc); err != nil {
		return nil, nil, clierrors.WrapUserError(err, "failed to decode YAML input", "")
	}
	return normalizeValue(doc), collectKeys(&node, nil, map[string]bool{}), nil
}

// keyOrder returns mapping keys in order of first appearance. JSON objects
// decode into unordered maps, so the order is recovered from a YAML parse of
// the same bytes; input YAML cannot parse yields nil.
func keyOrder(data []byte) []string {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil
	}
	return collectKeys(&node, nil, map[string]bool{})
}

func collectKeys(n *yaml.Node, keys []string, seen map[string]bool) []string {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i].Value
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
			keys = collectKeys(n.Content[i+1], keys, seen)
		}
		return keys
	}
	for _, c := range n.Content {
		keys = collectKeys(c, keys, seen)
	}
	return keys
}

// normalizeValue converts decoded documents into the types gojq and
// jsonpath accept: map[string]any, []any, string, bool, int, float64, nil.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeValue(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case int64:
		return int(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}
