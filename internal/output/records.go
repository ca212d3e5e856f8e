package output

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/asciitable/internal/table"
)

// Record is one table row with its keys kept in header order.
type Record struct {
	keys   []string
	values map[string]string
}

// Records converts the rows of t into ordered records.
func Records(t *table.Table) []Record {
	names := t.Header().Names()
	rows := t.Rows()
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec := Record{values: make(map[string]string, len(names))}
		for _, name := range names {
			v, ok := row.Value(name)
			if !ok {
				continue
			}
			rec.keys = append(rec.keys, name)
			rec.values[name] = v
		}
		out = append(out, rec)
	}
	return out
}

// Keys returns the record's keys in header order.
func (r Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Get returns the value stored under key.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// MarshalJSON encodes the record as an object in header order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping node in header order.
func (r Record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range r.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.values[k]},
		)
	}
	return node, nil
}
