package input

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// tabulate converts a selected document into string records. The document
// must be an object or an array of objects. Columns follow order for names
// it knows, then any remaining keys sorted.
func tabulate(doc any, order []string) (*Dataset, error) {
	var items []any
	switch t := doc.(type) {
	case []any:
		items = t
	case map[string]any:
		items = []any{t}
	case nil:
		items = nil
	default:
		return nil, clierrors.NewUserError(fmt.Sprintf("cannot build a table from a %T value", doc),
			"Select an object or an array of objects with --query or --jsonpath")
	}

	ds := &Dataset{Records: make([]map[string]string, 0, len(items))}
	present := map[string]bool{}
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, clierrors.NewUserError(fmt.Sprintf("record %d is a %T, not an object", i+1, item),
				"Select an array of objects with --query or --jsonpath")
		}
		rec := make(map[string]string, len(obj))
		for k, v := range obj {
			present[k] = true
			if v == nil {
				continue
			}
			rec[k] = FlattenCell(Stringify(v))
		}
		ds.Records = append(ds.Records, rec)
	}

	for _, k := range order {
		if present[k] {
			ds.Columns = append(ds.Columns, k)
			delete(present, k)
		}
	}
	rest := make([]string, 0, len(present))
	for k := range present {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	ds.Columns = append(ds.Columns, rest...)
	return ds, nil
}

// Stringify renders a decoded value as cell text. Scalars print plainly;
// arrays and objects print as compact JSON.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}
