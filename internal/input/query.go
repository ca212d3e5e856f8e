package input

import (
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// runQuery runs a jq program against doc. A program yielding one value
// returns it as is; several values are collected into an array.
func runQuery(query string, doc any) (any, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, formatInvalidQueryErr(err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, formatInvalidQueryErr(err)
	}

	var results []any
	iter := code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return nil, clierrors.NewUserError(fmt.Sprintf("query error: %s", safeErrorMessage(queryErr)), "")
		}
		results = append(results, v)
	}

	if len(results) == 1 {
		return results[0], nil
	}
	if results == nil {
		results = []any{}
	}
	return results, nil
}

func formatInvalidQueryErr(err error) error {
	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	if strings.Contains(msg, "unexpected eof") {
		return clierrors.WrapUserError(err, "invalid --query", "Query looks incomplete; quote it fully")
	}
	return clierrors.WrapUserError(err, "invalid --query", "Example: --query '.[] | select(.status == \"open\")'")
}

// safeErrorMessage returns a best-effort string for gojq runtime errors,
// whose Error method has been seen to panic on some typed values.
func safeErrorMessage(err error) (msg string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			msg = fmt.Sprintf("%T", err)
		}
	}()

	msg = strings.TrimSpace(err.Error())
	if msg == "" {
		return fmt.Sprintf("%T", err)
	}
	return msg
}

func applyJSONPath(doc any, raw string) (any, error) {
	path := normalizeJSONPath(raw)
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, clierrors.WrapUserError(err, "invalid --jsonpath value", "Example: --jsonpath '$.items'")
	}
	return value, nil
}

func normalizeJSONPath(path string) string {
	trimmed := strings.TrimSpace(path)
	switch {
	case strings.HasPrefix(trimmed, "$"), strings.HasPrefix(trimmed, "@"):
		return trimmed
	case strings.HasPrefix(trimmed, "."), strings.HasPrefix(trimmed, "["):
		return "$" + trimmed
	default:
		return "$." + trimmed
	}
}
