package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/output"
)

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return clierrors.NewUserError(
			fmt.Sprintf("invalid --error-format %q", format),
			"Use one of: auto, text, json, yaml",
		)
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	format := strings.ToLower(strings.TrimSpace(ErrorFormatFromContext(ctx)))
	if format == "" || format == "auto" {
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	w := stderrFromContext(ctx)

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(w, err)
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", suggestion)
	}
}

func buildErrorEnvelope(err error) map[string]interface{} {
	errMap := map[string]interface{}{
		"message": err.Error(),
	}

	category := "system"
	switch ExitCode(err) {
	case ExitUser:
		category = "user"
	case ExitLayout:
		category = "layout"
	case ExitCanceled:
		category = "canceled"
	}
	errMap["category"] = category
	errMap["exit_code"] = ExitCode(err)

	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		errMap["suggestion"] = suggestion
	}

	var validationErr *clierrors.ValidationError
	if errors.As(err, &validationErr) {
		errMap["type"] = "validation"
		errMap["field"] = validationErr.Field
	}

	var argErr *clierrors.InvalidArgumentError
	if errors.As(err, &argErr) {
		errMap["type"] = "invalid_argument"
		errMap["op"] = argErr.Op
		errMap["param"] = argErr.Param
	}

	var emptyErr *clierrors.EmptyCollectionError
	if errors.As(err, &emptyErr) {
		errMap["type"] = "empty_collection"
		errMap["op"] = emptyErr.Op
	}

	var sizesErr *clierrors.MismatchedSizesError
	if errors.As(err, &sizesErr) {
		errMap["type"] = "mismatched_sizes"
		errMap["op"] = sizesErr.Op
		errMap["sizes"] = sizesErr.Sizes
	}

	return map[string]interface{}{"error": errMap}
}
