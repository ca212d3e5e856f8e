package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is matching against the layout error kinds.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyCollection = errors.New("empty collection")
	ErrMismatchedSizes = errors.New("mismatched sizes")
)

// ValidationError represents an input validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// UserError represents an error caused by user input or configuration.
// Suggestion can provide a concrete fix for the user.
type UserError struct {
	Message    string
	Suggestion string
	Err        error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a UserError with a message and optional suggestion.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// WrapUserError wraps an underlying error with a user-facing message and suggestion.
func WrapUserError(err error, message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion, Err: err}
}

// InvalidArgumentError reports a missing reference or an out-of-range
// parameter passed to a layout operation.
type InvalidArgumentError struct {
	Op      string
	Param   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %s: %s", e.Op, e.Param, e.Message)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument builds an InvalidArgumentError with a formatted message.
func InvalidArgument(op, param, format string, args ...any) error {
	return &InvalidArgumentError{Op: op, Param: param, Message: fmt.Sprintf(format, args...)}
}

// EmptyCollectionError reports an operation that needs at least one element.
type EmptyCollectionError struct {
	Op string
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: empty collection", e.Op)
}

func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection
}

// MismatchedSizesError reports sequences that were expected to share a length.
// Sizes holds the observed length of every sequence, in input order.
type MismatchedSizesError struct {
	Op    string
	Sizes []int
}

func (e *MismatchedSizesError) Error() string {
	parts := make([]string, len(e.Sizes))
	for i, n := range e.Sizes {
		parts[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s: mismatched sizes [%s]", e.Op, strings.Join(parts, " "))
}

func (e *MismatchedSizesError) Is(target error) bool {
	return target == ErrMismatchedSizes
}

// Type checkers
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsEmptyCollection(err error) bool {
	return errors.Is(err, ErrEmptyCollection)
}

func IsMismatchedSizes(err error) bool {
	return errors.Is(err, ErrMismatchedSizes)
}

// IsLayoutError reports whether err came out of the layout engine rather than
// from reading or validating user input.
func IsLayoutError(err error) bool {
	return IsInvalidArgument(err) || IsEmptyCollection(err) || IsMismatchedSizes(err)
}

// UserSuggestion returns a suggestion string if err is a UserError.
func UserSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}

// UnknownColumnError creates a user-facing error for a row value whose column
// is not part of the table header.
func UnknownColumnError(name string, known []string) error {
	suggestion := "Add the column with --columns"
	if len(known) > 0 {
		suggestion = fmt.Sprintf("Known columns:\n%s", formatSuggestionList(known))
	}
	return WrapUserError(&ValidationError{Field: name, Message: "column not in header"},
		fmt.Sprintf("row references unknown column %q", name), suggestion)
}

// formatSuggestionList formats a list of suggestions as a bulleted list.
func formatSuggestionList(items []string) string {
	var result string
	for _, item := range items {
		result += fmt.Sprintf("  • %s\n", item)
	}
	return result
}
