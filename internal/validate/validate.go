package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Glyph validates that value is a single printable ASCII character and
// returns it.
func Glyph(field, value string) (rune, error) {
	if value == "" {
		return 0, fmt.Errorf("%s: cannot be empty", field)
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("%s: must be a single character, got %q", field, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r < 0x20 || r > 0x7e {
		return 0, fmt.Errorf("%s: must be printable ASCII, got %q", field, value)
	}
	return r, nil
}

// Padding validates a per-side cell padding.
func Padding(field string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: must be at least 0, got %d", field, n)
	}
	return nil
}

// NonNegative validates a count where 0 means "unset".
func NonNegative(field string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: must be at least 0, got %d", field, n)
	}
	return nil
}

// OneOf validates that value is one of the allowed choices.
func OneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: must be one of %s, got %q", field, strings.Join(allowed, ", "), value)
}
