package layout

import (
	"unicode/utf8"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// MinChopWidth is the narrowest width Chop accepts.
const MinChopWidth = 2

// Chop splits value into consecutive fragments of at most width characters.
// Fragments never split a multi-byte character; an invalid byte counts as one
// character. The result always holds at least one fragment: the empty string
// chops to [""]. Joining the fragments in order yields value again.
func Chop(value string, width int) ([]string, error) {
	if width < MinChopWidth {
		return nil, clierrors.InvalidArgument("chop", "width", "must be at least %d, got %d", MinChopWidth, width)
	}

	n := (utf8.RuneCountInString(value) + width - 1) / width
	if n <= 1 {
		return []string{value}, nil
	}

	fragments := make([]string, 0, n)
	for value != "" {
		end := 0
		for chars := 0; chars < width && end < len(value); chars++ {
			_, size := utf8.DecodeRuneInString(value[end:])
			end += size
		}
		fragments = append(fragments, value[:end])
		value = value[end:]
	}
	return fragments, nil
}

// CharCount returns the number of characters Chop and the renderer measure
// in s.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}
