package input

import "regexp"

// lineBreakPattern matches runs of CR, LF and tab characters.
var lineBreakPattern = regexp.MustCompile(`[\r\n\t]+`)

// controlPattern matches the C0 control characters left after line breaks
// are folded, plus DEL.
var controlPattern = regexp.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)

// FlattenCell makes a value safe to lay out in a single column: line breaks
// and tabs become one space and other control characters are removed.
// A multi-line CSV field such as "a\r\nb" becomes "a b".
func FlattenCell(s string) string {
	if !hasControl(s) {
		return s
	}
	s = lineBreakPattern.ReplaceAllString(s, " ")
	return controlPattern.ReplaceAllString(s, "")
}

func hasControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}
