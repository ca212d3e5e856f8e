package layout

// Fragment is one wrapped piece of a cell value, or the filler used to pad a
// short column during height normalization. The zero value is Absent.
type Fragment struct {
	text    string
	present bool
}

// Present wraps a chopped piece of text. Present("") is a genuinely empty
// fragment and is distinct from Absent().
func Present(s string) Fragment {
	return Fragment{text: s, present: true}
}

// Absent returns the filler fragment.
func Absent() Fragment {
	return Fragment{}
}

// Text returns the fragment text and whether the fragment is present.
func (f Fragment) Text() (string, bool) {
	return f.text, f.present
}

// IsAbsent reports whether f is filler.
func (f Fragment) IsAbsent() bool {
	return !f.present
}

func (f Fragment) String() string {
	if !f.present {
		return "<absent>"
	}
	return f.text
}

// Fragments wraps chopped strings as present fragments.
func Fragments(parts []string) []Fragment {
	out := make([]Fragment, len(parts))
	for i, p := range parts {
		out[i] = Present(p)
	}
	return out
}
