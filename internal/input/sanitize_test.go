package input

import (
	"strings"
	"testing"
)

func TestFlattenCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "empty", in: "", want: ""},
		{name: "lf", in: "a\nb", want: "a b"},
		{name: "crlf", in: "a\r\nb", want: "a b"},
		{name: "blank lines collapse", in: "a\n\n\nb", want: "a b"},
		{name: "tab", in: "a\tb", want: "a b"},
		{name: "bell and escape dropped", in: "a\x07b\x1b[0m", want: "ab[0m"},
		{name: "del dropped", in: "x\x7fy", want: "xy"},
		{name: "non-ascii kept", in: "café", want: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlattenCell(tt.in); got != tt.want {
				t.Errorf("FlattenCell(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad_MultiLineCSVField(t *testing.T) {
	ds, err := Load(strings.NewReader("id,note\n1,\"first\r\nsecond\"\n"), Options{Format: FormatCSV})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ds.Records[0]["note"]; got != "first second" {
		t.Errorf("note = %q, want %q", got, "first second")
	}
}
