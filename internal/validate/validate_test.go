package validate

import (
	"strings"
	"testing"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		want        rune
		wantError   bool
		errContains string
	}{
		{name: "plus", value: "+", want: '+'},
		{name: "space", value: " ", want: ' '},
		{name: "empty", value: "", wantError: true, errContains: "cannot be empty"},
		{name: "two chars", value: "+-", wantError: true, errContains: "single character"},
		{name: "box drawing", value: "─", wantError: true, errContains: "printable ASCII"},
		{name: "tab", value: "\t", wantError: true, errContains: "printable ASCII"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Glyph("corner", tt.value)
			if (err != nil) != tt.wantError {
				t.Fatalf("Glyph(%q) error = %v, wantError %v", tt.value, err, tt.wantError)
			}
			if err != nil {
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				if !strings.HasPrefix(err.Error(), "corner:") {
					t.Errorf("error %q should start with the field name", err.Error())
				}
				return
			}
			if got != tt.want {
				t.Errorf("Glyph(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPadding(t *testing.T) {
	if err := Padding("padding", 0); err != nil {
		t.Errorf("Padding(0) error = %v", err)
	}
	if err := Padding("padding", -1); err == nil {
		t.Error("Padding(-1) should fail")
	}
}

func TestNonNegative(t *testing.T) {
	if err := NonNegative("max_column_width", 0); err != nil {
		t.Errorf("NonNegative(0) error = %v", err)
	}
	if err := NonNegative("max_column_width", -5); err == nil {
		t.Error("NonNegative(-5) should fail")
	}
}

func TestOneOf(t *testing.T) {
	if err := OneOf("output", "json", "table", "json", "yaml"); err != nil {
		t.Errorf("OneOf() error = %v", err)
	}
	err := OneOf("output", "xml", "table", "json")
	if err == nil || !strings.Contains(err.Error(), "table, json") {
		t.Errorf("OneOf() error = %v", err)
	}
}
