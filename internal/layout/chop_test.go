package layout

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

func TestChop(t *testing.T) {
	tests := []struct {
		name  string
		value string
		width int
		want  []string
	}{
		{name: "empty string", value: "", width: 4, want: []string{""}},
		{name: "shorter than width", value: "ID", width: 4, want: []string{"ID"}},
		{name: "exactly width", value: "abcd", width: 4, want: []string{"abcd"}},
		{name: "one over", value: "abcde", width: 4, want: []string{"abcd", "e"}},
		{name: "long title", value: "LongTitle", width: 6, want: []string{"LongTi", "tle"}},
		{name: "exact multiple", value: "aabbcc", width: 2, want: []string{"aa", "bb", "cc"}},
		{name: "multi-byte", value: "naïve", width: 3, want: []string{"naï", "ve"}},
		{name: "multi-byte exact", value: "Café", width: 4, want: []string{"Café"}},
		{name: "wide runes", value: "日本語テキスト", width: 2, want: []string{"日本", "語テ", "キス", "ト"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chop(tt.value, tt.width)
			if err != nil {
				t.Fatalf("Chop() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chop(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
			}
		})
	}
}

func TestChop_RejectsNarrowWidth(t *testing.T) {
	for _, width := range []int{-3, 0, 1} {
		if _, err := Chop("abc", width); !clierrors.IsInvalidArgument(err) {
			t.Errorf("Chop(width=%d) error = %v, want invalid argument", width, err)
		}
	}
}

func TestChop_RoundTrip(t *testing.T) {
	values := []string{"", "x", "hello world", strings.Repeat("0123456789", 37), "tab\tand\nnewline", "Café crème brûlée", "a\xffb\xc3"}
	for _, v := range values {
		for width := 2; width <= 12; width++ {
			got, err := Chop(v, width)
			if err != nil {
				t.Fatalf("Chop(%q, %d) error = %v", v, width, err)
			}

			wantLen := (max(1, utf8.RuneCountInString(v)) + width - 1) / width
			if len(got) != wantLen {
				t.Errorf("Chop(%q, %d) returned %d fragments, want %d", v, width, len(got), wantLen)
			}
			for i, f := range got {
				if n := utf8.RuneCountInString(f); n > width {
					t.Errorf("fragment %d %q has %d characters, exceeds width %d", i, f, n, width)
				}
				if utf8.ValidString(v) && !utf8.ValidString(f) {
					t.Errorf("fragment %d %q of valid %q is not valid UTF-8", i, f, v)
				}
			}
			if joined := strings.Join(got, ""); joined != v {
				t.Errorf("Chop(%q, %d) rejoined to %q", v, width, joined)
			}
		}
	}
}

func TestChop_VeryLongValue(t *testing.T) {
	v := strings.Repeat("a", 1<<20)
	got, err := Chop(v, 2)
	if err != nil {
		t.Fatalf("Chop() error = %v", err)
	}
	if len(got) != 1<<19 {
		t.Errorf("got %d fragments, want %d", len(got), 1<<19)
	}
}
