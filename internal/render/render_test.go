package render

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/salmonumbrella/asciitable/internal/design"
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
	"github.com/salmonumbrella/asciitable/internal/layout"
	"github.com/salmonumbrella/asciitable/internal/table"
)

func newTable(t *testing.T, cols []table.Column, rows ...map[string]string) *table.Table {
	t.Helper()
	h, err := table.NewHeader(cols...)
	if err != nil {
		t.Fatalf("NewHeader() error = %v", err)
	}
	tbl, err := table.New(h)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}
	for _, r := range rows {
		if err := tbl.AddRow(table.NewRow(r)); err != nil {
			t.Fatalf("AddRow() error = %v", err)
		}
	}
	return tbl
}

var idTitle = []table.Column{{Name: "ID", Width: 4}, {Name: "Title", Width: 6}}

func TestPrintTable_WrapsLongValue(t *testing.T) {
	tbl := newTable(t, idTitle, map[string]string{"ID": "1", "Title": "LongTitle"})

	var buf bytes.Buffer
	p, err := NewPrinter(&buf, tbl)
	if err != nil {
		t.Fatalf("NewPrinter() error = %v", err)
	}
	if err := p.PrintTable(); err != nil {
		t.Fatalf("PrintTable() error = %v", err)
	}

	want := strings.Join([]string{
		"+---------------+",
		"| ID   | Title  |",
		"+---------------+",
		"| 1    | LongTi |",
		"|      | tle    |",
		"+---------------+",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("PrintTable() output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrintTable_PlainBorderBetweenRows(t *testing.T) {
	tbl := newTable(t, idTitle,
		map[string]string{"ID": "1", "Title": "a"},
		map[string]string{"ID": "2"},
	)

	out, err := Render(tbl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	want := []string{
		"+---------------+",
		"| ID   | Title  |",
		"+---------------+",
		"| 1    | a      |",
		"-----------------",
		"| 2    |        |",
		"+---------------+",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPrintTable_NoRows(t *testing.T) {
	out, err := Render(newTable(t, idTitle))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Count(out, "\n") != 3 {
		t.Errorf("header-only table should print 3 lines, got:\n%s", out)
	}
}

func TestPrintTable_FixedWidthLines(t *testing.T) {
	tbl := newTable(t, []table.Column{{Name: "A", Width: 3}, {Name: "B", Width: 5}, {Name: "C", Width: 2}},
		map[string]string{"A": "abcdefghij", "B": "", "C": "xyz"},
		map[string]string{"B": "hello world"},
	)
	d, err := design.New(tbl, design.WithPadding(2), design.WithGlyphs(design.Glyphs{Corner: '#', Horizontal: '=', Vertical: ':'}))
	if err != nil {
		t.Fatal(err)
	}

	out, err := Render(tbl, WithDesign(d))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := design.BorderWidth(tbl, 2)
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) != want {
			t.Errorf("line %d %q has width %d, want %d", i, line, len(line), want)
		}
	}
	if !strings.Contains(out, ":  abc  :") {
		t.Errorf("expected vertical glyph and padding in output:\n%s", out)
	}
}

func TestPrintTable_VerticalGlyphChange(t *testing.T) {
	tbl := newTable(t, idTitle, map[string]string{"ID": "7", "Title": "x"})
	var buf bytes.Buffer
	p, err := NewPrinter(&buf, tbl)
	if err != nil {
		t.Fatal(err)
	}
	p.Design().SetVertical('!')
	if err := p.PrintTable(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "! 7    ! x      !") {
		t.Errorf("vertical glyph not applied:\n%s", buf.String())
	}
}

func TestPrintTable_NonASCIIKeepsFixedWidth(t *testing.T) {
	tbl := newTable(t, idTitle,
		map[string]string{"ID": "1", "Title": "Café crème"},
		map[string]string{"ID": "ü", "Title": "naïve"},
	)

	out, err := Render(tbl)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !utf8.ValidString(out) {
		t.Fatalf("Render() produced invalid UTF-8: %q", out)
	}

	want := strings.Join([]string{
		"+---------------+",
		"| ID   | Title  |",
		"+---------------+",
		"| 1    | Café c |",
		"|      | rème   |",
		"-----------------",
		"| ü    | naïve  |",
		"+---------------+",
	}, "\n") + "\n"
	if out != want {
		t.Errorf("Render() output:\n%s\nwant:\n%s", out, want)
	}

	width := design.BorderWidth(tbl, design.DefaultPadding)
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if n := utf8.RuneCountInString(line); n != width {
			t.Errorf("line %d %q has %d characters, want %d", i, line, n, width)
		}
	}
}

type failingWriter struct {
	okWrites int
}

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.okWrites == 0 {
		return 0, errors.New("disk full")
	}
	w.okWrites--
	return len(b), nil
}

func TestPrintTable_WriteErrorAborts(t *testing.T) {
	tbl := newTable(t, idTitle, map[string]string{"ID": "1"})
	w := &failingWriter{okWrites: 2}
	p, err := NewPrinter(w, tbl)
	if err != nil {
		t.Fatal(err)
	}
	err = p.PrintTable()
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("PrintTable() error = %v, want write failure", err)
	}
}

func TestPrintTable_DebugLogging(t *testing.T) {
	tbl := newTable(t, idTitle, map[string]string{"ID": "1", "Title": "LongTitle"})
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := Render(tbl, WithLogger(logger)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "rendered row") || !strings.Contains(logs.String(), "lines=2") {
		t.Errorf("expected row debug record, got: %s", logs.String())
	}
}

func TestNewPrinter_InvalidArguments(t *testing.T) {
	tbl := newTable(t, idTitle)
	if _, err := NewPrinter(nil, tbl); !clierrors.IsInvalidArgument(err) {
		t.Errorf("nil writer error = %v", err)
	}
	if _, err := NewPrinter(&bytes.Buffer{}, nil); !clierrors.IsInvalidArgument(err) {
		t.Errorf("nil table error = %v", err)
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		frag  layout.Fragment
		width int
		pad   int
		want  string
	}{
		{name: "present", frag: layout.Present("ab"), width: 4, pad: 1, want: " ab   "},
		{name: "full width", frag: layout.Present("abcd"), width: 4, pad: 0, want: "abcd"},
		{name: "empty", frag: layout.Present(""), width: 3, pad: 1, want: "     "},
		{name: "absent", frag: layout.Absent(), width: 3, pad: 2, want: "       "},
		{name: "multi-byte", frag: layout.Present("Café"), width: 6, pad: 1, want: " Café   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCell(tt.frag, tt.width, tt.pad); got != tt.want {
				t.Errorf("FormatCell() = %q, want %q", got, tt.want)
			}
		})
	}
}
