package design

import (
	"strings"
	"testing"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

type fakeShape struct {
	total, columns int
}

func (s fakeShape) TotalWidth() int  { return s.total }
func (s fakeShape) ColumnCount() int { return s.columns }

func TestComputeBorders(t *testing.T) {
	b, err := ComputeBorders(fakeShape{total: 10, columns: 2}, DefaultGlyphs, 1)
	if err != nil {
		t.Fatalf("ComputeBorders() error = %v", err)
	}

	if b.Fancy != "+---------------+" {
		t.Errorf("Fancy = %q", b.Fancy)
	}
	if b.Plain != "-----------------" {
		t.Errorf("Plain = %q", b.Plain)
	}
}

func TestComputeBorders_LengthInvariant(t *testing.T) {
	for _, total := range []int{1, 7, 40} {
		for columns := 1; columns <= 6; columns++ {
			for pad := 0; pad <= 3; pad++ {
				b, err := ComputeBorders(fakeShape{total: total, columns: columns}, DefaultGlyphs, pad)
				if err != nil {
					t.Fatal(err)
				}
				want := total + 2*pad*columns + columns + 1
				if len(b.Fancy) != want || len(b.Plain) != want {
					t.Errorf("W=%d n=%d p=%d: len fancy=%d plain=%d, want %d", total, columns, pad, len(b.Fancy), len(b.Plain), want)
				}
			}
		}
	}
}

func TestComputeBorders_InvalidArguments(t *testing.T) {
	if _, err := ComputeBorders(nil, DefaultGlyphs, 1); !clierrors.IsInvalidArgument(err) {
		t.Errorf("nil shape error = %v", err)
	}
	if _, err := ComputeBorders(fakeShape{total: 4, columns: 1}, DefaultGlyphs, -1); !clierrors.IsInvalidArgument(err) {
		t.Errorf("negative padding error = %v", err)
	}
}

func TestNew(t *testing.T) {
	if _, err := New(nil); !clierrors.IsInvalidArgument(err) {
		t.Errorf("New(nil) error = %v, want invalid argument", err)
	}
	if _, err := New(fakeShape{total: 4, columns: 1}, WithPadding(-2)); !clierrors.IsInvalidArgument(err) {
		t.Errorf("New(padding -2) error = %v, want invalid argument", err)
	}

	d, err := New(fakeShape{total: 4, columns: 1}, WithGlyphs(Glyphs{Corner: '*', Horizontal: '=', Vertical: '!'}), WithPadding(0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if d.FancyBorder() != "*====*" {
		t.Errorf("FancyBorder() = %q", d.FancyBorder())
	}
	if d.Vertical() != '!' || d.Padding() != 0 {
		t.Errorf("unexpected settings: vertical %q padding %d", d.Vertical(), d.Padding())
	}
}

func TestDesign_SetCorner(t *testing.T) {
	d, _ := New(fakeShape{total: 10, columns: 2})
	plain := d.PlainBorder()
	fancy := d.FancyBorder()

	d.SetCorner('#')
	got := d.FancyBorder()

	if got[0] != '#' || got[len(got)-1] != '#' {
		t.Errorf("corner not applied: %q", got)
	}
	if got[1:len(got)-1] != fancy[1:len(fancy)-1] {
		t.Errorf("corner change touched the middle of the border: %q vs %q", got, fancy)
	}
	if d.PlainBorder() != plain {
		t.Errorf("corner change altered plain border: %q", d.PlainBorder())
	}
}

func TestDesign_SetHorizontal(t *testing.T) {
	d, _ := New(fakeShape{total: 3, columns: 1})
	d.SetHorizontal('=')
	if d.PlainBorder() != "=======" {
		t.Errorf("PlainBorder() = %q", d.PlainBorder())
	}
	if d.FancyBorder() != "+=====+" {
		t.Errorf("FancyBorder() = %q", d.FancyBorder())
	}
}

func TestDesign_SetPadding(t *testing.T) {
	d, _ := New(fakeShape{total: 10, columns: 3})
	before := len(d.FancyBorder())

	if err := d.SetPadding(3); err != nil {
		t.Fatalf("SetPadding() error = %v", err)
	}
	delta := 3 - DefaultPadding
	if got := len(d.FancyBorder()); got != before+2*delta*3 {
		t.Errorf("fancy length = %d, want %d", got, before+2*delta*3)
	}
	if len(d.PlainBorder()) != len(d.FancyBorder()) {
		t.Error("plain and fancy borders should share a length")
	}

	if err := d.SetPadding(-1); !clierrors.IsInvalidArgument(err) {
		t.Errorf("SetPadding(-1) error = %v, want invalid argument", err)
	}
	if d.Padding() != 3 {
		t.Errorf("failed SetPadding changed padding to %d", d.Padding())
	}
}

func TestDesign_NoRecomputeOnVerticalOrSameValue(t *testing.T) {
	d, _ := New(fakeShape{total: 5, columns: 2})
	_ = d.Borders()
	if d.Stale() {
		t.Fatal("borders should be fresh after Borders()")
	}

	d.SetVertical(':')
	if d.Stale() {
		t.Error("SetVertical must not invalidate borders")
	}
	d.SetCorner(d.Corner())
	d.SetHorizontal(d.Horizontal())
	if err := d.SetPadding(d.Padding()); err != nil {
		t.Fatal(err)
	}
	if d.Stale() {
		t.Error("setting identical values must not invalidate borders")
	}

	d.SetCorner('o')
	if !d.Stale() {
		t.Error("SetCorner should invalidate borders")
	}
	if !strings.HasPrefix(d.FancyBorder(), "o") {
		t.Errorf("FancyBorder() = %q", d.FancyBorder())
	}
}
