// Package design computes the border lines of a table and holds the glyph
// and padding settings the renderer draws with.
package design

import (
	"strings"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// Shape is what the border computation needs to know about a table.
type Shape interface {
	TotalWidth() int
	ColumnCount() int
}

// Glyphs are the characters a table is drawn with.
type Glyphs struct {
	Corner     rune
	Horizontal rune
	Vertical   rune
}

// DefaultGlyphs draws +---+ borders and | separators.
var DefaultGlyphs = Glyphs{Corner: '+', Horizontal: '-', Vertical: '|'}

// DefaultPadding is the number of spaces on each side of a cell value.
const DefaultPadding = 1

// Borders are the two precomputed border lines. Fancy carries the corner
// glyph at both ends; Plain is the horizontal glyph throughout.
type Borders struct {
	Fancy string
	Plain string
}

// BorderWidth returns the length of a border line for shape with padding
// spaces on each side of every cell.
func BorderWidth(shape Shape, padding int) int {
	n := shape.ColumnCount()
	return shape.TotalWidth() + 2*padding*n + n + 1
}

// ComputeBorders derives both border lines from shape, glyphs and padding.
func ComputeBorders(shape Shape, glyphs Glyphs, padding int) (Borders, error) {
	if shape == nil {
		return Borders{}, clierrors.InvalidArgument("computeBorders", "shape", "must not be nil")
	}
	if padding < 0 {
		return Borders{}, clierrors.InvalidArgument("computeBorders", "padding", "must be >= 0, got %d", padding)
	}
	width := BorderWidth(shape, padding)
	return Borders{
		Fancy: designBorder(width, glyphs.Corner, glyphs.Horizontal),
		Plain: designBorder(width, glyphs.Horizontal, glyphs.Horizontal),
	}, nil
}

func designBorder(width int, corner, fill rune) string {
	if width < 2 {
		return strings.Repeat(string(corner), width)
	}
	var b strings.Builder
	b.Grow(width)
	b.WriteRune(corner)
	b.WriteString(strings.Repeat(string(fill), width-2))
	b.WriteRune(corner)
	return b.String()
}
