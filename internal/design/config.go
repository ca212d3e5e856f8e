package design

import (
	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

// Design is the mutable drawing configuration of one table. The borders are
// recomputed lazily after a change to the corner glyph, the horizontal glyph
// or the padding. A Design is not safe for concurrent use.
type Design struct {
	shape   Shape
	glyphs  Glyphs
	padding int

	borders Borders
	dirty   bool
}

// Option configures a Design.
type Option func(*Design)

// WithGlyphs sets all three glyphs.
func WithGlyphs(g Glyphs) Option {
	return func(d *Design) {
		d.glyphs = g
	}
}

// WithPadding sets the per-side cell padding.
func WithPadding(p int) Option {
	return func(d *Design) {
		d.padding = p
	}
}

// New creates a Design for shape with the default glyphs and padding, then
// applies opts.
func New(shape Shape, opts ...Option) (*Design, error) {
	if shape == nil {
		return nil, clierrors.InvalidArgument("design", "table", "must not be nil")
	}
	d := &Design{
		shape:   shape,
		glyphs:  DefaultGlyphs,
		padding: DefaultPadding,
		dirty:   true,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.padding < 0 {
		return nil, clierrors.InvalidArgument("design", "padding", "must be >= 0, got %d", d.padding)
	}
	return d, nil
}

// Corner returns the corner glyph.
func (d *Design) Corner() rune { return d.glyphs.Corner }

// Horizontal returns the horizontal glyph.
func (d *Design) Horizontal() rune { return d.glyphs.Horizontal }

// Vertical returns the vertical glyph.
func (d *Design) Vertical() rune { return d.glyphs.Vertical }

// Padding returns the per-side cell padding.
func (d *Design) Padding() int { return d.padding }

// Glyphs returns the current glyph set.
func (d *Design) Glyphs() Glyphs { return d.glyphs }

// SetCorner changes the corner glyph.
func (d *Design) SetCorner(r rune) {
	if r == d.glyphs.Corner {
		return
	}
	d.glyphs.Corner = r
	d.dirty = true
}

// SetHorizontal changes the horizontal glyph.
func (d *Design) SetHorizontal(r rune) {
	if r == d.glyphs.Horizontal {
		return
	}
	d.glyphs.Horizontal = r
	d.dirty = true
}

// SetVertical changes the vertical glyph. Borders do not use it.
func (d *Design) SetVertical(r rune) {
	d.glyphs.Vertical = r
}

// SetPadding changes the per-side cell padding.
func (d *Design) SetPadding(p int) error {
	if p < 0 {
		return clierrors.InvalidArgument("design", "padding", "must be >= 0, got %d", p)
	}
	if p == d.padding {
		return nil
	}
	d.padding = p
	d.dirty = true
	return nil
}

// Borders returns the border lines, recomputing them if the configuration
// changed since the last call.
func (d *Design) Borders() Borders {
	if d.dirty {
		// shape is non-nil and padding non-negative by construction.
		d.borders, _ = ComputeBorders(d.shape, d.glyphs, d.padding)
		d.dirty = false
	}
	return d.borders
}

// FancyBorder returns the border with corner glyphs at both ends.
func (d *Design) FancyBorder() string {
	return d.Borders().Fancy
}

// PlainBorder returns the border drawn with the horizontal glyph only.
func (d *Design) PlainBorder() string {
	return d.Borders().Plain
}

// Stale reports whether the cached borders will be recomputed on next use.
func (d *Design) Stale() bool {
	return d.dirty
}
