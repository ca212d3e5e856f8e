// Package ui writes status messages for humans to stderr. Tables themselves
// are never colored; only these side-channel messages are.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto automatically detects whether to use colors based on terminal capabilities.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output regardless of terminal capabilities.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode converts auto|always|never. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto|always|never)", s)
	}
}

type contextKey struct{}

// UI prints status lines. Info and Success are dropped in quiet mode;
// warnings and errors always print.
type UI struct {
	out   *termenv.Output
	color ColorMode
	quiet bool
}

// New creates a UI writing to w (os.Stderr when nil). It respects NO_COLOR.
func New(w io.Writer, mode ColorMode, quiet bool) *UI {
	if w == nil {
		w = os.Stderr
	}
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.NewOutput(w).EnvColorProfile()
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
	}

	return &UI{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		color: mode,
		quiet: quiet,
	}
}

// WithUI returns a new context with the UI instance attached.
func WithUI(ctx context.Context, ui *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, ui)
}

// FromContext retrieves the UI instance from the context, or a default
// stderr UI.
func FromContext(ctx context.Context) *UI {
	if ui, ok := ctx.Value(contextKey{}).(*UI); ok {
		return ui
	}
	return New(os.Stderr, ColorAuto, false)
}

func (u *UI) println(prefix string, color termenv.Color, format string, args ...any) {
	msg := prefix + fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String(msg).Foreground(color))
}

// Success prints a success message in green.
func (u *UI) Success(format string, args ...any) {
	if u.quiet {
		return
	}
	u.println("✓ ", termenv.ANSIGreen, format, args...)
}

// Info prints an informational message in blue.
func (u *UI) Info(format string, args ...any) {
	if u.quiet {
		return
	}
	u.println("ℹ ", termenv.ANSIBlue, format, args...)
}

// Warning prints a warning message in yellow.
func (u *UI) Warning(format string, args ...any) {
	u.println("⚠ ", termenv.ANSIYellow, format, args...)
}

// Error prints an error message in red.
func (u *UI) Error(format string, args ...any) {
	u.println("✗ ", termenv.ANSIRed, format, args...)
}
