package cmd

import (
	"context"

	"github.com/salmonumbrella/asciitable/internal/config"
	"github.com/salmonumbrella/asciitable/internal/design"
)

type (
	errorFormatKey struct{}
	configKey      struct{}
	styleKey       struct{}
)

// tableStyle is the resolved glyph and padding choice for a command, after
// config defaults and flag overrides are merged.
type tableStyle struct {
	Glyphs  design.Glyphs
	Padding int
}

// WithErrorFormat stores the error format in the context.
func WithErrorFormat(ctx context.Context, format string) context.Context {
	return context.WithValue(ctx, errorFormatKey{}, format)
}

// ErrorFormatFromContext retrieves the error format from context.
func ErrorFormatFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(errorFormatKey{}).(string); ok {
		return v
	}
	return ""
}

// WithConfig stores loaded CLI config in context for downstream helpers.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext retrieves CLI config from context. It never returns nil.
func ConfigFromContext(ctx context.Context) *config.Config {
	if v, ok := ctx.Value(configKey{}).(*config.Config); ok && v != nil {
		return v
	}
	return &config.Config{}
}

func withTableStyle(ctx context.Context, s tableStyle) context.Context {
	return context.WithValue(ctx, styleKey{}, s)
}

func tableStyleFromContext(ctx context.Context) tableStyle {
	if v, ok := ctx.Value(styleKey{}).(tableStyle); ok {
		return v
	}
	return tableStyle{Glyphs: design.DefaultGlyphs, Padding: design.DefaultPadding}
}
