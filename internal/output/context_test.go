package output

import (
	"context"
	"testing"
)

func TestWithFormat(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{name: "table format", format: FormatTable},
		{name: "json format", format: FormatJSON},
		{name: "yaml format", format: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithFormat(context.Background(), tt.format)
			if got := FormatFromContext(ctx); got != tt.format {
				t.Errorf("FormatFromContext() = %v, want %v", got, tt.format)
			}
		})
	}
}

func TestFormatFromContext_Default(t *testing.T) {
	if got := FormatFromContext(context.Background()); got != FormatTable {
		t.Errorf("FormatFromContext() with empty context = %v, want %v", got, FormatTable)
	}
}
