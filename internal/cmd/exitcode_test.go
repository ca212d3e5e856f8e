package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	clierrors "github.com/salmonumbrella/asciitable/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "canceled", err: fmt.Errorf("render: %w", context.Canceled), want: ExitCanceled},
		{name: "user error", err: clierrors.NewUserError("bad flag", ""), want: ExitUser},
		{name: "validation error", err: &clierrors.ValidationError{Field: "ID", Message: "duplicate column name"}, want: ExitUser},
		{name: "unknown column", err: clierrors.UnknownColumnError("Nope", []string{"ID"}), want: ExitUser},
		{name: "invalid argument", err: clierrors.InvalidArgument("chop", "width", "must be >= 2, got %d", 1), want: ExitLayout},
		{name: "wrapped empty collection", err: fmt.Errorf("render row 0: %w", &clierrors.EmptyCollectionError{Op: "interleave"}), want: ExitLayout},
		{name: "mismatched sizes", err: &clierrors.MismatchedSizesError{Op: "interleave", Sizes: []int{1, 2}}, want: ExitLayout},
		{name: "plain error", err: errors.New("disk full"), want: ExitSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
