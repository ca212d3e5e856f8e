package cmd

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/salmonumbrella/asciitable/internal/iocontext"
	"github.com/salmonumbrella/asciitable/internal/output"
)

func stdinFromContext(ctx context.Context) io.Reader {
	return iocontext.Stdin(ctx)
}

func stdoutFromContext(ctx context.Context) io.Writer {
	return iocontext.Stdout(ctx)
}

func stderrFromContext(ctx context.Context) io.Writer {
	return iocontext.Stderr(ctx)
}

func printerForContext(ctx context.Context) *output.Printer {
	return output.NewPrinter(stdoutFromContext(ctx), output.FormatFromContext(ctx))
}

// terminalWidth reports the column count of the terminal behind w, then
// $COLUMNS, or 0 when neither is known.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && n > 0 {
		return n
	}
	return 0
}
