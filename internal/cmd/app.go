package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/salmonumbrella/asciitable/internal/iocontext"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string
	Commit    string
	BuildTime string
}

// NewApp constructs an App with default settings.
func NewApp() *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Version:   "dev",
		Commit:    "unknown",
		BuildTime: "unknown",
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)

	ctx = iocontext.WithStreams(ctx, a.streams())
	executed, err := root.ExecuteContextC(ctx)
	if err != nil {
		errCtx := ctx
		if executed != nil && executed.Context() != nil {
			errCtx = executed.Context()
		}
		printCommandError(errCtx, err)
		return err
	}
	return nil
}

func (a *App) streams() iocontext.Streams {
	return iocontext.Streams{In: a.Stdin, Out: a.Stdout, Err: a.Stderr}
}

// RootCommand exposes the root Cobra command for embedding/tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
