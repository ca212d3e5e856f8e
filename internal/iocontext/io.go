// Package iocontext carries the process streams through a context so commands
// can be run against buffers in tests.
package iocontext

import (
	"context"
	"io"
	"os"
)

// Streams groups the three standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// OS returns the process streams.
func OS() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

type ctxKey struct{}

// WithStreams attaches s to ctx. Nil members fall back to the process
// streams when read back.
func WithStreams(ctx context.Context, s Streams) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func fromContext(ctx context.Context) Streams {
	s, _ := ctx.Value(ctxKey{}).(Streams)
	return s
}

// Stdin returns the input stream from ctx, or os.Stdin.
func Stdin(ctx context.Context) io.Reader {
	if r := fromContext(ctx).In; r != nil {
		return r
	}
	return os.Stdin
}

// Stdout returns the output stream from ctx, or os.Stdout.
func Stdout(ctx context.Context) io.Writer {
	if w := fromContext(ctx).Out; w != nil {
		return w
	}
	return os.Stdout
}

// Stderr returns the error stream from ctx, or os.Stderr.
func Stderr(ctx context.Context) io.Writer {
	if w := fromContext(ctx).Err; w != nil {
		return w
	}
	return os.Stderr
}
