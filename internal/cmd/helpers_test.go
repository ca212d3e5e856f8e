package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/salmonumbrella/asciitable/internal/config"
)

// setupTestConfig points the config loader at a file inside a temp dir.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tbl", "config.yaml")
	orig := config.SetConfigPathFunc(func() (string, error) { return path, nil })
	t.Cleanup(func() { config.SetConfigPathFunc(orig) })
	return path
}

// runCLI executes the CLI with stdin and returns what it wrote.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := &App{
		Stdin:     strings.NewReader(stdin),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Version:   "test",
		Commit:    "abc123",
		BuildTime: "now",
	}
	err := app.Execute(context.Background(), args)
	return stdout.String(), stderr.String(), err
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}
