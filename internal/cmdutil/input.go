// Package cmdutil holds small helpers shared by CLI commands.
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxInputSize is the largest input ReadInputSource accepts (10MB). Tables
// are laid out in memory, so larger inputs are refused up front.
const MaxInputSize = 10 * 1024 * 1024

// ReadInputSource reads input from a file path, or from stdin when path is
// "-" or empty.
func ReadInputSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, fmt.Errorf("no input: stdin is not available")
		}
		data, err := readLimited(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := readLimited(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return data, nil
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("input exceeds maximum size of %d bytes", MaxInputSize)
	}
	return data, nil
}

// SourceName returns the name used for format detection: the path itself,
// or "" for stdin.
func SourceName(path string) string {
	if path == "-" {
		return ""
	}
	return strings.TrimSpace(path)
}

// ParseDelimiter converts a --delimiter value into a rune. The escapes \t
// and "tab" both mean a tab character. Empty means the format default.
func ParseDelimiter(value string) (rune, error) {
	switch value {
	case "":
		return 0, nil
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(value)
	if len(r) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}
	if r[0] == '\n' || r[0] == '\r' || r[0] == '"' {
		return 0, fmt.Errorf("delimiter %q is not allowed", value)
	}
	return r[0], nil
}
