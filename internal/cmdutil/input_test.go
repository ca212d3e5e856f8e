package cmdutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputSource(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "source.csv")
	if err := os.WriteFile(testFile, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	emptyFile := filepath.Join(tmpDir, "empty.csv")
	if err := os.WriteFile(emptyFile, []byte(""), 0o644); err != nil {
		t.Fatalf("failed to create empty test file: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		stdin   string
		want    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "read file",
			path: testFile,
			want: "a,b\n1,2\n",
		},
		{
			name: "read empty file",
			path: emptyFile,
			want: "",
		},
		{
			name:  "dash reads stdin",
			path:  "-",
			stdin: "x\n1\n",
			want:  "x\n1\n",
		},
		{
			name:  "empty path reads stdin",
			path:  "",
			stdin: "piped",
			want:  "piped",
		},
		{
			name:    "file not found",
			path:    filepath.Join(tmpDir, "nonexistent.csv"),
			wantErr: true,
			errMsg:  "failed to read file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadInputSource(tt.path, strings.NewReader(tt.stdin))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadInputSource_NilStdin(t *testing.T) {
	if _, err := ReadInputSource("-", nil); err == nil {
		t.Fatal("expected error for nil stdin")
	}
}

func TestSourceName(t *testing.T) {
	if got := SourceName("-"); got != "" {
		t.Errorf("SourceName(-) = %q, want empty", got)
	}
	if got := SourceName("data.json"); got != "data.json" {
		t.Errorf("SourceName(data.json) = %q", got)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "", want: 0},
		{in: ";", want: ';'},
		{in: `\t`, want: '\t'},
		{in: "tab", want: '\t'},
		{in: "\t", want: '\t'},
		{in: ";;", wantErr: true},
		{in: "\n", wantErr: true},
		{in: `"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelimiter(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDelimiter(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDelimiter(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadInputSource_TooLarge(t *testing.T) {
	big := strings.NewReader(strings.Repeat("x", MaxInputSize+1))
	_, err := ReadInputSource("-", big)
	if err == nil || !strings.Contains(err.Error(), "maximum size") {
		t.Fatalf("expected size error, got %v", err)
	}
}
