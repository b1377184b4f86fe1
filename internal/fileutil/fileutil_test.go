package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(doc, []byte("# from file"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		path    string
		stdin   string
		limit   int64
		want    string
		wantErr error
		anyErr  bool
	}{
		{name: "file", path: doc, limit: 100, want: "# from file"},
		{name: "empty path reads stdin", path: "", stdin: "piped", limit: 100, want: "piped"},
		{name: "dash reads stdin", path: "-", stdin: "dash", limit: 100, want: "dash"},
		{name: "input at limit", path: "-", stdin: "12345", limit: 5, want: "12345"},
		{name: "input over limit", path: "-", stdin: "123456", limit: 5, wantErr: ErrInputTooLarge},
		{name: "file over limit", path: doc, limit: 3, wantErr: ErrInputTooLarge},
		{name: "missing file", path: filepath.Join(dir, "nope.md"), limit: 10, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadInput(tt.path, strings.NewReader(tt.stdin), tt.limit)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ReadInput() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("ReadInput() expected error")
				}
			default:
				if err != nil {
					t.Fatalf("ReadInput() unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("ReadInput() = %q, want %q", got, tt.want)
				}
			}
		})
	}
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates and replaces", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.html")
		for _, content := range []string{"<p>one</p>", "<p>two</p>"} {
			if err := WriteFileAtomic(path, content); err != nil {
				t.Fatalf("WriteFileAtomic() error = %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if string(got) != content {
				t.Errorf("content = %q, want %q", got, content)
			}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory holds %d entries, want only the output", len(entries))
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if err := WriteFileAtomic("", "x"); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("WriteFileAtomic() error = %v, want ErrEmptyPath", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.md")
		if err := WriteFileAtomic(path, "x"); err == nil {
			t.Error("WriteFileAtomic() expected error for missing directory")
		}
	})
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.md")
	if err := os.WriteFile(file, nil, 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"regular file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "missing"), false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"editor", false},
		{"my-config", false},
		{"./editor.yaml", true},
		{"../shared/editor.yaml", true},
		{"/etc/mdedit.yaml", true},
		{`C:\config\mdedit.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
