// Package fileutil provides the file helpers the CLI needs: bounded input
// reads and atomic output writes.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinName selects standard input in ReadInput.
const StdinName = "-"

// Sentinel errors for file utility operations.
var (
	ErrInputTooLarge = errors.New("input exceeds maximum size")
	ErrEmptyPath     = errors.New("path cannot be empty")
)

// ReadInput reads the document at path, or stdin when path is empty or
// "-". It fails with ErrInputTooLarge when more than limit bytes are
// available.
func ReadInput(path string, stdin io.Reader, limit int64) (string, error) {
	var r io.Reader
	if path == "" || path == StdinName {
		r = stdin
	} else {
		f, err := os.Open(path) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", fmt.Errorf("opening input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: max %d bytes", ErrInputTooLarge, limit)
	}
	return string(data), nil
}

// WriteFileAtomic writes content to a temporary file next to path and
// renames it into place, so readers never see a partial document.
func WriteFileAtomic(path, content string) (err error) {
	if path == "" {
		return ErrEmptyPath
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".mdedit-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil { // #nosec G302 -- output documents are world-readable like any editor save
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "editor" -> false (name)
//   - "./editor.yaml" -> true (relative path)
//   - "/etc/mdedit.yaml" -> true (absolute)
//   - "C:\config\mdedit.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
