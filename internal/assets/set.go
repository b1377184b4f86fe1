package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
)

//go:embed styles/*.css templates/*.html
var embedded embed.FS

// builtin serves the package-level helpers.
var builtin = Embedded()

// Set is a tree of styles and templates. It is safe for concurrent use.
type Set struct {
	fsys fs.FS
	root *os.Root // nil for the embedded set
}

// Embedded returns the set compiled into the binary.
func Embedded() *Set {
	return &Set{fsys: embedded}
}

// OpenDir opens the set rooted at dir. Lookups cannot leave dir, even
// through symlinks. Close releases the directory handle.
func OpenDir(dir string) (*Set, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &Set{fsys: root.FS(), root: root}, nil
}

// Close releases the directory handle of a set opened with OpenDir.
func (s *Set) Close() error {
	if s.root == nil {
		return nil
	}
	return s.root.Close()
}

// Load reads the asset called name.
func (s *Set) Load(kind Kind, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, kind.path(name))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", kind.notFound(), name)
	case err != nil:
		return "", fmt.Errorf("%w: %s %q: %v", ErrAssetRead, kind, name, err)
	}
	return string(data), nil
}

// LoadStyle loads a stylesheet.
func (s *Set) LoadStyle(name string) (string, error) {
	return s.Load(Style, name)
}

// LoadTemplate loads a page template.
func (s *Set) LoadTemplate(name string) (string, error) {
	return s.Load(Template, name)
}

// Names lists the assets of a kind, sorted. A missing directory yields
// no names.
func (s *Set) Names(kind Kind) []string {
	entries, err := fs.ReadDir(s.fsys, kind.dir())
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), kind.ext())
		if ok && !e.IsDir() && ValidateName(name) == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*Set)(nil)
