package assets

import (
	"errors"
	"slices"
)

// Resolver looks names up in a custom set first and falls back to the
// built-in set when the custom one does not have them.
type Resolver struct {
	custom  *Set // nil without a custom directory
	builtin *Set
}

// NewResolver creates a Resolver. An empty dir uses only the built-in
// assets.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{builtin: Embedded()}
	if dir != "" {
		custom, err := OpenDir(dir)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

// Close releases the custom directory.
func (r *Resolver) Close() error {
	if r.custom == nil {
		return nil
	}
	return r.custom.Close()
}

// Load reads the asset called name, custom first. Only a missing asset
// falls back; invalid names and read errors are returned as is.
func (r *Resolver) Load(kind Kind, name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.Load(kind, name)
		if !errors.Is(err, kind.notFound()) {
			return content, err
		}
	}
	return r.builtin.Load(kind, name)
}

// LoadStyle loads a stylesheet, custom first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.Load(Style, name)
}

// LoadTemplate loads a page template, custom first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.Load(Template, name)
}

// Names lists the assets of a kind available from either set, sorted and
// without duplicates.
func (r *Resolver) Names(kind Kind) []string {
	names := r.builtin.Names(kind)
	if r.custom != nil {
		names = append(names, r.custom.Names(kind)...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// HasCustom reports whether a custom directory is configured.
func (r *Resolver) HasCustom() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
