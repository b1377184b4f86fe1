package assets

import (
	"fmt"
	"strings"
)

// Kind is a family of assets sharing a directory and file extension.
type Kind int

// Asset kinds.
const (
	Style Kind = iota
	Template
)

func (k Kind) String() string {
	if k == Template {
		return "template"
	}
	return "style"
}

func (k Kind) dir() string {
	if k == Template {
		return "templates"
	}
	return "styles"
}

func (k Kind) ext() string {
	if k == Template {
		return ".html"
	}
	return ".css"
}

func (k Kind) notFound() error {
	if k == Template {
		return ErrTemplateNotFound
	}
	return ErrStyleNotFound
}

// path returns the slash-separated location of name inside a Set.
func (k Kind) path(name string) string {
	return k.dir() + "/" + name + k.ext()
}

// Loader loads preview stylesheets and page templates by name.
type Loader interface {
	// LoadStyle returns ErrStyleNotFound for unknown names.
	LoadStyle(name string) (string, error)
	// LoadTemplate returns ErrTemplateNotFound for unknown names.
	LoadTemplate(name string) (string, error)
}

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
)

// maxNameLength bounds names coming from config files and flags.
const maxNameLength = 64

// ValidateName checks that name is a bare file name stem: no separators,
// dots or whitespace.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidAssetName, maxNameLength)
	case strings.ContainsAny(name, "/\\. \t\r\n"):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// LoadStyle loads a built-in stylesheet.
func LoadStyle(name string) (string, error) {
	return builtin.LoadStyle(name)
}

// LoadTemplate loads a built-in page template.
func LoadTemplate(name string) (string, error) {
	return builtin.LoadTemplate(name)
}

// Styles lists the built-in stylesheet names, sorted.
func Styles() []string {
	return builtin.Names(Style)
}

// Templates lists the built-in template names, sorted.
func Templates() []string {
	return builtin.Names(Template)
}
