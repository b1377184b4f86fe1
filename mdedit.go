package mdedit

import (
	"fmt"

	"github.com/alnah/go-mdedit/internal/highlight"
	"github.com/alnah/go-mdedit/internal/textedit"
)

type (
	// Selection is a half-open rune range; Start == End is a caret.
	Selection = textedit.Selection

	// Edit is a new document value plus the selection to restore.
	Edit = textedit.Edit

	// Option adjusts the target of an action.
	Option = textedit.Option

	// Category names a highlight token class.
	Category = highlight.Category

	// Colors maps token categories to CSS color values.
	Colors = highlight.Colors
)

// OnLine targets the 1-based line n instead of the live selection.
func OnLine(n int) Option {
	return textedit.OnLine(n)
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return textedit.Caret(pos)
}

// Highlight returns the sanitized overlay markup for text. colors may be
// nil or partial; missing or invalid entries use the defaults.
func Highlight(text string, colors Colors) string {
	return highlight.Highlight(text, colors)
}

// PlainText strips overlay markup back to the source text.
func PlainText(overlay string) string {
	return highlight.PlainText(overlay)
}

// DefaultColors returns the built-in overlay palette.
func DefaultColors() Colors {
	return highlight.DefaultColors()
}

// ResolveColors merges overrides over the default palette key by key.
func ResolveColors(overrides Colors) Colors {
	return highlight.Resolve(overrides)
}

// ColorsFromStyle derives an overlay palette from a chroma style.
func ColorsFromStyle(name string) (Colors, error) {
	return highlight.ColorsFromStyle(name)
}

// ApplyAction runs the catalogued action called name on text.
func ApplyAction(name, text string, sel Selection, opts ...Option) (Edit, error) {
	action, ok := textedit.Lookup(name)
	if !ok {
		return Edit{}, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return action.Apply(text, sel, opts...), nil
}

// ToggleCheckbox flips the index-th task checkbox (zero-based, in document
// order). It reports false and returns text unchanged when there is no
// such checkbox.
func ToggleCheckbox(text string, index int) (string, bool) {
	return textedit.ToggleCheckbox(text, index)
}

// CountCheckboxes returns the number of task checkboxes in text.
func CountCheckboxes(text string) int {
	return textedit.CountCheckboxes(text)
}

// ActionInfo describes a catalogued action.
type ActionInfo struct {
	Name  string
	Title string
	Group string
}

// Catalog lists the available actions in toolbar order.
func Catalog() []ActionInfo {
	actions := textedit.Catalog()
	out := make([]ActionInfo, len(actions))
	for i, a := range actions {
		out[i] = ActionInfo{Name: a.Name, Title: a.Title, Group: a.Group}
	}
	return out
}
