package mdedit

import (
	"fmt"

	"github.com/alnah/go-mdedit/internal/textedit"
)

// UpdateFunc commits a new document value to the host. A non-nil error
// rejects the edit and the selection is left alone.
type UpdateFunc func(value string) error

// valueSetter is implemented by buffers that can take a new value
// directly, such as StringBuffer.
type valueSetter interface {
	SetValue(v string)
}

// Actions runs toolbar operations against a Buffer. Each call reads the
// buffer's value and selection at call time, commits the edit through the
// update function, then schedules focus and selection restore.
//
// Actions with a nil Buffer is valid and every call is a no-op.
type Actions struct {
	buffer Buffer
	update UpdateFunc
	sched  Scheduler
}

// NewActions binds actions to buf. A nil update writes through to buf when
// it has a SetValue method. A nil sched restores the selection immediately.
func NewActions(buf Buffer, update UpdateFunc, sched Scheduler) *Actions {
	if update == nil {
		if s, ok := buf.(valueSetter); ok {
			update = func(v string) error {
				s.SetValue(v)
				return nil
			}
		}
	}
	if sched == nil {
		sched = ImmediateScheduler{}
	}
	return &Actions{buffer: buf, update: update, sched: sched}
}

// Apply runs the catalogued action called name. Unknown names return
// ErrUnknownAction and a rejected edit returns the update function's
// error. A detached Actions returns nil without doing anything.
func (a *Actions) Apply(name string, opts ...Option) error {
	action, ok := textedit.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a.run(action.Apply, opts)
}

func (a *Actions) run(fn textedit.ApplyFunc, opts []Option) error {
	if a == nil || a.buffer == nil {
		return nil
	}
	text := a.buffer.Value()
	start, end := a.buffer.Selection()
	edit := fn(text, Selection{Start: start, End: end}, opts...)
	if !edit.Changed(text) {
		return nil
	}

	if a.update != nil {
		if err := a.update(edit.Text); err != nil {
			return err
		}
	}
	sel := edit.Selection
	a.sched.AfterPaint(func() {
		a.buffer.Focus()
		a.buffer.SetSelection(sel.Start, sel.End)
	})
	return nil
}

// The methods below run one action each and return what Apply returns for
// it: the update function's error when the edit was rejected, such as
// ErrTooLong from an Editor. A detached Actions always returns nil.

// Bold wraps the selection in "**", or inserts "**bold text**".
func (a *Actions) Bold(opts ...Option) error { return a.run(textedit.Bold, opts) }

// Italic wraps the selection in "*".
func (a *Actions) Italic(opts ...Option) error { return a.run(textedit.Italic, opts) }

// Strikethrough wraps the selection in "~~".
func (a *Actions) Strikethrough(opts ...Option) error { return a.run(textedit.Strikethrough, opts) }

// InlineCode wraps the selection in backticks.
func (a *Actions) InlineCode(opts ...Option) error { return a.run(textedit.InlineCode, opts) }

// Heading sets the line's heading level (1-6). Applying the level the line
// already has removes it.
func (a *Actions) Heading(level int, opts ...Option) error {
	return a.run(func(text string, sel Selection, opts ...Option) Edit {
		return textedit.Heading(text, sel, level, opts...)
	}, opts)
}

// Blockquote prefixes the line with "> ".
func (a *Actions) Blockquote(opts ...Option) error { return a.run(textedit.Blockquote, opts) }

// UnorderedList prefixes the line with "- ".
func (a *Actions) UnorderedList(opts ...Option) error { return a.run(textedit.UnorderedList, opts) }

// OrderedList prefixes the line with "1. ".
func (a *Actions) OrderedList(opts ...Option) error { return a.run(textedit.OrderedList, opts) }

// TaskList prefixes the line with "- [ ] ".
func (a *Actions) TaskList(opts ...Option) error { return a.run(textedit.TaskList, opts) }

// Link turns the selection into a link.
func (a *Actions) Link(opts ...Option) error { return a.run(textedit.Link, opts) }

// Image inserts an image reference.
func (a *Actions) Image(opts ...Option) error { return a.run(textedit.Image, opts) }

// HorizontalRule inserts a thematic break.
func (a *Actions) HorizontalRule(opts ...Option) error { return a.run(textedit.HorizontalRule, opts) }

// CodeBlock inserts an empty fenced code block.
func (a *Actions) CodeBlock(opts ...Option) error { return a.run(textedit.CodeBlock, opts) }

// Table inserts a two-column table skeleton.
func (a *Actions) Table(opts ...Option) error { return a.run(textedit.Table, opts) }
