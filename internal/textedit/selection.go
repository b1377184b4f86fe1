package textedit

import "unicode/utf8"

// Selection is a half-open rune range [Start, End). Start == End is a caret.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Empty reports whether the selection is a caret.
func (s Selection) Empty() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// clamp orders the bounds and keeps them inside [0, n].
func (s Selection) clamp(n int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, 0), n)
	return s
}

// Edit is the result of an operation: the new text and the selection to
// restore once the text has been committed to the control.
type Edit struct {
	Text      string
	Selection Selection
}

// Changed reports whether the edit differs from the given text.
func (e Edit) Changed(text string) bool {
	return e.Text != text
}

// Option adjusts the target of an operation.
type Option func(*options)

type options struct {
	line    int
	hasLine bool
}

// OnLine targets the 1-based line n instead of the live selection.
func OnLine(n int) Option {
	return func(o *options) {
		o.line = n
		o.hasLine = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LineRange locates the 1-based line n. The range excludes the newline.
// It reports false when the text has fewer than n lines.
func LineRange(text string, n int) (Selection, bool) {
	return lineRange([]rune(text), n)
}

func lineRange(r []rune, n int) (Selection, bool) {
	if n < 1 {
		return Selection{}, false
	}
	start := 0
	for line := 1; ; line++ {
		end := start
		for end < len(r) && r[end] != '\n' {
			end++
		}
		if line == n {
			return Selection{Start: start, End: end}, true
		}
		if end == len(r) {
			return Selection{}, false
		}
		start = end + 1
	}
}

// LineCount returns the number of lines; the empty text has one line.
func LineCount(text string) int {
	n := 1
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			n++
		}
	}
	return n
}

// LineAt returns the 1-based line holding rune offset pos.
func LineAt(text string, pos int) int {
	line := 1
	for i, r := range []rune(text) {
		if i >= pos {
			break
		}
		if r == '\n' {
			line++
		}
	}
	return line
}

// lineStart returns the offset of the first rune of the line holding pos.
func lineStart(r []rune, pos int) int {
	for pos > 0 && r[pos-1] != '\n' {
		pos--
	}
	return pos
}

// resolve clamps sel and applies a line override. ok is false when the
// requested line does not exist.
func resolve(r []rune, sel Selection, o options) (Selection, bool) {
	sel = sel.clamp(len(r))
	if !o.hasLine {
		return sel, true
	}
	return lineRange(r, o.line)
}

// unchanged is the no-op result for text and sel.
func unchanged(text string, sel Selection) Edit {
	return Edit{Text: text, Selection: sel.clamp(utf8.RuneCountInString(text))}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
