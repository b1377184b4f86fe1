package textedit

import "regexp"

// Wrap surrounds the selection with before and after. An empty selection
// is replaced by placeholder, which ends up selected so it can be typed
// over. With OnLine, the whole line is wrapped.
func Wrap(text string, sel Selection, before, after, placeholder string, opts ...Option) Edit {
	r := []rune(text)
	target, ok := resolve(r, sel, buildOptions(opts))
	if !ok {
		return unchanged(text, sel)
	}

	content := string(r[target.Start:target.End])
	if content == "" {
		content = placeholder
	}

	out := string(r[:target.Start]) + before + content + after + string(r[target.End:])
	start := target.Start + runeLen(before)
	return Edit{
		Text:      out,
		Selection: Selection{Start: start, End: start + runeLen(content)},
	}
}

// headingPrefix matches the prefix a heading action inserts.
var headingPrefix = regexp.MustCompile(`^#{1,6} $`)

// Prefix inserts prefix at the start of the line holding the selection
// start (or the OnLine target). The caret lands right after the prefix.
//
// Heading prefixes are exclusive: an existing "#" marker on the line is
// replaced, and applying the level the line already has removes it. Every
// other prefix stacks, so quoting a quoted line nests it ("> > ").
func Prefix(text string, sel Selection, prefix string, opts ...Option) Edit {
	r := []rune(text)
	o := buildOptions(opts)
	target, ok := resolve(r, sel, o)
	if !ok {
		return unchanged(text, sel)
	}

	start := target.Start
	if !o.hasLine {
		start = lineStart(r, target.Start)
	}

	existing := 0
	if headingPrefix.MatchString(prefix) {
		existing = headingMarkerLen(r[start:])
		if existing > 0 && headingLevel(r[start:]) == runeLen(prefix)-1 {
			prefix = ""
		}
	}

	out := string(r[:start]) + prefix + string(r[start+existing:])
	return Edit{Text: out, Selection: Caret(start + runeLen(prefix))}
}

// headingMarkerLen returns the length of a heading marker ("#" x 1-6 and
// the blanks after it) at the start of line, or 0 if there is none.
func headingMarkerLen(line []rune) int {
	level := headingLevel(line)
	if level == 0 {
		return 0
	}
	n := level
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

// headingLevel returns the number of leading "#" of an ATX heading line,
// or 0 if the line is not one.
func headingLevel(line []rune) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0
	}
	if level < len(line) && line[level] != ' ' && line[level] != '\t' && line[level] != '\n' {
		return 0
	}
	return level
}

// Block splices block in place of the selection, after a newline if the
// insertion point is not already at a line start. The caret lands at
// caretOffset runes into the block. With OnLine, the block goes after the
// end of that line and the line itself is kept.
func Block(text string, sel Selection, block string, caretOffset int, opts ...Option) Edit {
	r := []rune(text)
	o := buildOptions(opts)
	target, ok := resolve(r, sel, o)
	if !ok {
		return unchanged(text, sel)
	}
	if o.hasLine {
		target = Caret(target.End)
	}

	pre := ""
	if target.Start > 0 && r[target.Start-1] != '\n' {
		pre = "\n"
	}

	caretOffset = min(max(caretOffset, 0), runeLen(block))
	out := string(r[:target.Start]) + pre + block + string(r[target.End:])
	return Edit{Text: out, Selection: Caret(target.Start + runeLen(pre) + caretOffset)}
}
