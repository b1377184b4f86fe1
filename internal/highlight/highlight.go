package highlight

import (
	"html"
	"strings"
)

// Highlight converts markdown text into sanitized overlay markup.
// colors may be nil or partial; missing keys fall back to the defaults.
// Highlight never fails: input it cannot make sense of stays plain text.
func Highlight(text string, colors Colors) string {
	return Sanitize(Render(text, colors))
}

// Render runs the escape and rule passes and returns unsanitized markup.
// Callers that put the result into a document should use Highlight.
func Render(text string, colors Colors) string {
	h := &highlighter{colors: Resolve(colors)}
	s := escape(text)
	for _, r := range rules {
		s = h.apply(r, s)
	}
	return h.frags.expand(s)
}

type highlighter struct {
	colors Colors
	frags  fragments
}

// apply replaces every match of r in s.
func (h *highlighter) apply(r rule, s string) string {
	matches := r.re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(matches)*16)
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		b.WriteString(h.replace(r, submatches(s, m)))
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// replace renders one match, or returns it untouched when the pieces do
// not cover the match exactly or would split an earlier span.
func (h *highlighter) replace(r rule, g []string) string {
	pieces := r.build(&h.frags, g)

	var joined strings.Builder
	for _, p := range pieces {
		joined.WriteString(p.text)
		if p.kind != pieceRaw && !h.frags.balanced(p.text) {
			return g[0]
		}
	}
	if joined.String() != g[0] {
		return g[0]
	}

	var b strings.Builder
	for _, p := range pieces {
		if p.text == "" {
			continue
		}
		switch p.kind {
		case pieceRaw:
			b.WriteString(p.text)
		case pieceWrap:
			b.WriteString(h.frags.add(fragment{kind: fragmentOpen, html: h.openTag(p.cat)}))
			b.WriteString(p.text)
			b.WriteString(h.frags.add(fragment{kind: fragmentClose, html: "</span>"}))
		case pieceAtom:
			text := h.frags.flatten(p.text)
			b.WriteString(h.frags.add(fragment{
				kind: fragmentAtom,
				html: h.openTag(p.cat) + text + "</span>",
				text: text,
			}))
		}
	}
	return b.String()
}

func (h *highlighter) openTag(cat Category) string {
	return `<span style="` + html.EscapeString(h.colors.style(cat)) + `">`
}

// submatches converts a FindAllStringSubmatchIndex entry into strings.
func submatches(s string, m []int) []string {
	g := make([]string, len(m)/2)
	for i := range g {
		if m[2*i] >= 0 {
			g[i] = s[m[2*i]:m[2*i+1]]
		}
	}
	return g
}
