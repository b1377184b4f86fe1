package highlight

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Placeholder runes. A token is tokenStart, one or more hex digits encoded
// as digitBase+n, then tokenEnd. User text never contains these runes
// because escape rewrites them as numeric character references.
const (
	tokenStart = '\uE000'
	tokenEnd   = '\uE001'
	digitBase  = '\uE010'
	sentinelLo = '\uE000'
	sentinelHi = '\uE01F'
)

type fragmentKind int

const (
	fragmentOpen fragmentKind = iota
	fragmentClose
	fragmentAtom
)

// fragment is a piece of generated markup parked outside the working text.
type fragment struct {
	kind fragmentKind
	html string // emitted on expansion
	text string // escaped source text of an atom
}

// fragments is the table referenced by placeholder tokens.
type fragments struct {
	list []fragment
}

func (f *fragments) add(fr fragment) string {
	f.list = append(f.list, fr)
	return encodeToken(len(f.list) - 1)
}

func encodeToken(idx int) string {
	var b strings.Builder
	b.WriteRune(tokenStart)
	hex := fmt.Sprintf("%x", idx)
	for _, d := range hex {
		var n rune
		if d >= 'a' {
			n = d - 'a' + 10
		} else {
			n = d - '0'
		}
		b.WriteRune(digitBase + n)
	}
	b.WriteRune(tokenEnd)
	return b.String()
}

// decodeToken parses a token at the start of s. It returns the fragment
// index and the token's byte length, or ok=false if s does not start with
// a well-formed token.
func decodeToken(s string) (idx, size int, ok bool) {
	r, n := utf8.DecodeRuneInString(s)
	if r != tokenStart {
		return 0, 0, false
	}
	pos := n
	digits := 0
	for pos < len(s) {
		r, n = utf8.DecodeRuneInString(s[pos:])
		pos += n
		if r == tokenEnd {
			if digits == 0 {
				return 0, 0, false
			}
			return idx, pos, true
		}
		if r < digitBase || r > digitBase+15 {
			return 0, 0, false
		}
		idx = idx*16 + int(r-digitBase)
		digits++
	}
	return 0, 0, false
}

// walk visits s as a sequence of plain text runs and fragment references.
func (f *fragments) walk(s string, onText func(string), onFragment func(fragment)) {
	start := 0
	for i := 0; i < len(s); {
		if idx, size, ok := decodeToken(s[i:]); ok && idx < len(f.list) {
			if i > start {
				onText(s[start:i])
			}
			onFragment(f.list[idx])
			i += size
			start = i
			continue
		}
		_, n := utf8.DecodeRuneInString(s[i:])
		i += n
	}
	if start < len(s) {
		onText(s[start:])
	}
}

// balanced reports whether every open fragment in s is closed within s.
func (f *fragments) balanced(s string) bool {
	depth := 0
	ok := true
	f.walk(s, func(string) {}, func(fr fragment) {
		switch fr.kind {
		case fragmentOpen:
			depth++
		case fragmentClose:
			depth--
			if depth < 0 {
				ok = false
			}
		}
	})
	return ok && depth == 0
}

// flatten replaces fragments in s by the source text they carry.
func (f *fragments) flatten(s string) string {
	var b strings.Builder
	f.walk(s, func(t string) { b.WriteString(t) }, func(fr fragment) {
		if fr.kind == fragmentAtom {
			b.WriteString(fr.text)
		}
	})
	return b.String()
}

// expand replaces fragments in s by their markup.
func (f *fragments) expand(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	f.walk(s, func(t string) { b.WriteString(t) }, func(fr fragment) {
		b.WriteString(fr.html)
	})
	return b.String()
}

// splitTopLevel splits s on sep wherever no open fragment is pending.
// The separators are returned as their own elements, so joining the
// result reproduces s.
func (f *fragments) splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); {
		if idx, size, ok := decodeToken(s[i:]); ok && idx < len(f.list) {
			switch f.list[idx].kind {
			case fragmentOpen:
				depth++
			case fragmentClose:
				depth--
			}
			i += size
			continue
		}
		if s[i] == sep && depth == 0 {
			parts = append(parts, s[start:i], s[i:i+1])
			i++
			start = i
			continue
		}
		_, n := utf8.DecodeRuneInString(s[i:])
		i += n
	}
	return append(parts, s[start:])
}

// escape rewrites the characters that are significant to HTML, the
// placeholder runes and carriage returns as character references. A raw
// CR would be turned into LF by the HTML tokenizer the sanitizer uses; a
// reference survives it. Invalid UTF-8 becomes U+FFFD.
func escape(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	for _, r := range text {
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '\r':
			b.WriteString("&#13;")
		case r >= sentinelLo && r <= sentinelHi:
			fmt.Fprintf(&b, "&#x%X;", r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
