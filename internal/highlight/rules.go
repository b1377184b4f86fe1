package highlight

import (
	"regexp"
	"strings"
)

type pieceKind int

const (
	pieceRaw  pieceKind = iota // left as is
	pieceWrap                  // wrapped, content stays visible to later rules
	pieceAtom                  // wrapped and frozen
)

// piece is one slice of a rule match. The texts of a match's pieces,
// concatenated, must equal the match itself.
type piece struct {
	kind pieceKind
	cat  Category
	text string
}

func raw(s string) piece                { return piece{kind: pieceRaw, text: s} }
func wrap(cat Category, s string) piece { return piece{kind: pieceWrap, cat: cat, text: s} }
func atom(cat Category, s string) piece { return piece{kind: pieceAtom, cat: cat, text: s} }

// rule is one pass of the highlighter. build receives the submatches of a
// single match (index 0 is the whole match; unmatched groups are empty).
type rule struct {
	name  string
	re    *regexp.Regexp
	build func(f *fragments, g []string) []piece
}

// rules is applied in order. The order matters: bold-italic before bold
// before italic so "**x**" is never split by the single-star rule, inline
// code before links so code is frozen first, and table separators before
// table rows so a separator row is not recolored as data.
var rules = []rule{
	{
		name: "heading",
		re:   regexp.MustCompile(`(?m)^(#{1,6})([ \t]+)(.+)$`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{atom(HeadingMarker, g[1]), raw(g[2]), wrap(Heading, g[3])}
		},
	},
	{
		name:  "bold-italic",
		re:    regexp.MustCompile(`\*\*\*(\S|\S.*?\S)\*\*\*`),
		build: delimited(BoldMarker, BoldItalic, "***"),
	},
	{
		name:  "bold",
		re:    regexp.MustCompile(`\*\*(\S|\S.*?\S)\*\*`),
		build: delimited(BoldMarker, Bold, "**"),
	},
	{
		name:  "italic",
		re:    regexp.MustCompile(`\*([^\s*]|[^\s*][^*\n]*?[^\s*])\*`),
		build: delimited(ItalicMarker, Italic, "*"),
	},
	{
		name:  "strikethrough",
		re:    regexp.MustCompile(`~~(\S|\S.*?\S)~~`),
		build: delimited(StrikethroughMarker, Strikethrough, "~~"),
	},
	{
		name: "inline-code",
		re:   regexp.MustCompile("`([^`\n]+)`"),
		build: func(_ *fragments, g []string) []piece {
			return []piece{atom(InlineCodeMarker, "`"), atom(InlineCode, g[1]), atom(InlineCodeMarker, "`")}
		},
	},
	{
		name: "image",
		re:   regexp.MustCompile(`!\[([^\]\n]*)\]\(([^)\n]+)\)`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{
				atom(ImageMarker, "!["), wrap(Image, g[1]), atom(ImageMarker, "]("),
				atom(LinkURL, g[2]), atom(ImageMarker, ")"),
			}
		},
	},
	{
		name: "link",
		re:   regexp.MustCompile(`\[([^\]\n]+)\]\(([^)\n]+)\)`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{
				atom(LinkMarker, "["), wrap(Link, g[1]), atom(LinkMarker, "]("),
				atom(LinkURL, g[2]), atom(LinkMarker, ")"),
			}
		},
	},
	{
		name: "task-list",
		re:   regexp.MustCompile(`(?m)^([ \t]*)([-*+])([ \t]+)(\[[ xX]\])(?:([ \t]+)(.*))?$`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{
				raw(g[1]), atom(ListBullet, g[2]), raw(g[3]), atom(TaskCheckbox, g[4]),
				raw(g[5]), wrap(ListText, g[6]),
			}
		},
	},
	{
		name: "unordered-list",
		re:   regexp.MustCompile(`(?m)^([ \t]*)([-*+])([ \t]+)(.+)$`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{raw(g[1]), atom(ListBullet, g[2]), raw(g[3]), wrap(ListText, g[4])}
		},
	},
	{
		name: "ordered-list",
		re:   regexp.MustCompile(`(?m)^([ \t]*)(\d+\.)([ \t]+)(.+)$`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{raw(g[1]), atom(OrderedList, g[2]), raw(g[3]), wrap(ListText, g[4])}
		},
	},
	{
		name: "blockquote",
		re:   regexp.MustCompile(`(?m)^((?:&gt;[ \t]*)+)(.*)$`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{atom(BlockquoteMarker, g[1]), wrap(Blockquote, g[2])}
		},
	},
	{
		name: "code-block",
		re:   regexp.MustCompile("(?ms)^(```[^\n`]*)\n(.*?)^(```)([ \t]*)$"),
		build: func(_ *fragments, g []string) []piece {
			return []piece{
				atom(CodeFence, g[1]), raw("\n"), atom(CodeBlock, g[2]),
				atom(CodeFence, g[3]), raw(g[4]),
			}
		},
	},
	{
		name: "horizontal-rule",
		re:   regexp.MustCompile(`(?m)^(-{3,}|\*{3,}|_{3,})([ \t]*)$`),
		build: func(_ *fragments, g []string) []piece {
			return []piece{atom(HorizontalRule, g[1]), raw(g[2])}
		},
	},
	{
		name: "table-separator",
		re:   regexp.MustCompile(`(?m)^(\|[ \t:|-]*-[ \t:|-]*\|)([ \t]*)$`),
		build: func(f *fragments, g []string) []piece {
			return append(tableCells(f, g[1], TableSeparator, pieceAtom), raw(g[2]))
		},
	},
	{
		name: "table-row",
		re:   regexp.MustCompile(`(?m)^(\|.*\|)([ \t]*)$`),
		build: func(f *fragments, g []string) []piece {
			return append(tableCells(f, g[1], TableCell, pieceWrap), raw(g[2]))
		},
	},
}

// delimited builds the pieces of a symmetric inline construct.
func delimited(marker, content Category, delim string) func(*fragments, []string) []piece {
	return func(_ *fragments, g []string) []piece {
		return []piece{atom(marker, delim), wrap(content, g[1]), atom(marker, delim)}
	}
}

// tableCells splits a row on top-level pipes. Blank cells stay raw.
func tableCells(f *fragments, row string, cat Category, kind pieceKind) []piece {
	parts := f.splitTopLevel(row, '|')
	out := make([]piece, 0, len(parts))
	for _, p := range parts {
		switch {
		case p == "|":
			out = append(out, atom(TablePipe, p))
		case strings.TrimSpace(p) == "":
			out = append(out, raw(p))
		default:
			out = append(out, piece{kind: kind, cat: cat, text: p})
		}
	}
	return out
}

// Rules returns the names of the highlighting passes in application order.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}
