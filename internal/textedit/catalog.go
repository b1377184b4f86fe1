package textedit

import (
	"slices"
	"strconv"
	"strings"
)

// Block texts and the caret offset inside each.
const (
	CodeBlockText      = "```\ncode here\n```\n"
	HorizontalRuleText = "\n---\n\n"
	TableText          = "| Header 1 | Header 2 |\n" +
		"| -------- | -------- |\n" +
		"| Cell 1   | Cell 2   |\n" +
		"| Cell 3   | Cell 4   |\n"

	codeBlockCaret      = 4
	horizontalRuleCaret = 5
	tableCaret          = 2
)

// Bold wraps the selection in "**".
func Bold(text string, sel Selection, opts ...Option) Edit {
	return Wrap(text, sel, "**", "**", "bold text", opts...)
}

// Italic wraps the selection in "*".
func Italic(text string, sel Selection, opts ...Option) Edit {
	return Wrap(text, sel, "*", "*", "italic text", opts...)
}

// Strikethrough wraps the selection in "~~".
func Strikethrough(text string, sel Selection, opts ...Option) Edit {
	return Wrap(text, sel, "~~", "~~", "strikethrough text", opts...)
}

// InlineCode wraps the selection in backticks.
func InlineCode(text string, sel Selection, opts ...Option) Edit {
	return Wrap(text, sel, "`", "`", "code", opts...)
}

// Link turns the selection into link text. Without a selection it inserts
// a "link text" placeholder.
func Link(text string, sel Selection, opts ...Option) Edit {
	return Wrap(text, sel, "[", "](url)", "link text", opts...)
}

// Image inserts an image reference, using the selection as alt text.
func Image(text string, sel Selection, opts ...Option) Edit {
	return Wrap(text, sel, "![", "](image-url)", "alt text", opts...)
}

// Heading sets the heading level of the line. level is clamped to 1..6.
func Heading(text string, sel Selection, level int, opts ...Option) Edit {
	level = min(max(level, 1), 6)
	return Prefix(text, sel, strings.Repeat("#", level)+" ", opts...)
}

// Blockquote prefixes the line with "> ".
func Blockquote(text string, sel Selection, opts ...Option) Edit {
	return Prefix(text, sel, "> ", opts...)
}

// UnorderedList prefixes the line with "- ".
func UnorderedList(text string, sel Selection, opts ...Option) Edit {
	return Prefix(text, sel, "- ", opts...)
}

// OrderedList prefixes the line with "1. ".
func OrderedList(text string, sel Selection, opts ...Option) Edit {
	return Prefix(text, sel, "1. ", opts...)
}

// TaskList prefixes the line with an unchecked task marker.
func TaskList(text string, sel Selection, opts ...Option) Edit {
	return Prefix(text, sel, "- [ ] ", opts...)
}

// HorizontalRule inserts a thematic break; the caret lands after it.
func HorizontalRule(text string, sel Selection, opts ...Option) Edit {
	return Block(text, sel, HorizontalRuleText, horizontalRuleCaret, opts...)
}

// CodeBlock inserts an empty fence; the caret lands on the body line.
func CodeBlock(text string, sel Selection, opts ...Option) Edit {
	return Block(text, sel, CodeBlockText, codeBlockCaret, opts...)
}

// Table inserts a two-column skeleton; the caret lands in the first
// header cell.
func Table(text string, sel Selection, opts ...Option) Edit {
	return Block(text, sel, TableText, tableCaret, opts...)
}

// ApplyFunc is the shape shared by every catalogued action.
type ApplyFunc func(text string, sel Selection, opts ...Option) Edit

// Action is a named toolbar operation.
type Action struct {
	Name  string
	Title string
	Group string
	Apply ApplyFunc
}

func heading(level int) ApplyFunc {
	return func(text string, sel Selection, opts ...Option) Edit {
		return Heading(text, sel, level, opts...)
	}
}

var catalog = []Action{
	{Name: "bold", Title: "Bold", Group: "inline", Apply: Bold},
	{Name: "italic", Title: "Italic", Group: "inline", Apply: Italic},
	{Name: "strikethrough", Title: "Strikethrough", Group: "inline", Apply: Strikethrough},
	{Name: "inline-code", Title: "Inline Code", Group: "inline", Apply: InlineCode},
	{Name: "heading-1", Title: "Heading 1", Group: "heading", Apply: heading(1)},
	{Name: "heading-2", Title: "Heading 2", Group: "heading", Apply: heading(2)},
	{Name: "heading-3", Title: "Heading 3", Group: "heading", Apply: heading(3)},
	{Name: "heading-4", Title: "Heading 4", Group: "heading", Apply: heading(4)},
	{Name: "heading-5", Title: "Heading 5", Group: "heading", Apply: heading(5)},
	{Name: "heading-6", Title: "Heading 6", Group: "heading", Apply: heading(6)},
	{Name: "blockquote", Title: "Quote", Group: "line", Apply: Blockquote},
	{Name: "unordered-list", Title: "Bullet List", Group: "line", Apply: UnorderedList},
	{Name: "ordered-list", Title: "Numbered List", Group: "line", Apply: OrderedList},
	{Name: "task-list", Title: "Task List", Group: "line", Apply: TaskList},
	{Name: "link", Title: "Link", Group: "insert", Apply: Link},
	{Name: "image", Title: "Image", Group: "insert", Apply: Image},
	{Name: "code-block", Title: "Code Block", Group: "insert", Apply: CodeBlock},
	{Name: "horizontal-rule", Title: "Horizontal Rule", Group: "insert", Apply: HorizontalRule},
	{Name: "table", Title: "Table", Group: "insert", Apply: Table},
}

// Catalog returns every action in toolbar order.
func Catalog() []Action {
	return slices.Clone(catalog)
}

// Lookup finds an action by name. "h1".."h6" are accepted as aliases of
// the heading actions.
func Lookup(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) == 2 && name[0] == 'h' {
		if n, err := strconv.Atoi(name[1:]); err == nil {
			name = "heading-" + strconv.Itoa(n)
		}
	}
	for _, a := range catalog {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}
