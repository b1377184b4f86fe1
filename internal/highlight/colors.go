package highlight

import (
	"regexp"
	"sort"
)

// Category names a class of markdown syntax eligible for its own color.
type Category string

// Content categories.
const (
	Heading        Category = "heading"
	Bold           Category = "bold"
	BoldItalic     Category = "bold-italic"
	Italic         Category = "italic"
	Strikethrough  Category = "strikethrough"
	InlineCode     Category = "inline-code"
	Link           Category = "link"
	Image          Category = "image"
	ListBullet     Category = "list-bullet"
	ListText       Category = "list-text"
	OrderedList    Category = "ordered-list"
	Blockquote     Category = "blockquote"
	CodeBlock      Category = "code-block"
	HorizontalRule Category = "horizontal-rule"
	TablePipe      Category = "table-pipe"
	TableCell      Category = "table-cell"
	TableSeparator Category = "table-separator"
)

// Delimiter categories, colored apart from the content they surround.
const (
	HeadingMarker       Category = "heading-marker"
	BoldMarker          Category = "bold-marker"
	ItalicMarker        Category = "italic-marker"
	StrikethroughMarker Category = "strikethrough-marker"
	InlineCodeMarker    Category = "inline-code-marker"
	LinkMarker          Category = "link-marker"
	LinkURL             Category = "link-url"
	ImageMarker         Category = "image-marker"
	TaskCheckbox        Category = "task-checkbox"
	BlockquoteMarker    Category = "blockquote-marker"
	CodeFence           Category = "code-fence"
)

// Colors maps a category to a CSS color value.
type Colors map[Category]string

// defaultColors is the built-in dark palette.
var defaultColors = Colors{
	HeadingMarker:       "#569cd6",
	Heading:             "#c792ea",
	BoldMarker:          "#ce9178",
	Bold:                "#ffd700",
	BoldItalic:          "#ffd700",
	ItalicMarker:        "#6a9955",
	Italic:              "#b5cea8",
	StrikethroughMarker: "#f44747",
	Strikethrough:       "#f44747",
	InlineCodeMarker:    "#f92672",
	InlineCode:          "#f8f8f2",
	LinkMarker:          "#569cd6",
	Link:                "#4ec9b0",
	LinkURL:             "#9cdcfe",
	ImageMarker:         "#c586c0",
	Image:               "#ce9178",
	TaskCheckbox:        "#dcdcaa",
	ListBullet:          "#569cd6",
	ListText:            "#d4d4d4",
	OrderedList:         "#c792ea",
	BlockquoteMarker:    "#6a9955",
	Blockquote:          "#6a9955",
	CodeFence:           "#c792ea",
	CodeBlock:           "#d4d4d4",
	HorizontalRule:      "#4a4a4a",
	TablePipe:           "#569cd6",
	TableCell:           "#d4d4d4",
	TableSeparator:      "#6a9955",
}

// declarations holds the non-color CSS of each category. Not overridable.
var declarations = map[Category]string{
	HeadingMarker:    "font-weight: bold",
	Heading:          "font-weight: 600",
	Bold:             "font-weight: bold",
	BoldItalic:       "font-weight: bold; font-style: italic",
	Italic:           "font-style: italic",
	Strikethrough:    "text-decoration: line-through",
	InlineCode:       "background: rgba(255,255,255,0.1); padding: 0 3px; border-radius: 3px; font-family: monospace",
	Link:             "text-decoration: underline",
	Image:            "font-style: italic",
	TaskCheckbox:     "font-weight: bold",
	ListBullet:       "font-weight: bold",
	OrderedList:      "font-weight: bold",
	BlockquoteMarker: "font-weight: bold",
	Blockquote:       "font-style: italic",
	CodeBlock:        "background: rgba(255,255,255,0.05); font-family: monospace",
	HorizontalRule:   "font-weight: bold",
	TablePipe:        "font-weight: bold",
}

// colorValue accepts hex colors, color functions and bare color names.
var colorValue = regexp.MustCompile(`^(?:#[0-9a-fA-F]{3,8}|[a-zA-Z]{1,32}|(?:rgb|rgba|hsl|hsla)\([0-9.,%\s]+\))$`)

// DefaultColors returns a copy of the built-in palette.
func DefaultColors() Colors {
	out := make(Colors, len(defaultColors))
	for k, v := range defaultColors {
		out[k] = v
	}
	return out
}

// Categories returns every category of the built-in palette, sorted.
func Categories() []Category {
	out := make([]Category, 0, len(defaultColors))
	for k := range defaultColors {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ValidColor reports whether v is usable as a color value.
func ValidColor(v string) bool {
	return colorValue.MatchString(v)
}

// Resolve merges overrides on top of the defaults, key by key.
// Unknown categories and invalid color values are ignored.
func Resolve(overrides Colors) Colors {
	out := DefaultColors()
	for k, v := range overrides {
		if _, known := defaultColors[k]; !known || !ValidColor(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// style returns the inline CSS for a category, written the way the
// sanitizer normalizes declarations so sanitizing leaves it unchanged.
func (c Colors) style(cat Category) string {
	s := "color: " + c[cat]
	if d := declarations[cat]; d != "" {
		s += "; " + d
	}
	return s
}
