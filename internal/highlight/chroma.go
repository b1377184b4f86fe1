package highlight

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates the chroma style name is not registered.
var ErrUnknownStyle = errors.New("unknown chroma style")

// chromaTokens maps overlay categories to the chroma token type whose
// color they borrow. Categories missing here keep the default color.
var chromaTokens = map[Category]chroma.TokenType{
	HeadingMarker:       chroma.Keyword,
	Heading:             chroma.GenericHeading,
	BoldMarker:          chroma.Operator,
	Bold:                chroma.GenericStrong,
	BoldItalic:          chroma.GenericStrong,
	ItalicMarker:        chroma.Operator,
	Italic:              chroma.GenericEmph,
	StrikethroughMarker: chroma.GenericDeleted,
	Strikethrough:       chroma.GenericDeleted,
	InlineCodeMarker:    chroma.Punctuation,
	InlineCode:          chroma.LiteralString,
	LinkMarker:          chroma.Punctuation,
	Link:                chroma.NameAttribute,
	LinkURL:             chroma.LiteralStringOther,
	ImageMarker:         chroma.Punctuation,
	Image:               chroma.NameAttribute,
	TaskCheckbox:        chroma.KeywordConstant,
	ListBullet:          chroma.Keyword,
	ListText:            chroma.Text,
	OrderedList:         chroma.LiteralNumber,
	BlockquoteMarker:    chroma.Comment,
	Blockquote:          chroma.Comment,
	CodeFence:           chroma.CommentPreproc,
	CodeBlock:           chroma.LiteralString,
	HorizontalRule:      chroma.Comment,
	TablePipe:           chroma.Punctuation,
	TableCell:           chroma.Text,
	TableSeparator:      chroma.Comment,
}

// ColorsFromStyle derives an overlay palette from a registered chroma
// style, so the overlay can match the code theme of the preview.
// Token types the style leaves uncolored keep the built-in color.
func ColorsFromStyle(name string) (Colors, error) {
	style, ok := styles.Registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	out := DefaultColors()
	for cat, tt := range chromaTokens {
		entry := style.Get(tt)
		if entry.Colour.IsSet() {
			out[cat] = entry.Colour.String()
		}
	}
	return out, nil
}
