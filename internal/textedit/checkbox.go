package textedit

import (
	"bytes"
	"cmp"
	"slices"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Extensions returns the goldmark extensions that decide which list items
// are tasks. A renderer numbering checkboxes with TaskNodes must parse
// with the same set, or its indexes drift from ToggleCheckbox's.
func Extensions() []goldmark.Extender {
	return []goldmark.Extender{extension.GFM, extension.Footnote}
}

// markdown only parses; nothing is rendered with it.
var markdown = goldmark.New(goldmark.WithExtensions(Extensions()...))

// TaskNode is a task checkbox node and the byte offset of its state byte
// (the rune between the brackets) in the parsed source.
type TaskNode struct {
	Node   *east.TaskCheckBox
	Offset int
}

// TaskNodes lists the task checkboxes under root in source order.
func TaskNodes(root ast.Node, source []byte) []TaskNode {
	var found []TaskNode
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		box, ok := n.(*east.TaskCheckBox)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		if off, ok := stateOffset(box, source); ok {
			found = append(found, TaskNode{Node: box, Offset: off})
		}
		return ast.WalkContinue, nil
	})
	slices.SortStableFunc(found, func(a, b TaskNode) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return found
}

// stateOffset locates the state byte of box. The checkbox is parsed at
// the start of the first line of its text block, so the opening bracket
// is the first one on that line.
func stateOffset(box *east.TaskCheckBox, source []byte) (int, bool) {
	block := box.Parent()
	if block == nil || block.Lines().Len() == 0 {
		return 0, false
	}
	line := block.Lines().At(0)
	i := bytes.IndexByte(source[line.Start:line.Stop], '[')
	if i < 0 || line.Start+i+2 >= len(source) || source[line.Start+i+2] != ']' {
		return 0, false
	}
	return line.Start + i + 1, true
}

// Checkbox is a task marker found in the text.
type Checkbox struct {
	Line    int // 1-based
	Offset  int // rune offset of the state rune
	Checked bool

	pos int // byte offset of the state rune
}

// Checkboxes lists task markers in source order. Only markers the
// markdown parser turns into checkboxes count: list items whose text
// starts with "[ ]", "[x]" or "[X]" (any blank inside the brackets is
// unchecked), outside code blocks and raw HTML blocks. The position in
// the result is the index ToggleCheckbox expects and the data-task-index
// the preview renders.
func Checkboxes(text string) []Checkbox {
	source := []byte(text)
	doc := markdown.Parser().Parse(gtext.NewReader(source))
	nodes := TaskNodes(doc, source)
	found := make([]Checkbox, len(nodes))
	for i, tn := range nodes {
		found[i] = Checkbox{
			Line:    bytes.Count(source[:tn.Offset], []byte{'\n'}) + 1,
			Offset:  utf8.RuneCount(source[:tn.Offset]),
			Checked: tn.Node.IsChecked,
			pos:     tn.Offset,
		}
	}
	return found
}

// CountCheckboxes returns the number of task markers in text.
func CountCheckboxes(text string) int {
	return len(Checkboxes(text))
}

// ToggleCheckbox flips the index-th task marker (zero-based) between
// "[ ]" and "[x]". It reports false and returns text unchanged when there
// is no such marker. Bytes outside the marker are kept as they are.
func ToggleCheckbox(text string, index int) (string, bool) {
	if index < 0 {
		return text, false
	}
	boxes := Checkboxes(text)
	if index >= len(boxes) {
		return text, false
	}
	box := boxes[index]
	state := "x"
	if box.Checked {
		state = " "
	}
	return text[:box.pos] + state + text[box.pos+1:], true
}
