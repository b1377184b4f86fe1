package preview

import (
	"maps"
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdedit/internal/textedit"
)

// Strategies maps a node kind to the function that renders it.
type Strategies map[ast.NodeKind]renderer.NodeRendererFunc

// Class names set by the default strategies.
const (
	ClassHeading    = "md-heading"
	ClassParagraph  = "md-paragraph"
	ClassBlockquote = "md-blockquote"
	ClassList       = "md-list"
	ClassCode       = "md-code"
	ClassRule       = "md-rule"
	ClassLink       = "md-link"
	ClassTable      = "md-table"
	ClassTask       = "md-task"
)

// taskIndexAttr carries the position of a checkbox among all task markers
// of the document. It matches the index textedit.ToggleCheckbox expects.
const taskIndexAttr = "data-task-index"

// funcTable captures the functions a NodeRenderer registers.
type funcTable map[ast.NodeKind]renderer.NodeRendererFunc

func (t funcTable) Register(kind ast.NodeKind, fn renderer.NodeRendererFunc) {
	t[kind] = fn
}

// stock returns the stock goldmark renderers the defaults decorate.
func stock() funcTable {
	t := funcTable{}
	html.NewRenderer(html.WithXHTML()).RegisterFuncs(t)
	extension.NewTableHTMLRenderer().RegisterFuncs(t)
	return t
}

// DefaultStrategies returns a fresh copy of the default strategy table.
func DefaultStrategies() Strategies {
	base := stock()
	return Strategies{
		ast.KindHeading:       withClass(base[ast.KindHeading], ClassHeading),
		ast.KindParagraph:     withClass(base[ast.KindParagraph], ClassParagraph),
		ast.KindBlockquote:    withClass(base[ast.KindBlockquote], ClassBlockquote),
		ast.KindList:          withClass(base[ast.KindList], ClassList),
		ast.KindCodeSpan:      withClass(base[ast.KindCodeSpan], ClassCode),
		ast.KindThematicBreak: withClass(base[ast.KindThematicBreak], ClassRule),
		ast.KindLink:          withClass(base[ast.KindLink], ClassLink),
		east.KindTable:        withClass(base[east.KindTable], ClassTable),
		east.KindTaskCheckBox: renderTaskCheckBox,
	}
}

// merge overlays overrides on the defaults. A nil function removes the
// strategy so the stock renderer applies.
func merge(overrides Strategies) Strategies {
	s := DefaultStrategies()
	maps.Copy(s, overrides)
	maps.DeleteFunc(s, func(_ ast.NodeKind, fn renderer.NodeRendererFunc) bool {
		return fn == nil
	})
	return s
}

// withClass sets class on the node before delegating to fn.
func withClass(fn renderer.NodeRendererFunc, class string) renderer.NodeRendererFunc {
	return func(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			n.SetAttributeString("class", []byte(class))
		}
		return fn(w, source, n, entering)
	}
}

func renderTaskCheckBox(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*east.TaskCheckBox)

	_, _ = w.WriteString(`<input type="checkbox" class="` + ClassTask + `" disabled=""`)
	if n.IsChecked {
		_, _ = w.WriteString(` checked=""`)
	}
	if v, ok := n.AttributeString(taskIndexAttr); ok {
		if idx, ok := v.(int); ok {
			_, _ = w.WriteString(` ` + taskIndexAttr + `="` + strconv.Itoa(idx) + `"`)
		}
	}
	_, _ = w.WriteString(" /> ")
	return ast.WalkContinue, nil
}

// strategyRenderer registers a Strategies table with goldmark.
type strategyRenderer struct {
	strategies Strategies
}

func (r *strategyRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	for kind, fn := range r.strategies {
		reg.Register(kind, fn)
	}
}

// taskIndexer numbers task checkboxes in source order, the order
// textedit.ToggleCheckbox counts them in.
type taskIndexer struct{}

func (taskIndexer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	for i, tn := range textedit.TaskNodes(doc, reader.Source()) {
		tn.Node.SetAttributeString(taskIndexAttr, i)
	}
}
