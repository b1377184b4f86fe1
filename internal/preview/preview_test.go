package preview

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdedit/internal/assets"
	"github.com/alnah/go-mdedit/internal/textedit"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, md string) string {
	t.Helper()
	out, err := r.Render(context.Background(), md)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}

func TestRender(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading gets id and class",
			input:    "# Hello",
			contains: []string{`<h1`, `id="hello"`, `class="md-heading"`, `Hello</h1>`},
		},
		{
			name:     "paragraph",
			input:    "Some text",
			contains: []string{`<p class="md-paragraph">Some text</p>`},
		},
		{
			name:     "inline code",
			input:    "use `x`",
			contains: []string{`<code class="md-code">x</code>`},
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			contains: []string{`<del>gone</del>`},
		},
		{
			name:     "blockquote",
			input:    "> quoted",
			contains: []string{`<blockquote class="md-blockquote">`},
		},
		{
			name:     "lists",
			input:    "- a\n\n1. b",
			contains: []string{`<ul class="md-list">`, `<ol class="md-list">`},
		},
		{
			name:     "thematic break",
			input:    "a\n\n---\n\nb",
			contains: []string{`<hr class="md-rule"`},
		},
		{
			name:     "table",
			input:    "| a | b |\n| --- | --- |\n| 1 | 2 |",
			contains: []string{`<table class="md-table">`, `<th>a</th>`, `<td>2</td>`},
		},
		{
			name:     "fenced code is highlighted",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{`class="chroma"`, `func`},
		},
		{
			name:     "external link opens in new tab",
			input:    "[site](https://example.com)",
			contains: []string{`href="https://example.com"`, `class="md-link"`, `target="_blank"`, `noopener`, `noreferrer`},
		},
		{
			name:     "footnote",
			input:    "text[^1]\n\n[^1]: note",
			contains: []string{`note`, `<sup`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := render(t, r, tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) missing %q in:\n%s", tt.input, want, got)
				}
			}
		})
	}
}

func TestRender_Sanitizes(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	input := "<script>alert(1)</script>\n\n" +
		"<img src=x onerror=alert(1)>\n\n" +
		"[click](javascript:alert(1))\n\n" +
		"<a href=\"https://x\" onclick=\"alert(1)\">raw</a>"

	got := render(t, r, input)
	for _, bad := range []string{"<script", "onerror", "onclick", "javascript:"} {
		if strings.Contains(strings.ToLower(got), bad) {
			t.Errorf("Render() output contains %q:\n%s", bad, got)
		}
	}
}

func TestRender_TaskCheckboxes(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	docs := []string{
		"- [ ] a\n- [x] b",
		"1. [ ] one\n2. [X] two\n\n> - [ ] quoted",
		"```\n- [ ] not a task\n```\n- [ ] task\n- plain [ ] item",
		"- [ ] outer\n  - [x] nested\n- [ ] last",
		"- [ ]foo\n- [ ] bar\n",
		"- [ ] a\n- [\t] b\n",
		"para\n\n    - [ ] code\n\n- [ ] real\n",
		"<div>\n- [ ] html\n</div>\n\n- [ ] real\n",
		strings.Repeat("- [ ] item\n", 12),
	}

	for _, doc := range docs {
		got := render(t, r, doc)
		boxes := textedit.Checkboxes(doc)
		if n := strings.Count(got, `type="checkbox"`); n != len(boxes) {
			t.Errorf("Render(%q) has %d checkboxes, source scan found %d:\n%s", doc, n, len(boxes), got)
			continue
		}
		lines := strings.Split(doc, "\n")
		for i, box := range boxes {
			attr := `data-task-index="` + strconv.Itoa(i) + `"`
			at := strings.Index(got, attr)
			if at < 0 {
				t.Errorf("Render(%q) missing %s", doc, attr)
				continue
			}
			_, src, _ := strings.Cut(lines[box.Line-1], "]")
			if label, want := renderedLabel(got[at:]), strings.TrimSpace(src); label != want {
				t.Errorf("Render(%q): checkbox %d is labeled %q, ToggleCheckbox(%d) targets %q", doc, i, label, i, want)
			}
		}
	}

	got := render(t, r, "- [x] done")
	for _, want := range []string{`checked=""`, `disabled=""`, `class="md-task"`} {
		if !strings.Contains(got, want) {
			t.Errorf("checked task missing %q:\n%s", want, got)
		}
	}
}

// renderedLabel returns the text following the tag that starts s, up to
// the next tag or line break.
func renderedLabel(s string) string {
	_, rest, _ := strings.Cut(s, ">")
	if i := strings.IndexAny(rest, "<\n"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

func TestWithStrategies(t *testing.T) {
	t.Parallel()

	custom := func(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			_, _ = w.WriteString(`<p class="custom">`)
		} else {
			_, _ = w.WriteString("</p>\n")
		}
		return ast.WalkContinue, nil
	}

	t.Run("override one kind keeps the others", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t, WithStrategies(Strategies{ast.KindParagraph: custom}))
		got := render(t, r, "# Title\n\nbody")
		if !strings.Contains(got, `<p class="custom">body</p>`) {
			t.Errorf("custom paragraph strategy not applied:\n%s", got)
		}
		if !strings.Contains(got, `class="md-heading"`) {
			t.Errorf("default heading strategy lost:\n%s", got)
		}
	})

	t.Run("nil restores stock output", func(t *testing.T) {
		t.Parallel()

		r := newRenderer(t, WithStrategies(Strategies{ast.KindHeading: nil}))
		got := render(t, r, "# Title")
		if strings.Contains(got, ClassHeading) {
			t.Errorf("heading still decorated:\n%s", got)
		}
		if !strings.Contains(got, "Title</h1>") {
			t.Errorf("heading not rendered:\n%s", got)
		}
	})
}

func TestDefaultStrategies_Fresh(t *testing.T) {
	t.Parallel()

	a := DefaultStrategies()
	delete(a, ast.KindHeading)
	if _, ok := DefaultStrategies()[ast.KindHeading]; !ok {
		t.Error("DefaultStrategies() shares state between calls")
	}
}

func TestRender_ContextCanceled(t *testing.T) {
	t.Parallel()

	r := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, "# x")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestNew_UnknownCodeStyle(t *testing.T) {
	t.Parallel()

	_, err := New(WithCodeStyle("no-such-style"))
	if !errors.Is(err, ErrUnknownCodeStyle) {
		t.Errorf("New() error = %v, want ErrUnknownCodeStyle", err)
	}
}

func TestWithHardWraps(t *testing.T) {
	t.Parallel()

	got := render(t, newRenderer(t, WithHardWraps()), "a\nb")
	if !strings.Contains(got, "<br") {
		t.Errorf("hard wraps not rendered:\n%s", got)
	}
	got = render(t, newRenderer(t), "a\nb")
	if strings.Contains(got, "<br") {
		t.Errorf("soft break rendered as <br>:\n%s", got)
	}
}

func TestCodeCSS(t *testing.T) {
	t.Parallel()

	css, err := CodeCSS(DefaultCodeStyle)
	if err != nil {
		t.Fatalf("CodeCSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("CodeCSS() missing .chroma selector")
	}

	if _, err := CodeCSS("no-such-style"); !errors.Is(err, ErrUnknownCodeStyle) {
		t.Errorf("CodeCSS() error = %v, want ErrUnknownCodeStyle", err)
	}
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("wraps fragment", func(t *testing.T) {
		t.Parallel()

		got, err := Page(`<p class="md-paragraph">hi</p>`, PageOptions{Title: "<Notes>"})
		if err != nil {
			t.Fatalf("Page() error = %v", err)
		}
		for _, want := range []string{
			"<!DOCTYPE html>",
			"<title>&lt;Notes&gt;</title>",
			`<p class="md-paragraph">hi</p>`,
			".md-heading",
			".chroma",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("Page() missing %q", want)
			}
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := Page("", PageOptions{Style: "missing"})
		if !errors.Is(err, assets.ErrStyleNotFound) {
			t.Errorf("Page() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("broken template", func(t *testing.T) {
		t.Parallel()

		_, err := Page("", PageOptions{Loader: brokenLoader{}})
		if !errors.Is(err, ErrPageTemplate) {
			t.Errorf("Page() error = %v, want ErrPageTemplate", err)
		}
	})
}

type brokenLoader struct{}

func (brokenLoader) LoadStyle(string) (string, error)    { return "", nil }
func (brokenLoader) LoadTemplate(string) (string, error) { return "{{.Body", nil }
