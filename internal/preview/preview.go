package preview

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdedit/internal/textedit"
)

// DefaultCodeStyle is the chroma style used for fenced code.
const DefaultCodeStyle = "monokai"

// Strategies must win over both the stock renderer (1000), the GFM
// renderers (500) and the highlighting renderer (200).
const strategyPriority = 100

// Option configures a Renderer.
type Option func(*config)

type config struct {
	strategies Strategies
	codeStyle  string
	hardWraps  bool
}

// WithStrategies overrides rendering strategies per node kind. Kinds not
// in s keep their default strategy; a nil function restores the stock
// goldmark output for that kind.
func WithStrategies(s Strategies) Option {
	return func(c *config) {
		if c.strategies == nil {
			c.strategies = Strategies{}
		}
		for k, v := range s {
			c.strategies[k] = v
		}
	}
}

// WithCodeStyle selects the chroma style whose classes CodeCSS emits.
func WithCodeStyle(name string) Option {
	return func(c *config) {
		c.codeStyle = name
	}
}

// WithHardWraps renders single newlines as <br>.
func WithHardWraps() Option {
	return func(c *config) {
		c.hardWraps = true
	}
}

// Renderer converts markdown to a sanitized HTML fragment. It is safe for
// concurrent use.
type Renderer struct {
	md        goldmark.Markdown
	policy    *bluemonday.Policy
	codeStyle string
}

// New creates a Renderer. It returns ErrUnknownCodeStyle when the code
// style is not a registered chroma style.
func New(opts ...Option) (*Renderer, error) {
	cfg := config{codeStyle: DefaultCodeStyle}
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := styles.Registry[cfg.codeStyle]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodeStyle, cfg.codeStyle)
	}

	rendererOpts := []renderer.Option{
		html.WithXHTML(),
		// WithUnsafe is not used: raw HTML in the source is dropped.
		renderer.WithNodeRenderers(
			util.Prioritized(&strategyRenderer{strategies: merge(cfg.strategies)}, strategyPriority),
		),
	}
	if cfg.hardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	md := goldmark.New(
		// GFM and footnotes, shared with the checkbox scan in textedit.
		goldmark.WithExtensions(textedit.Extensions()...),
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.codeStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // styled by CodeCSS
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(taskIndexer{}, 1000)),
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)

	return &Renderer{md: md, policy: Policy(), codeStyle: cfg.codeStyle}, nil
}

// Render converts markdown to a sanitized HTML fragment.
// Supports context cancellation via goroutine + select since goldmark
// doesn't natively support context.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markdown), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- result{html: r.policy.Sanitize(buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}

// CodeStyle returns the chroma style name fenced code is classed for.
func (r *Renderer) CodeStyle() string {
	return r.codeStyle
}
