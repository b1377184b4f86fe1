package preview

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-mdedit/internal/assets"
)

// CodeCSS returns the stylesheet for the classes chroma puts on fenced
// code rendered with the named style.
func CodeCSS(style string) (string, error) {
	s, ok := styles.Registry[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCodeStyle, style)
	}
	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// PageOptions controls the standalone document produced by Page.
type PageOptions struct {
	Title     string
	Style     string        // stylesheet name, assets.DefaultStyleName if empty
	Template  string        // template name, assets.DefaultTemplateName if empty
	CodeStyle string        // chroma style, DefaultCodeStyle if empty
	Loader    assets.Loader // embedded assets if nil
}

type pageData struct {
	Title   string
	CSS     template.CSS
	CodeCSS template.CSS
	Body    template.HTML
}

// Page wraps a rendered fragment into a complete HTML document. fragment
// must come from Renderer.Render; it is inserted without escaping.
func Page(fragment string, opts PageOptions) (string, error) {
	if opts.Title == "" {
		opts.Title = "Preview"
	}
	if opts.Style == "" {
		opts.Style = assets.DefaultStyleName
	}
	if opts.Template == "" {
		opts.Template = assets.DefaultTemplateName
	}
	if opts.CodeStyle == "" {
		opts.CodeStyle = DefaultCodeStyle
	}
	if opts.Loader == nil {
		opts.Loader = assets.Embedded()
	}

	css, err := opts.Loader.LoadStyle(opts.Style)
	if err != nil {
		return "", err
	}
	codeCSS, err := CodeCSS(opts.CodeStyle)
	if err != nil {
		return "", err
	}
	src, err := opts.Loader.LoadTemplate(opts.Template)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(opts.Template).Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}

	var buf bytes.Buffer
	// #nosec G203 -- assets are trusted, chroma CSS is generated, the body is sanitized
	err = tmpl.Execute(&buf, pageData{
		Title:   opts.Title,
		CSS:     template.CSS(css),
		CodeCSS: template.CSS(codeCSS),
		Body:    template.HTML(fragment),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageTemplate, err)
	}
	return buf.String(), nil
}
