// Package preview renders markdown to sanitized HTML for the preview pane.
//
// Rendering is delegated to goldmark with the GFM extensions (tables,
// strikethrough, task lists, autolinks), footnotes, and chroma highlighting
// of fenced code. Raw HTML in the source is never passed through.
//
// Presentation is customized per node kind through a Strategies table:
// each entry is a goldmark NodeRendererFunc. The defaults decorate the
// stock renderers with md-* classes; callers override individual kinds and
// keep the defaults for the rest.
//
// Every rendered fragment goes through a bluemonday policy before it is
// returned, so output is safe to inject into a page even when a strategy
// misbehaves.
package preview
