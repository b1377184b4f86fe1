// Package highlight turns raw markdown text into a colored HTML overlay.
//
// The overlay is meant to sit exactly under an editable text control, so
// the output must reproduce every input character: rules only wrap text in
// styled spans, they never drop, add or reorder visible characters.
//
// # Pipeline
//
//  1. Escape &, < and > so user content is never interpreted as markup.
//  2. Run the ordered rule table (see Rules). Each rule wraps its matches.
//  3. Expand the fragment table into <span style="..."> markup.
//  4. Sanitize with a span-only bluemonday policy.
//
// # Fragments
//
// Markup produced by a rule is not written into the working text directly.
// It is parked in a fragment table and referenced by a placeholder made of
// Unicode Private Use Area runes, the same trick the preprocessing stage of
// a markdown-to-HTML pipeline uses to smuggle ==highlight== marks past the
// renderer. Later rules therefore cannot match inside generated markup.
//
// Delimiters (**, [, ](, ```) become atomic fragments. Content stays visible
// between an open and a close fragment so later rules can still nest inside
// it (a link inside bold text). A match whose content would split an
// earlier span is left alone, which keeps the output well formed.
package highlight
