// Package textedit implements the structural edits behind a markdown
// toolbar: wrapping a selection in markers, prefixing a line, inserting a
// block, and flipping task-list checkboxes.
//
// Every operation is a pure function from (text, selection) to an Edit
// holding the new text and the selection to restore. Offsets count runes,
// not bytes. The new selection is derived from the old offsets and the
// lengths of the inserted markers, never by searching the new text.
//
// Checkboxes are found with the goldmark parser configured by Extensions,
// the same one the preview renders with, so checkbox indexes agree with
// the rendered document.
//
// Any operation accepts OnLine(n) to act on the 1-based line n instead of
// the live selection. A line that does not exist leaves the text and the
// selection unchanged.
package textedit
