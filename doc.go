// Package mdedit is the engine behind a split-pane markdown editor: a
// syntax-highlight overlay for the raw text, structural toolbar edits, and
// a sanitized rendered preview.
//
// # Quick Start
//
// Highlight text for the overlay and apply a toolbar action:
//
//	overlay := mdedit.Highlight("Hello *world*", nil)
//
//	edit, err := mdedit.ApplyAction("bold", "Hello world", mdedit.Selection{Start: 6, End: 11})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(edit.Text) // Hello **world**
//
// # Editor
//
// Editor coordinates a document with a host text control. The control is
// reached through the Buffer interface (value, selection, focus); edits go
// through Actions and the new selection is restored by a Scheduler once
// the host has committed the new value:
//
//	ed, err := mdedit.NewEditor(mdedit.WithOnChange(save))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ed.Attach(textarea)
//	ed.Actions().Heading(2, mdedit.OnLine(3))
//
//	html, err := ed.Preview(ctx)
//
// # Line Targeting
//
// Every action accepts OnLine(n) to format the 1-based line n instead of
// the live selection. A line that does not exist makes the action a no-op.
//
// # Safety
//
// Overlay and preview output are both sanitized with bluemonday before
// they are returned. Highlight and the actions never fail on bad input:
// unmatched syntax stays plain text and out-of-range targets change
// nothing.
package mdedit
