package mdedit

import (
	"errors"

	"github.com/alnah/go-mdedit/internal/highlight"
)

// Sentinel errors for editor operations.
var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrReadOnly        = errors.New("editor is read-only")
	ErrTooLong         = errors.New("value exceeds max length")
	ErrInvalidViewMode = errors.New("invalid view mode")
	ErrNoClipboard     = errors.New("no clipboard available")
	ErrClipboard       = errors.New("clipboard write failed")
	ErrDownload        = errors.New("download failed")

	// ErrUnknownStyle is returned by ColorsFromStyle for unregistered
	// chroma style names.
	ErrUnknownStyle = highlight.ErrUnknownStyle
)
