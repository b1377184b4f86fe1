package preview

import "errors"

// Sentinel errors for preview rendering.
var (
	// ErrRender indicates goldmark failed to convert the document.
	ErrRender = errors.New("markdown rendering failed")

	// ErrUnknownCodeStyle indicates the chroma style name is not registered.
	ErrUnknownCodeStyle = errors.New("unknown code style")

	// ErrPageTemplate indicates the page template could not be parsed or executed.
	ErrPageTemplate = errors.New("page template failed")
)
