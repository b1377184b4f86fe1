package mdedit

import (
	"sync"
	"time"
)

// DefaultScrollSettle is how long a driven pane's own scroll events are
// ignored after ScrollSync last moved it.
const DefaultScrollSettle = 50 * time.Millisecond

// ScrollState is a pane's scroll geometry in pixels.
type ScrollState struct {
	Top        float64
	Left       float64
	Height     float64 // full content height
	ViewHeight float64 // visible height
}

// ratio returns how far down the pane is scrolled, from 0 to 1.
func (s ScrollState) ratio() float64 {
	span := s.Height - s.ViewHeight
	if span <= 0 {
		return 0
	}
	return min(max(s.Top/span, 0), 1)
}

// Pane is a scrollable host element.
type Pane interface {
	Scroll() ScrollState
	ScrollTo(top, left float64)
}

// ScrollSync keeps the overlay exactly under the editor pane and the
// editor and preview panes at the same relative position.
//
// Moving one pane from the other's handler makes the driven pane emit its
// own scroll event. The guard drops events of the driven pane until the
// settle delay has passed; without it the two panes would keep driving
// each other. The driving pane is never suppressed, so its last position
// always reaches the other pane.
type ScrollSync struct {
	editor  Pane
	overlay Pane
	preview Pane

	settle    time.Duration
	afterFunc afterFunc

	mu      sync.Mutex
	driven  paneRole // noPane when the guard is down
	gen     int      // identifies the live release timer
	release func() bool
}

// paneRole names a synced pane. Roles are compared instead of Pane values
// because host panes need not be comparable.
type paneRole int

const (
	noPane paneRole = iota
	editorPane
	previewPane
)

// ScrollOption configures a ScrollSync.
type ScrollOption func(*ScrollSync)

// WithSettle sets the guard delay.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithSettle(d time.Duration) ScrollOption {
	if d <= 0 {
		panic("mdedit: WithSettle duration must be positive")
	}
	return func(s *ScrollSync) {
		s.settle = d
	}
}

// NewScrollSync creates a ScrollSync. overlay and preview may be nil when
// the host does not show them.
func NewScrollSync(editor, overlay, preview Pane, opts ...ScrollOption) *ScrollSync {
	s := &ScrollSync{
		editor:    editor,
		overlay:   overlay,
		preview:   preview,
		settle:    DefaultScrollSettle,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EditorScrolled handles a scroll event of the editor pane.
func (s *ScrollSync) EditorScrolled() {
	st := s.editor.Scroll()
	s.mirror(st)
	s.drive(previewPane, st)
}

// PreviewScrolled handles a scroll event of the preview pane.
func (s *ScrollSync) PreviewScrolled() {
	if s.preview == nil {
		return
	}
	if !s.drive(editorPane, s.preview.Scroll()) {
		return
	}
	s.mirror(s.editor.Scroll())
}

// Syncing reports whether the guard is up.
func (s *ScrollSync) Syncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.driven != noPane
}

// mirror copies the editor offsets to the overlay. It is not guarded:
// the overlay has no scroll handler of its own.
func (s *ScrollSync) mirror(st ScrollState) {
	if s.overlay != nil {
		s.overlay.ScrollTo(st.Top, st.Left)
	}
}

func (s *ScrollSync) pane(role paneRole) Pane {
	if role == editorPane {
		return s.editor
	}
	return s.preview
}

// drive moves the target pane to the source's relative position. It
// reports false without moving anything when the source is the pane the
// guard currently protects, since that event is an echo. Driving again
// from the same source restarts the settle delay.
func (s *ScrollSync) drive(role paneRole, source ScrollState) bool {
	target := s.pane(role)
	if target == nil {
		return false
	}

	s.mu.Lock()
	if s.driven != noPane && s.driven != role {
		s.mu.Unlock()
		return false
	}
	s.driven = role
	if s.release != nil {
		s.release()
	}
	s.gen++
	gen := s.gen
	s.release = s.afterFunc(s.settle, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			s.driven = noPane
			s.release = nil
		}
	})
	s.mu.Unlock()

	ts := target.Scroll()
	top := source.ratio() * max(ts.Height-ts.ViewHeight, 0)
	target.ScrollTo(top, ts.Left)
	return true
}
