package mdedit

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/alnah/go-mdedit/internal/preview"
	"github.com/alnah/go-mdedit/internal/textedit"
)

// ViewMode selects which panes the host shows.
type ViewMode string

// View modes.
const (
	ViewEdit    ViewMode = "edit"
	ViewPreview ViewMode = "preview"
	ViewSplit   ViewMode = "split"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	switch m {
	case ViewEdit, ViewPreview, ViewSplit:
		return true
	}
	return false
}

// Editor defaults.
const (
	DefaultValue       = "# Markdown Editor\n\nWelcome to the **Markdown Editor**!"
	DefaultPlaceholder = "Start typing your markdown here..."
	DefaultFilename    = "document.md"
	DefaultFlash       = 2 * time.Second
)

// Clipboard receives text from Editor.Copy.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Status holds transient result flags for copy and download. Each flag
// clears itself after the editor's flash duration.
type Status struct {
	Copied         bool
	CopyFailed     bool
	Downloaded     bool
	DownloadFailed bool
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithValue makes the document controlled: the editor reports changes
// through the change callback and only takes a new value from SetValue.
func WithValue(v string) EditorOption {
	return func(e *Editor) {
		e.value = v
		e.controlled = true
	}
}

// WithDefaultValue sets the initial value of an uncontrolled editor.
func WithDefaultValue(v string) EditorOption {
	return func(e *Editor) {
		e.value = v
	}
}

// WithOnChange registers the callback receiving every new value.
func WithOnChange(fn func(value string)) EditorOption {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithViewMode makes the view mode controlled, starting at m.
func WithViewMode(m ViewMode) EditorOption {
	return func(e *Editor) {
		e.viewMode = m
		e.viewControlled = true
	}
}

// WithDefaultViewMode sets the initial view mode of an uncontrolled editor.
func WithDefaultViewMode(m ViewMode) EditorOption {
	return func(e *Editor) {
		e.viewMode = m
	}
}

// WithOnViewModeChange registers the callback receiving view mode requests.
func WithOnViewModeChange(fn func(ViewMode)) EditorOption {
	return func(e *Editor) {
		e.onViewMode = fn
	}
}

// WithReadOnly disables every edit.
func WithReadOnly(readOnly bool) EditorOption {
	return func(e *Editor) {
		e.readOnly = readOnly
	}
}

// WithMaxLength rejects values longer than n runes. Zero means no limit.
// Panics if n < 0 (programmer error).
func WithMaxLength(n int) EditorOption {
	if n < 0 {
		panic("mdedit: WithMaxLength must not be negative")
	}
	return func(e *Editor) {
		e.maxLength = n
	}
}

// WithPlaceholder sets the hint shown in an empty editor.
func WithPlaceholder(s string) EditorOption {
	return func(e *Editor) {
		e.placeholder = s
	}
}

// WithColors overrides overlay colors per category.
func WithColors(c Colors) EditorOption {
	return func(e *Editor) {
		e.colors = ResolveColors(c)
	}
}

// WithPreviewOptions configures the preview renderer.
func WithPreviewOptions(opts ...preview.Option) EditorOption {
	return func(e *Editor) {
		e.previewOpts = append(e.previewOpts, opts...)
	}
}

// WithScheduler sets how selection restore is deferred after an action.
func WithScheduler(s Scheduler) EditorOption {
	return func(e *Editor) {
		e.sched = s
	}
}

// WithFilename sets the name Download suggests.
func WithFilename(name string) EditorOption {
	return func(e *Editor) {
		e.filename = name
	}
}

// WithFlashDuration sets how long status flags stay up.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithFlashDuration(d time.Duration) EditorOption {
	if d <= 0 {
		panic("mdedit: WithFlashDuration duration must be positive")
	}
	return func(e *Editor) {
		e.flash = d
	}
}

// afterFunc schedules fn after d; replaced in tests.
type afterFunc func(d time.Duration, fn func()) func() bool

func realAfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Editor holds a markdown document and coordinates the overlay, the
// preview and toolbar edits against an attached Buffer. It is safe for
// concurrent use; callbacks run without the editor's lock held.
type Editor struct {
	mu sync.Mutex

	value          string
	controlled     bool
	onChange       func(string)
	viewMode       ViewMode
	viewControlled bool
	onViewMode     func(ViewMode)
	readOnly       bool
	maxLength      int
	placeholder    string
	colors         Colors
	filename       string

	buffer      Buffer
	sched       Scheduler
	previewOpts []preview.Option
	renderer    *preview.Renderer

	flash     time.Duration
	afterFunc afterFunc
	status    Status
	timers    map[*bool]flashTimer
	gen       uint64
}

type flashTimer struct {
	gen  uint64
	stop func() bool
}

// NewEditor creates an Editor. Without WithValue or WithDefaultValue it
// starts with a short welcome document. It fails when the preview options
// are invalid (for example an unknown code style).
func NewEditor(opts ...EditorOption) (*Editor, error) {
	e := &Editor{
		value:       DefaultValue,
		viewMode:    ViewSplit,
		placeholder: DefaultPlaceholder,
		colors:      DefaultColors(),
		filename:    DefaultFilename,
		sched:       ImmediateScheduler{},
		flash:       DefaultFlash,
		afterFunc:   realAfterFunc,
		timers:      map[*bool]flashTimer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.viewMode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidViewMode, e.viewMode)
	}

	r, err := preview.New(e.previewOpts...)
	if err != nil {
		return nil, err
	}
	e.renderer = r
	return e, nil
}

// Value returns the current document.
func (e *Editor) Value() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}

// SetValue is how the host pushes a new value into a controlled editor.
// It also replaces the value of an uncontrolled one. No change callback
// fires.
func (e *Editor) SetValue(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.value = v
}

// Input handles text typed by the user. It fails with ErrReadOnly or
// ErrTooLong and leaves the document unchanged in that case.
func (e *Editor) Input(v string) error {
	e.mu.Lock()
	if e.readOnly {
		e.mu.Unlock()
		return ErrReadOnly
	}
	if e.maxLength > 0 && utf8.RuneCountInString(v) > e.maxLength {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d runes, limit %d", ErrTooLong, utf8.RuneCountInString(v), e.maxLength)
	}
	e.mu.Unlock()

	e.commit(v)
	return nil
}

// commit stores v unless controlled and reports it to the change callback.
// An uncontrolled editor also writes v through to the attached buffer.
func (e *Editor) commit(v string) {
	e.mu.Lock()
	controlled := e.controlled
	if !controlled {
		e.value = v
	}
	onChange := e.onChange
	buf := e.buffer
	e.mu.Unlock()

	if s, ok := buf.(valueSetter); ok && !controlled {
		s.SetValue(v)
	}
	if onChange != nil {
		onChange(v)
	}
}

// commitEdit is the update function handed to Actions. Edits that would
// exceed the max length are rejected.
func (e *Editor) commitEdit(v string) error {
	e.mu.Lock()
	limit := e.maxLength
	e.mu.Unlock()
	if n := utf8.RuneCountInString(v); limit > 0 && n > limit {
		return fmt.Errorf("%w: %d runes, limit %d", ErrTooLong, n, limit)
	}
	e.commit(v)
	return nil
}

// Attach connects the host text control the actions operate on.
func (e *Editor) Attach(buf Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buffer = buf
}

// Actions returns the toolbar actions bound to the attached buffer. They
// are no-ops when nothing is attached or the editor is read-only.
func (e *Editor) Actions() *Actions {
	e.mu.Lock()
	defer e.mu.Unlock()
	buf := e.buffer
	if e.readOnly {
		buf = nil
	}
	return NewActions(buf, e.commitEdit, e.sched)
}

// ToggleCheckbox flips the index-th task checkbox of the current value.
// The value is read when the call happens, so a preview click always acts
// on the latest document. It reports whether anything changed.
func (e *Editor) ToggleCheckbox(index int) bool {
	e.mu.Lock()
	if e.readOnly {
		e.mu.Unlock()
		return false
	}
	current := e.value
	e.mu.Unlock()

	next, ok := textedit.ToggleCheckbox(current, index)
	if !ok {
		return false
	}
	e.commit(next)
	return true
}

// ViewMode returns the active view mode.
func (e *Editor) ViewMode() ViewMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewMode
}

// SetViewMode requests a view mode. A controlled editor only notifies the
// callback; the host answers with SyncViewMode.
func (e *Editor) SetViewMode(m ViewMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, m)
	}
	e.mu.Lock()
	if !e.viewControlled {
		e.viewMode = m
	}
	cb := e.onViewMode
	e.mu.Unlock()

	if cb != nil {
		cb(m)
	}
	return nil
}

// SyncViewMode sets the view mode of a controlled editor without
// notifying.
func (e *Editor) SyncViewMode(m ViewMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidViewMode, m)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewMode = m
	return nil
}

// ReadOnly reports whether edits are disabled.
func (e *Editor) ReadOnly() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readOnly
}

// SetReadOnly enables or disables edits.
func (e *Editor) SetReadOnly(readOnly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readOnly = readOnly
}

// MaxLength returns the rune limit, zero if unlimited.
func (e *Editor) MaxLength() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxLength
}

// Placeholder returns the hint for an empty editor.
func (e *Editor) Placeholder() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.placeholder
}

// CharCount returns the document length in characters.
func (e *Editor) CharCount() int {
	return utf8.RuneCountInString(e.Value())
}

// Overlay returns the sanitized highlight markup for the current value.
func (e *Editor) Overlay() string {
	e.mu.Lock()
	text, colors := e.value, e.colors
	e.mu.Unlock()
	return Highlight(text, colors)
}

// Preview renders the current value to sanitized HTML.
func (e *Editor) Preview(ctx context.Context) (string, error) {
	return e.renderer.Render(ctx, e.Value())
}

// Filename returns the name Download suggests.
func (e *Editor) Filename() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filename
}

// Copy writes the document to the clipboard and raises Copied or
// CopyFailed for the flash duration.
func (e *Editor) Copy(ctx context.Context, cb Clipboard) error {
	if cb == nil {
		e.raise(&e.status.CopyFailed)
		return ErrNoClipboard
	}
	if err := cb.WriteText(ctx, e.Value()); err != nil {
		e.raise(&e.status.CopyFailed)
		return fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	e.raise(&e.status.Copied)
	return nil
}

// Download writes the document to w and raises Downloaded or
// DownloadFailed for the flash duration.
func (e *Editor) Download(w io.Writer) error {
	if _, err := io.WriteString(w, e.Value()); err != nil {
		e.raise(&e.status.DownloadFailed)
		return fmt.Errorf("%w: %v", ErrDownload, err)
	}
	e.raise(&e.status.Downloaded)
	return nil
}

// Status returns the current flags.
func (e *Editor) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// raise sets flag and schedules its reset. Raising it again restarts the
// countdown.
func (e *Editor) raise(flag *bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	*flag = true
	if t, ok := e.timers[flag]; ok {
		t.stop()
	}
	e.gen++
	gen := e.gen
	stop := e.afterFunc(e.flash, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if t, ok := e.timers[flag]; ok && t.gen == gen {
			*flag = false
			delete(e.timers, flag)
		}
	})
	e.timers[flag] = flashTimer{gen: gen, stop: stop}
}
