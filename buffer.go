package mdedit

import (
	"sync"
	"unicode/utf8"
)

// Buffer is the host text control an editor drives. Offsets are rune
// offsets into Value.
type Buffer interface {
	Value() string
	Selection() (start, end int)
	SetSelection(start, end int)
	Focus()
}

// Scheduler defers selection restore until the host has painted the new
// value. Setting a selection before the control holds the new text would
// target stale content.
type Scheduler interface {
	AfterPaint(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

// AfterPaint calls f(fn).
func (f SchedulerFunc) AfterPaint(fn func()) {
	f(fn)
}

// ImmediateScheduler runs deferred work right away. It suits hosts whose
// value updates are synchronous, such as StringBuffer.
type ImmediateScheduler struct{}

// AfterPaint runs fn.
func (ImmediateScheduler) AfterPaint(fn func()) {
	fn()
}

// StringBuffer is an in-memory Buffer. The zero value is an empty buffer
// ready to use; it is safe for concurrent use.
type StringBuffer struct {
	mu      sync.Mutex
	value   string
	start   int
	end     int
	focused bool
}

// NewStringBuffer returns a buffer holding value with the caret at the end.
func NewStringBuffer(value string) *StringBuffer {
	n := utf8.RuneCountInString(value)
	return &StringBuffer{value: value, start: n, end: n}
}

// Value returns the current text.
func (b *StringBuffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// SetValue replaces the text and clamps the selection into it.
func (b *StringBuffer) SetValue(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.value = v
	b.start, b.end = b.clamp(b.start, b.end)
}

// Selection returns the selected rune range.
func (b *StringBuffer) Selection() (start, end int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start, b.end
}

// SetSelection selects [start, end), clamped to the text.
func (b *StringBuffer) SetSelection(start, end int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start, b.end = b.clamp(start, end)
}

// Focus marks the buffer focused.
func (b *StringBuffer) Focus() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.focused = true
}

// Focused reports whether Focus has been called.
func (b *StringBuffer) Focused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.focused
}

func (b *StringBuffer) clamp(start, end int) (int, int) {
	n := utf8.RuneCountInString(b.value)
	if start > end {
		start, end = end, start
	}
	return min(max(start, 0), n), min(max(end, 0), n)
}

// Compile-time interface check.
var _ Buffer = (*StringBuffer)(nil)
