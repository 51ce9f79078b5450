// Package view models editor views and the document context commands
// operate on.
//
// A View pairs a buffer with a caret. A Provider hands out the currently
// active view, if any; commands issued with no active view are silent
// no-ops. A Context is the per-invocation snapshot of caret, selection,
// and line state that the editing engines decide against — it is valid
// only for the buffer revision it was extracted from and must be
// re-extracted after any mutation.
package view

import (
	"sync"

	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/engine/cursor"
)

// View is a buffer with caret state.
// All methods are thread-safe.
type View struct {
	mu    sync.Mutex
	buf   *buffer.Buffer
	caret cursor.Caret
}

// New creates a view over the buffer with the caret at offset 0.
func New(buf *buffer.Buffer) *View {
	return &View{
		buf:   buf,
		caret: cursor.NewCaret(0),
	}
}

// Buffer returns the view's buffer.
func (v *View) Buffer() *buffer.Buffer {
	return v.buf
}

// Snapshot returns a snapshot of the view's buffer.
func (v *View) Snapshot() *buffer.Snapshot {
	return v.buf.Snapshot()
}

// Caret returns the current caret.
func (v *View) Caret() cursor.Caret {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.caret
}

// Selection returns the current selection.
func (v *View) Selection() cursor.Selection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.caret.Sel
}

// VirtualCol returns the caret's virtual column (0 when the caret is on a
// real character position).
func (v *View) VirtualCol() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.caret.VirtualCol
}

// MoveTo collapses the caret to the given offset, clamped to the buffer,
// and leaves virtual space. This is the caret repositioning capability the
// editing commands use.
func (v *View) MoveTo(offset buffer.ByteOffset) {
	maxOffset := v.buf.Len()
	if offset > maxOffset {
		offset = maxOffset
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.caret = v.caret.MoveTo(offset)
}

// SetSelection sets the selection, clamped to the buffer.
func (v *View) SetSelection(sel cursor.Selection) {
	maxOffset := v.buf.Len()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.caret = v.caret.WithSelection(sel.Clamp(maxOffset))
}

// SetVirtualCol places the caret in virtual space past its current offset.
func (v *View) SetVirtualCol(col int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.caret = v.caret.WithVirtualCol(col)
}

// BeginEdit starts a scoped edit transaction on the view's buffer.
func (v *View) BeginEdit() *buffer.Tx {
	return v.buf.BeginEdit()
}

// Provider hands out the currently active view.
type Provider interface {
	// Active returns the active view, or false when no view has focus.
	Active() (*View, bool)
}

// Manager is the concrete Provider. It tracks at most one active view.
type Manager struct {
	mu     sync.RWMutex
	active *View
}

// NewManager creates a manager with no active view.
func NewManager() *Manager {
	return &Manager{}
}

// Active implements Provider.
func (m *Manager) Active() (*View, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.active == nil {
		return nil, false
	}
	return m.active, true
}

// SetActive makes v the active view. Passing nil deactivates all views.
func (m *Manager) SetActive(v *View) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = v
}
