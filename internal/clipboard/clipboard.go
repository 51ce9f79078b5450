// Package clipboard abstracts the single global clipboard slot.
//
// The slot has last-writer-wins semantics and no ordering guarantees
// beyond that; the kill accrual window is the only mechanism that turns
// "replace" into "append".
package clipboard

import "sync"

// Clipboard is a single text slot.
type Clipboard interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set replaces the clipboard content.
	Set(content string) error
}

// Memory is an in-process clipboard slot. It is the default for tests and
// for environments without a system clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Get implements Clipboard.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// Set implements Clipboard.
func (m *Memory) Set(content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = content
	return nil
}
