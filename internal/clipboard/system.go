package clipboard

import "github.com/atotto/clipboard"

// System is the OS clipboard slot.
type System struct{}

// NewSystem returns the OS clipboard. Returns false when no system
// clipboard utility is available (e.g. headless Linux without xclip);
// callers should fall back to Memory.
func NewSystem() (*System, bool) {
	if clipboard.Unsupported {
		return nil, false
	}
	return &System{}, true
}

// Get implements Clipboard.
func (s *System) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set implements Clipboard.
func (s *System) Set(content string) error {
	return clipboard.WriteAll(content)
}
