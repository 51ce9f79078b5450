// Package input defines the action vocabulary that connects key handling
// to the dispatcher.
package input

import "strings"

// Action is a named editor command request.
// Names are namespaced with a dot, e.g. "smartedit.backspace".
type Action struct {
	// Name identifies the command.
	Name string
}

// Namespace returns the prefix before the first dot, or the whole name if
// there is no dot.
func (a Action) Namespace() string {
	if i := strings.IndexByte(a.Name, '.'); i >= 0 {
		return a.Name[:i]
	}
	return a.Name
}

// Keymap maps key chord names (e.g. "Backspace", "Ctrl+K") to action
// names.
type Keymap map[string]string

// Lookup returns the action bound to the chord, or false if unbound.
func (k Keymap) Lookup(chord string) (Action, bool) {
	name, ok := k[chord]
	if !ok || name == "" {
		return Action{}, false
	}
	return Action{Name: name}, true
}
