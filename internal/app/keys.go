package app

import (
	"github.com/gdamore/tcell/v2"
)

// ChordFor names a key event for keymap lookup. Unnamed events (plain
// runes, unmapped keys) return "".
func ChordFor(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace"
	case tcell.KeyDelete:
		return "Delete"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyHome:
		return "Home"
	case tcell.KeyEnd:
		return "End"
	case tcell.KeyPgUp:
		return "PageUp"
	case tcell.KeyPgDn:
		return "PageDown"
	}

	// Control chords arrive as dedicated key codes. KeyCtrlH and KeyCtrlM
	// alias Backspace and Enter and are handled above.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return "Ctrl+" + string(rune('A'+k-tcell.KeyCtrlA))
	}
	return ""
}
