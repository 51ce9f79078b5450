// Package app wires the editor together: a tcell screen, the dispatcher
// with the smart editing handlers, and a keymap-driven event loop.
package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/kwpeters/airliner/internal/clipboard"
	"github.com/kwpeters/airliner/internal/config"
	"github.com/kwpeters/airliner/internal/dispatcher"
	"github.com/kwpeters/airliner/internal/dispatcher/execctx"
	"github.com/kwpeters/airliner/internal/dispatcher/handlers/smartedit"
	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/kill"
	"github.com/kwpeters/airliner/internal/view"
)

// App runs a single-buffer editing session.
type App struct {
	screen tcell.Screen
	cfg    config.Config
	views  *view.Manager
	disp   *dispatcher.Dispatcher
	path   string
	status string
	topRow int
	quit   bool
}

// New builds an App editing the given text. The screen is not initialized;
// Run owns its lifecycle.
func New(screen tcell.Screen, cfg config.Config, path, text string) *App {
	opts := []buffer.Option{buffer.WithTabWidth(cfg.TabWidth)}
	if cfg.ReadOnly {
		opts = append(opts, buffer.WithReadOnly())
	}
	buf := buffer.NewBufferFromString(text, opts...)

	views := view.NewManager()
	views.SetActive(view.New(buf))

	clip := clipboard.Clipboard(clipboard.NewMemory())
	if sys, ok := clipboard.NewSystem(); ok {
		clip = sys
	}

	ctx := execctx.New().
		WithViews(views).
		WithClipboard(clip).
		WithKill(kill.NewAccrual(kill.WithWindow(cfg.KillWindow)))

	disp := dispatcher.New(ctx)
	disp.RegisterNamespace(smartedit.NewHandler(), smartedit.Actions...)

	return &App{
		screen: screen,
		cfg:    cfg,
		views:  views,
		disp:   disp,
		path:   path,
	}
}

// Dispatcher exposes the action dispatcher, mainly for tests.
func (a *App) Dispatcher() *dispatcher.Dispatcher { return a.disp }

// View returns the active view.
func (a *App) View() *view.View {
	v, _ := a.views.Active()
	return v
}

// Run initializes the screen and processes events until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer a.screen.Fini()

	a.screen.EnablePaste()

	for !a.quit {
		a.render()
		ev := a.screen.PollEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ev)
	}
	return nil
}

func (a *App) handleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.HandleKey(e)
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

// HandleKey routes one key event: the keymap first, then built-in movement
// and editing keys.
func (a *App) HandleKey(ev *tcell.EventKey) {
	chord := ChordFor(ev)

	if chord == "Ctrl+Q" {
		a.quit = true
		return
	}

	if action, ok := a.cfg.Keymap.Lookup(chord); ok {
		res := a.disp.Dispatch(action)
		if res.IsError() {
			a.status = res.Error.Error()
		} else {
			a.status = ""
		}
		return
	}

	v := a.View()
	if v == nil {
		return
	}

	switch chord {
	case "Left":
		a.moveLeft(v)
	case "Right":
		a.moveRight(v)
	case "Up":
		a.moveVertical(v, -1)
	case "Down":
		a.moveVertical(v, +1)
	case "Home":
		snap := v.Snapshot()
		line := snap.LineForOffset(v.Caret().Sel.Head)
		v.MoveTo(snap.LineStartOffset(line))
	case "End":
		snap := v.Snapshot()
		line := snap.LineForOffset(v.Caret().Sel.Head)
		v.MoveTo(snap.LineEndOffset(line))
	case "Enter":
		a.insertText(v, v.Buffer().LineEnding().Sequence())
	default:
		if ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			a.insertText(v, string(ev.Rune()))
		}
	}
}

func (a *App) insertText(v *view.View, text string) {
	// Typing in virtual space first pads with nothing: the caret snaps to
	// the end of line content before the insert.
	caret := v.Caret()
	pos := caret.Sel.Head
	if caret.VirtualCol > 0 {
		snap := v.Snapshot()
		pos = snap.LineEndOffset(snap.LineForOffset(pos))
		v.MoveTo(pos)
	}

	tx := v.BeginEdit()
	tx.Insert(pos, text)
	if err := tx.Commit(); err != nil {
		a.status = err.Error()
		return
	}
	v.MoveTo(pos + buffer.ByteOffset(len(text)))
	a.status = ""
}

func (a *App) moveLeft(v *view.View) {
	caret := v.Caret()
	if caret.VirtualCol > 0 {
		v.SetVirtualCol(caret.VirtualCol - 1)
		return
	}
	if caret.Sel.Head > 0 {
		snap := v.Snapshot()
		_, size := utf8.DecodeLastRuneInString(snap.TextRange(0, caret.Sel.Head))
		v.MoveTo(caret.Sel.Head - buffer.ByteOffset(size))
	}
}

func (a *App) moveRight(v *view.View) {
	caret := v.Caret()
	snap := v.Snapshot()
	line := snap.LineForOffset(caret.Sel.Head)

	// Past the end of line content the caret floats in virtual space
	// instead of wrapping to the next line.
	if caret.VirtualCol > 0 || caret.Sel.Head == snap.LineEndOffset(line) {
		v.SetVirtualCol(caret.VirtualCol + 1)
		return
	}
	_, size := snap.RuneAt(caret.Sel.Head)
	v.MoveTo(caret.Sel.Head + buffer.ByteOffset(size))
}

func (a *App) moveVertical(v *view.View, delta int) {
	snap := v.Snapshot()
	caret := v.Caret()
	line := int(snap.LineForOffset(caret.Sel.Head))

	target := line + delta
	if target < 0 || target >= int(snap.LineCount()) {
		return
	}

	col := int(caret.Sel.Head-snap.LineStartOffset(uint32(line))) + caret.VirtualCol
	start := snap.LineStartOffset(uint32(target))
	end := snap.LineEndOffset(uint32(target))
	dest := start + buffer.ByteOffset(col)
	if dest > end {
		dest = end
	}
	v.MoveTo(dest)
}
