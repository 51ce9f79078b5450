package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/engine/cursor"
)

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// render draws the visible buffer lines, the selection, the status line,
// and positions the hardware cursor.
func (a *App) render() {
	a.screen.Clear()

	v := a.View()
	if v == nil {
		a.screen.Show()
		return
	}

	width, height := a.screen.Size()
	if height < 2 || width < 1 {
		a.screen.Show()
		return
	}
	textRows := height - 1

	snap := v.Snapshot()
	caret := v.Caret()
	caretLine := int(snap.LineForOffset(caret.Sel.Head))

	a.scrollTo(caretLine, textRows)

	sel := v.Selection().Normalize()
	for row := 0; row < textRows; row++ {
		line := a.topRow + row
		if line >= int(snap.LineCount()) {
			break
		}
		a.drawLine(snap, uint32(line), row, width, sel.Start(), sel.End())
	}

	a.drawStatus(snap, caret, width, height-1)

	lineCol := int(caret.Sel.Head - snap.LineStartOffset(uint32(caretLine)))
	cx := cellWidth(snap.LineText(uint32(caretLine))[:lineCol], snap.TabWidth())
	cx += caret.VirtualCol
	a.screen.ShowCursor(cx, caretLine-a.topRow)

	a.screen.Show()
}

// scrollTo keeps the caret line inside the visible window.
func (a *App) scrollTo(caretLine, textRows int) {
	if caretLine < a.topRow {
		a.topRow = caretLine
	}
	if caretLine >= a.topRow+textRows {
		a.topRow = caretLine - textRows + 1
	}
}

func (a *App) drawLine(snap *buffer.Snapshot, line uint32, row, width int, selStart, selEnd buffer.ByteOffset) {
	text := snap.LineText(line)
	start := snap.LineStartOffset(line)
	tabWidth := snap.TabWidth()

	x := 0
	off := start
	g := uniseg.NewGraphemes(text)
	for g.Next() && x < width {
		cluster := g.Str()
		style := styleText
		if off >= selStart && off < selEnd {
			style = styleSelection
		}

		if cluster == "\t" {
			next := (x/tabWidth + 1) * tabWidth
			for ; x < next && x < width; x++ {
				a.screen.SetContent(x, row, ' ', nil, style)
			}
		} else {
			runes := g.Runes()
			a.screen.SetContent(x, row, runes[0], runes[1:], style)
			x += g.Width()
		}
		off += buffer.ByteOffset(len(cluster))
	}
}

func (a *App) drawStatus(snap *buffer.Snapshot, caret cursor.Caret, width, row int) {
	pt := snap.OffsetToPoint(caret.Offset())

	name := a.path
	if name == "" {
		name = "[scratch]"
	}
	mode := ""
	if a.View().Buffer().ReadOnly() {
		mode = " [RO]"
	}
	left := fmt.Sprintf(" %s%s", name, mode)
	right := fmt.Sprintf("%d:%d ", pt.Line+1, pt.Column+1)
	if a.status != "" {
		left = " " + a.status
	}

	for x := 0; x < width; x++ {
		a.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	drawText(a.screen, 0, row, left, styleStatus)
	if w := cellWidth(right, snap.TabWidth()); w < width {
		drawText(a.screen, width-w, row, right, styleStatus)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += g.Width()
	}
}

// cellWidth measures the display width of text, expanding tabs to the
// next tab stop.
func cellWidth(text string, tabWidth int) int {
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if g.Str() == "\t" {
			w = (w/tabWidth + 1) * tabWidth
			continue
		}
		w += g.Width()
	}
	return w
}
