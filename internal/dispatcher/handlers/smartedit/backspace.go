package smartedit

import (
	"unicode/utf8"

	"github.com/kwpeters/airliner/internal/dispatcher/execctx"
	"github.com/kwpeters/airliner/internal/dispatcher/handler"
	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/view"
	"github.com/kwpeters/airliner/internal/whitespace"
)

// backspace deletes backward from the caret, eating whole whitespace runs.
func (h *Handler) backspace(ctx *execctx.ExecutionContext) handler.Result {
	v, ok := ctx.Views.Active()
	if !ok {
		return handler.NoOp()
	}

	dc := v.Context()

	// A selection short-circuits everything: delete it and stop.
	if sel := dc.Selection(); !sel.IsEmpty() {
		return deleteSpan(v, dc, sel.Range())
	}

	// Virtual space holds no deletable characters. Reposition the caret to
	// the real end of line and recompute against the fresh context.
	if v.VirtualCol() > 0 {
		v.MoveTo(dc.LineEnd)
		dc = v.Context()
	}

	span := backwardSpan(dc)
	if span.IsEmpty() {
		return handler.NoOp()
	}
	return deleteSpan(v, dc, span)
}

// backwardSpan computes the range hungry backspace removes.
func backwardSpan(dc *view.Context) buffer.Range {
	sol, pos := dc.LineStart, dc.Active

	if pos == sol {
		// Column 0: eat whitespace and line breaks backward. The scan is
		// bounded at offset 0; reaching the start of the document is a
		// normal terminal condition.
		start := pos
		for start > 0 {
			b, ok := dc.Snapshot.ByteAt(start - 1)
			if !ok || !(whitespace.IsBreak(b) || whitespace.IsSpace(b)) {
				break
			}
			start--
		}
		return buffer.NewRange(start, pos)
	}

	prefix := dc.LinePrefix()
	if n := whitespace.TrailingRun(prefix); n > 0 {
		// Caret sits after a whitespace run: eat exactly that run.
		return buffer.NewRange(pos-buffer.ByteOffset(n), pos)
	}

	// Caret directly after content: ordinary single-character backspace.
	_, size := utf8.DecodeLastRuneInString(prefix)
	if size == 0 {
		return buffer.NewRange(pos, pos)
	}
	return buffer.NewRange(pos-buffer.ByteOffset(size), pos)
}

// deleteSpan applies a single atomic delete and collapses the caret to the
// span start.
func deleteSpan(v *view.View, dc *view.Context, r buffer.Range) handler.Result {
	old := dc.Snapshot.TextRange(r.Start, r.End)

	tx := v.BeginEdit()
	tx.Delete(r.Start, r.End)
	if err := tx.Commit(); err != nil {
		return handler.Error(err)
	}

	v.MoveTo(r.Start)
	return handler.Success().WithEdit(r, old)
}
