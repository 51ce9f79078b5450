package smartedit

import (
	"github.com/kwpeters/airliner/internal/dispatcher/execctx"
	"github.com/kwpeters/airliner/internal/dispatcher/handler"
	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/view"
	"github.com/kwpeters/airliner/internal/whitespace"
)

// cutToEOL kills forward from the caret, accruing consecutive kills into
// the clipboard while the accrual window is active.
func (h *Handler) cutToEOL(ctx *execctx.ExecutionContext) handler.Result {
	v, ok := ctx.Views.Active()
	if !ok {
		return handler.NoOp()
	}

	dc := v.Context()

	// A selection cut replaces the clipboard outright and does not touch
	// the accrual window.
	if sel := dc.Selection(); !sel.IsEmpty() {
		r := sel.Range()
		killed := dc.Snapshot.TextRange(r.Start, r.End)

		res := deleteSpan(v, dc, r)
		if res.IsError() {
			return res
		}
		if err := ctx.Clipboard.Set(killed); err != nil {
			return handler.Error(err)
		}
		return res.WithKilled(killed)
	}

	// Accrued content survives only while the window is active. A failed
	// clipboard read degrades to replace semantics.
	accrued := ""
	if ctx.Kill.Active() {
		if text, err := ctx.Clipboard.Get(); err == nil {
			accrued = text
		}
	}

	r := forwardSpan(dc)
	killed := dc.Snapshot.TextRange(r.Start, r.End)

	if !r.IsEmpty() {
		res := deleteSpan(v, dc, r)
		if res.IsError() {
			return res
		}
	}

	// Clipboard write and window re-arm happen even for an empty kill at
	// the end of the document, matching the accrued+"" contract.
	if err := ctx.Clipboard.Set(accrued + killed); err != nil {
		return handler.Error(err)
	}
	ctx.Kill.Record()

	return handler.Success().WithEdit(r, killed).WithKilled(killed)
}

// forwardSpan computes the range cutToEOL removes.
func forwardSpan(dc *view.Context) buffer.Range {
	toEOL := dc.ToEOL()

	if toEOL != "" {
		// Leading whitespace followed by content: kill only the run, so
		// the rest of the line stays for a subsequent kill to consume.
		if n := whitespace.LeadingRun(toEOL); n > 0 {
			return buffer.NewRange(dc.Active, dc.Active+buffer.ByteOffset(n))
		}
		return buffer.NewRange(dc.Active, dc.LineEnd)
	}

	// At end of line content: consume the line terminator, up to two break
	// bytes, stopping before the next line's content. Handles \n, \r, and
	// \r\n uniformly. At the true end of the document this consumes
	// nothing.
	end := dc.Active
	for i := 0; i < 2; i++ {
		b, ok := dc.Snapshot.ByteAt(end)
		if !ok || !whitespace.IsBreak(b) {
			break
		}
		end++
	}
	return buffer.NewRange(dc.Active, end)
}
