package view

import (
	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/engine/cursor"
)

// Context is an immutable snapshot of the state an editing command decides
// against: the buffer snapshot, the selection's anchor and active (head)
// offsets, and the bounds of the line containing the active offset. Only
// the active point's line is tracked; a selection may span other lines.
//
// A context is valid only against the snapshot it was built from. Any
// buffer mutation shifts offsets, so a fresh context must be extracted
// before further decisions.
type Context struct {
	Snapshot  *buffer.Snapshot
	Revision  buffer.RevisionID
	Anchor    buffer.ByteOffset
	Active    buffer.ByteOffset
	LineStart buffer.ByteOffset
	LineEnd   buffer.ByteOffset
}

// Selection returns the context's selection.
func (c *Context) Selection() cursor.Selection {
	return cursor.NewSelection(c.Anchor, c.Active)
}

// ToEOL returns the text from the active offset to the end of its line,
// excluding line break characters.
func (c *Context) ToEOL() string {
	return c.Snapshot.TextRange(c.Active, c.LineEnd)
}

// LinePrefix returns the text from the start of the active line up to the
// active offset.
func (c *Context) LinePrefix() string {
	return c.Snapshot.TextRange(c.LineStart, c.Active)
}

// AtLineStart returns true if the active offset sits at column 0.
func (c *Context) AtLineStart() bool {
	return c.Active == c.LineStart
}

// Context extracts the current document context from the view.
// Cheap and repeatable: commands re-extract after any caret move or
// mutation.
func (v *View) Context() *Context {
	snap := v.buf.Snapshot()
	sel := v.Selection().Clamp(snap.Len())

	line := snap.LineForOffset(sel.Head)

	return &Context{
		Snapshot:  snap,
		Revision:  snap.RevisionID(),
		Anchor:    sel.Anchor,
		Active:    sel.Head,
		LineStart: snap.LineStartOffset(line),
		LineEnd:   snap.LineEndOffset(line),
	}
}

// Extract returns the document context of the provider's active view.
// Returns false when no view is active, in which case the calling command
// becomes a no-op.
func Extract(p Provider) (*Context, bool) {
	v, ok := p.Active()
	if !ok {
		return nil, false
	}
	return v.Context(), true
}
