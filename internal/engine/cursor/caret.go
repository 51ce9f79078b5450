package cursor

import "fmt"

// Caret is a selection plus a virtual column. VirtualCol > 0 means the
// head sits VirtualCol display cells beyond the last real character of its
// line; the buffer holds nothing there. Caret is an immutable value type.
type Caret struct {
	Sel        Selection
	VirtualCol int
}

// NewCaret creates a caret at the given offset with no virtual extent.
func NewCaret(offset ByteOffset) Caret {
	if offset < 0 {
		offset = 0
	}
	return Caret{Sel: NewCursorSelection(offset)}
}

// Offset returns the head offset.
func (c Caret) Offset() ByteOffset {
	return c.Sel.Head
}

// IsVirtual returns true if the caret sits in virtual space.
func (c Caret) IsVirtual() bool {
	return c.VirtualCol > 0
}

// HasSelection returns true if the caret carries a non-empty selection.
func (c Caret) HasSelection() bool {
	return !c.Sel.IsEmpty()
}

// MoveTo returns a collapsed caret at the given offset, leaving virtual
// space.
func (c Caret) MoveTo(offset ByteOffset) Caret {
	if offset < 0 {
		offset = 0
	}
	return Caret{Sel: NewCursorSelection(offset)}
}

// WithSelection returns a caret carrying the given selection, leaving
// virtual space.
func (c Caret) WithSelection(sel Selection) Caret {
	return Caret{Sel: sel}
}

// WithVirtualCol returns a caret with the given virtual column. The
// selection collapses to the head; a selection cannot extend into virtual
// space.
func (c Caret) WithVirtualCol(col int) Caret {
	if col < 0 {
		col = 0
	}
	return Caret{Sel: c.Sel.Collapse(), VirtualCol: col}
}

// String returns a string representation of the caret.
func (c Caret) String() string {
	if c.VirtualCol > 0 {
		return fmt.Sprintf("Caret(%d+%dv)", c.Sel.Head, c.VirtualCol)
	}
	return c.Sel.String()
}
