package view

import (
	"testing"

	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/engine/cursor"
)

func TestManagerNoActiveView(t *testing.T) {
	m := NewManager()

	if _, ok := m.Active(); ok {
		t.Error("fresh manager should have no active view")
	}
	if _, ok := Extract(m); ok {
		t.Error("Extract should report no context without an active view")
	}
}

func TestManagerSetActive(t *testing.T) {
	m := NewManager()
	v := New(buffer.NewBufferFromString("hello"))

	m.SetActive(v)
	got, ok := m.Active()
	if !ok || got != v {
		t.Error("Active() should return the view that was set")
	}

	m.SetActive(nil)
	if _, ok := m.Active(); ok {
		t.Error("SetActive(nil) should deactivate")
	}
}

func TestContextFields(t *testing.T) {
	v := New(buffer.NewBufferFromString("foo\nbar baz\nqux"))
	v.MoveTo(8) // between "bar" and "baz" on line 1

	ctx := v.Context()

	if ctx.Active != 8 || ctx.Anchor != 8 {
		t.Errorf("Anchor/Active = %d/%d, want 8/8", ctx.Anchor, ctx.Active)
	}
	if ctx.LineStart != 4 || ctx.LineEnd != 11 {
		t.Errorf("LineStart/LineEnd = %d/%d, want 4/11", ctx.LineStart, ctx.LineEnd)
	}
	if ctx.ToEOL() != "baz" {
		t.Errorf("ToEOL() = %q, want %q", ctx.ToEOL(), "baz")
	}
	if ctx.LinePrefix() != "bar " {
		t.Errorf("LinePrefix() = %q, want %q", ctx.LinePrefix(), "bar ")
	}
	if ctx.AtLineStart() {
		t.Error("AtLineStart() should be false mid-line")
	}
}

func TestContextTracksActivePointLine(t *testing.T) {
	v := New(buffer.NewBufferFromString("one\ntwo\nthree"))
	// Selection spans lines; only the head's line is tracked.
	v.SetSelection(cursor.NewSelection(1, 9))

	ctx := v.Context()
	if ctx.LineStart != 8 || ctx.LineEnd != 13 {
		t.Errorf("LineStart/LineEnd = %d/%d, want 8/13", ctx.LineStart, ctx.LineEnd)
	}
	if ctx.Selection().IsEmpty() {
		t.Error("selection should be non-empty")
	}
}

func TestContextStaleAfterEdit(t *testing.T) {
	v := New(buffer.NewBufferFromString("abcdef"))
	v.MoveTo(3)

	before := v.Context()
	if err := v.Buffer().Delete(0, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	after := v.Context()

	if before.Revision == after.Revision {
		t.Error("context revision should change after mutation")
	}
	if before.Snapshot.Text() == after.Snapshot.Text() {
		t.Error("fresh context should see the mutated text")
	}
}

func TestMoveToClampsAndClearsVirtual(t *testing.T) {
	v := New(buffer.NewBufferFromString("hi"))
	v.SetVirtualCol(5)

	if v.VirtualCol() != 5 {
		t.Errorf("VirtualCol() = %d, want 5", v.VirtualCol())
	}

	v.MoveTo(99)
	if v.Caret().Offset() != 2 {
		t.Errorf("Offset() = %d, want clamped 2", v.Caret().Offset())
	}
	if v.VirtualCol() != 0 {
		t.Error("MoveTo should clear virtual space")
	}
}
