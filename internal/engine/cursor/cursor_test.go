package cursor

import "testing"

func TestSelectionEmpty(t *testing.T) {
	s := NewCursorSelection(5)

	if !s.IsEmpty() {
		t.Error("cursor selection should be empty")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if r := s.Range(); r.Start != 5 || r.End != 5 {
		t.Errorf("Range() = %v", r)
	}
}

func TestSelectionDirection(t *testing.T) {
	tests := []struct {
		name      string
		anchor    ByteOffset
		head      ByteOffset
		wantStart ByteOffset
		wantEnd   ByteOffset
		backward  bool
	}{
		{"forward", 2, 7, 2, 7, false},
		{"backward", 7, 2, 2, 7, true},
		{"empty", 4, 4, 4, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSelection(tc.anchor, tc.head)
			if s.Start() != tc.wantStart || s.End() != tc.wantEnd {
				t.Errorf("Start/End = %d/%d, want %d/%d", s.Start(), s.End(), tc.wantStart, tc.wantEnd)
			}
			if s.IsBackward() != tc.backward {
				t.Errorf("IsBackward() = %v, want %v", s.IsBackward(), tc.backward)
			}
			r := s.Range()
			if r.Start != tc.wantStart || r.End != tc.wantEnd {
				t.Errorf("Range() = %v", r)
			}
		})
	}
}

func TestSelectionNormalize(t *testing.T) {
	s := NewSelection(9, 3).Normalize()
	if s.Anchor != 3 || s.Head != 9 {
		t.Errorf("Normalize() = %v", s)
	}
}

func TestSelectionClamp(t *testing.T) {
	s := NewSelection(-2, 50).Clamp(10)
	if s.Anchor != 0 || s.Head != 10 {
		t.Errorf("Clamp() = %v", s)
	}
}

func TestCaretVirtual(t *testing.T) {
	c := NewCaret(4).WithVirtualCol(3)

	if !c.IsVirtual() {
		t.Error("caret should be virtual")
	}
	if c.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", c.Offset())
	}

	moved := c.MoveTo(2)
	if moved.IsVirtual() {
		t.Error("MoveTo should leave virtual space")
	}
	if moved.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", moved.Offset())
	}
}

func TestCaretSelectionCollapsesVirtual(t *testing.T) {
	c := NewCaret(0).WithSelection(NewSelection(0, 6))
	if !c.HasSelection() {
		t.Error("caret should carry a selection")
	}

	v := c.WithVirtualCol(2)
	if v.HasSelection() {
		t.Error("virtual caret cannot keep a selection extent")
	}
}
