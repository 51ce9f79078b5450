package smartedit_test

import (
	"testing"
	"time"

	"github.com/kwpeters/airliner/internal/clipboard"
	"github.com/kwpeters/airliner/internal/dispatcher/execctx"
	"github.com/kwpeters/airliner/internal/dispatcher/handlers/smartedit"
	"github.com/kwpeters/airliner/internal/engine/buffer"
	"github.com/kwpeters/airliner/internal/engine/cursor"
	"github.com/kwpeters/airliner/internal/input"
	"github.com/kwpeters/airliner/internal/kill"
	"github.com/kwpeters/airliner/internal/view"
)

// fakeClock drives the accrual window manually.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fixture wires a single view, an in-memory clipboard, and a fake-clock
// accrual tracker through an execution context.
type fixture struct {
	t     *testing.T
	view  *view.View
	views *view.Manager
	clip  *clipboard.Memory
	clock *fakeClock
	acc   *kill.Accrual
	ctx   *execctx.ExecutionContext
	h     *smartedit.Handler
}

func newFixture(t *testing.T, text string, opts ...buffer.Option) *fixture {
	t.Helper()

	v := view.New(buffer.NewBufferFromString(text, opts...))
	views := view.NewManager()
	views.SetActive(v)

	clock := &fakeClock{now: time.Unix(1000, 0)}
	acc := kill.NewAccrual(kill.WithClock(clock.Now))
	clip := clipboard.NewMemory()

	ctx := execctx.New().
		WithViews(views).
		WithClipboard(clip).
		WithKill(acc)

	return &fixture{
		t:     t,
		view:  v,
		views: views,
		clip:  clip,
		clock: clock,
		acc:   acc,
		ctx:   ctx,
		h:     smartedit.NewHandler(),
	}
}

func (f *fixture) backspace() smarteditResult {
	f.t.Helper()
	res := f.h.HandleAction(input.Action{Name: smartedit.ActionBackspace}, f.ctx)
	return smarteditResult{f, res.Status.String(), res.Killed, res.IsError()}
}

func (f *fixture) cut() smarteditResult {
	f.t.Helper()
	res := f.h.HandleAction(input.Action{Name: smartedit.ActionCutToEOL}, f.ctx)
	return smarteditResult{f, res.Status.String(), res.Killed, res.IsError()}
}

type smarteditResult struct {
	f       *fixture
	status  string
	killed  string
	isError bool
}

func (f *fixture) text() string {
	return f.view.Buffer().Text()
}

func (f *fixture) caret() buffer.ByteOffset {
	return f.view.Caret().Offset()
}

func (f *fixture) clipboardText() string {
	text, err := f.clip.Get()
	if err != nil {
		f.t.Fatalf("clipboard Get: %v", err)
	}
	return text
}

func TestHandlerNamespace(t *testing.T) {
	h := smartedit.NewHandler()
	if h.Namespace() != "smartedit" {
		t.Errorf("Namespace() = %q, want %q", h.Namespace(), "smartedit")
	}
}

func TestHandlerCanHandle(t *testing.T) {
	h := smartedit.NewHandler()

	tests := []struct {
		action   string
		expected bool
	}{
		{smartedit.ActionBackspace, true},
		{smartedit.ActionCutToEOL, true},
		{"smartedit.unknown", false},
		{"editor.deleteChar", false},
	}

	for _, tc := range tests {
		if h.CanHandle(tc.action) != tc.expected {
			t.Errorf("CanHandle(%q) = %v, want %v", tc.action, h.CanHandle(tc.action), tc.expected)
		}
	}
}

func TestBackspaceNoActiveView(t *testing.T) {
	f := newFixture(t, "abc")
	f.views.SetActive(nil)

	res := f.backspace()
	if res.status != "no-op" {
		t.Errorf("status = %q, want no-op", res.status)
	}
	if f.text() != "abc" {
		t.Errorf("text = %q, buffer should be untouched", f.text())
	}
}

func TestBackspaceDeletesSelectionExactly(t *testing.T) {
	tests := []struct {
		name           string
		anchor, active buffer.ByteOffset
	}{
		{"forward", 2, 7},
		{"backward", 7, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, "foo bar baz")
			f.view.SetSelection(cursor.NewSelection(tc.anchor, tc.active))

			f.backspace()
			if f.text() != "fo baz" {
				t.Errorf("text = %q, want %q", f.text(), "fo baz")
			}
			if f.caret() != 2 {
				t.Errorf("caret = %d, want 2", f.caret())
			}
		})
	}
}

func TestBackspaceColumnZeroEatsRunToDocumentStart(t *testing.T) {
	// Only whitespace and newlines between document start and the caret:
	// the scan consumes all of it and stops at offset 0 without error.
	f := newFixture(t, " \t\n\nfoo")
	f.view.MoveTo(4) // column 0 of the line holding "foo"

	f.backspace()
	if f.text() != "foo" {
		t.Errorf("text = %q, want %q", f.text(), "foo")
	}
	if f.caret() != 0 {
		t.Errorf("caret = %d, want 0", f.caret())
	}
}

func TestBackspaceColumnZeroStopsAtContent(t *testing.T) {
	f := newFixture(t, "foo\n  \nbar")
	f.view.MoveTo(7) // column 0 of "bar"

	f.backspace()
	if f.text() != "foobar" {
		t.Errorf("text = %q, want %q", f.text(), "foobar")
	}
	if f.caret() != 3 {
		t.Errorf("caret = %d, want 3", f.caret())
	}
}

func TestBackspaceColumnZeroEatsCRLF(t *testing.T) {
	f := newFixture(t, "foo\r\nbar")
	f.view.MoveTo(5) // column 0 of "bar"

	f.backspace()
	if f.text() != "foobar" {
		t.Errorf("text = %q, want %q", f.text(), "foobar")
	}
}

func TestBackspaceEatsTrailingWhitespaceRun(t *testing.T) {
	// Caret after "foo   " (6 bytes in): the whole 3-space run goes.
	f := newFixture(t, "foo   bar")
	f.view.MoveTo(6)

	f.backspace()
	if f.text() != "foobar" {
		t.Errorf("text = %q, want %q", f.text(), "foobar")
	}
	if f.caret() != 3 {
		t.Errorf("caret = %d, want 3", f.caret())
	}
}

func TestBackspaceAfterContentDeletesOneChar(t *testing.T) {
	f := newFixture(t, "foo bar")
	f.view.MoveTo(7) // right after 'r'

	f.backspace()
	if f.text() != "foo ba" {
		t.Errorf("text = %q, want %q", f.text(), "foo ba")
	}
	if f.caret() != 6 {
		t.Errorf("caret = %d, want 6", f.caret())
	}
}

func TestBackspaceDeletesWholeRune(t *testing.T) {
	f := newFixture(t, "héllo") // é is 2 bytes
	f.view.MoveTo(3)            // right after é

	f.backspace()
	if f.text() != "hllo" {
		t.Errorf("text = %q, want %q", f.text(), "hllo")
	}
	if f.caret() != 1 {
		t.Errorf("caret = %d, want 1", f.caret())
	}
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	f := newFixture(t, "abc")
	f.view.MoveTo(0)

	res := f.backspace()
	if res.status != "no-op" {
		t.Errorf("status = %q, want no-op", res.status)
	}
	if f.text() != "abc" {
		t.Errorf("text = %q, want unchanged", f.text())
	}
}

func TestBackspaceExitsVirtualSpaceFirst(t *testing.T) {
	// Caret floats three cells past the end of "ab  ". Virtual cells are
	// not deletable; the caret drops to the real EOL and the trailing run
	// goes.
	f := newFixture(t, "ab  \nx")
	f.view.MoveTo(4)
	f.view.SetVirtualCol(3)

	f.backspace()
	if f.text() != "ab\nx" {
		t.Errorf("text = %q, want %q", f.text(), "ab\nx")
	}
	if f.view.VirtualCol() != 0 {
		t.Error("virtual space should be cleared")
	}
	if f.caret() != 2 {
		t.Errorf("caret = %d, want 2", f.caret())
	}
}

func TestBackspaceReadOnlyBuffer(t *testing.T) {
	f := newFixture(t, "foo   bar", buffer.WithReadOnly())
	f.view.MoveTo(6)

	res := f.backspace()
	if !res.isError {
		t.Error("expected error result on read-only buffer")
	}
	if f.text() != "foo   bar" {
		t.Errorf("text = %q, want unchanged", f.text())
	}
}

func TestCutNoActiveView(t *testing.T) {
	f := newFixture(t, "abc")
	f.views.SetActive(nil)

	res := f.cut()
	if res.status != "no-op" {
		t.Errorf("status = %q, want no-op", res.status)
	}
	if f.clipboardText() != "" {
		t.Errorf("clipboard = %q, want empty", f.clipboardText())
	}
}

func TestCutLeadingWhitespaceBeforeContent(t *testing.T) {
	// "foo   bar" with the caret after "foo": only the run is killed so
	// the remainder stays for the next kill.
	f := newFixture(t, "foo   bar")
	f.view.MoveTo(3)

	res := f.cut()
	if res.killed != "   " {
		t.Errorf("killed = %q, want three spaces", res.killed)
	}
	if f.text() != "foobar" {
		t.Errorf("text = %q, want %q", f.text(), "foobar")
	}
	if f.clipboardText() != "   " {
		t.Errorf("clipboard = %q, want three spaces", f.clipboardText())
	}
	if f.caret() != 3 {
		t.Errorf("caret = %d, want 3", f.caret())
	}
}

func TestCutRestOfLine(t *testing.T) {
	f := newFixture(t, "foo bar\nnext")
	f.view.MoveTo(3)

	f.cut() // " bar" is whitespace then content: only the space goes
	if f.text() != "foobar\nnext" {
		t.Errorf("text = %q, want %q", f.text(), "foobar\nnext")
	}

	f.cut() // "bar" has no leading whitespace: kill it all
	if f.text() != "foo\nnext" {
		t.Errorf("text = %q, want %q", f.text(), "foo\nnext")
	}
	if f.clipboardText() != " bar" {
		t.Errorf("clipboard = %q, want %q (accrued)", f.clipboardText(), " bar")
	}
}

func TestCutWhitespaceOnlyToEOL(t *testing.T) {
	// No content after the run: the whole remainder is killed.
	f := newFixture(t, "foo   \nnext")
	f.view.MoveTo(3)

	f.cut()
	if f.text() != "foo\nnext" {
		t.Errorf("text = %q, want %q", f.text(), "foo\nnext")
	}
	if f.clipboardText() != "   " {
		t.Errorf("clipboard = %q, want three spaces", f.clipboardText())
	}
}

func TestCutAtEOLConsumesCRLF(t *testing.T) {
	f := newFixture(t, "foo\r\nbar")
	f.view.MoveTo(3)

	res := f.cut()
	if res.killed != "\r\n" {
		t.Errorf("killed = %q, want CRLF", res.killed)
	}
	if f.text() != "foobar" {
		t.Errorf("text = %q, want %q", f.text(), "foobar")
	}
	if f.clipboardText() != "\r\n" {
		t.Errorf("clipboard = %q, want CRLF", f.clipboardText())
	}
}

func TestCutAtEOLConsumesSingleLF(t *testing.T) {
	f := newFixture(t, "foo\nbar")
	f.view.MoveTo(3)

	f.cut()
	if f.text() != "foobar" {
		t.Errorf("text = %q, want %q", f.text(), "foobar")
	}
	if f.clipboardText() != "\n" {
		t.Errorf("clipboard = %q, want LF", f.clipboardText())
	}
}

func TestCutAtEndOfDocument(t *testing.T) {
	f := newFixture(t, "foo")
	f.view.MoveTo(3)

	// Seed accrued content inside the window.
	if err := f.clip.Set("accrued"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	f.acc.Record()

	res := f.cut()
	if res.killed != "" {
		t.Errorf("killed = %q, want empty", res.killed)
	}
	if f.text() != "foo" {
		t.Errorf("text = %q, want unchanged", f.text())
	}
	if f.clipboardText() != "accrued" {
		t.Errorf("clipboard = %q, want %q", f.clipboardText(), "accrued")
	}
	if !f.acc.Active() {
		t.Error("empty kill should still re-arm the window")
	}
}

func TestCutAccrualWithinWindow(t *testing.T) {
	f := newFixture(t, "abc\ndef\nghi")
	f.view.MoveTo(0)

	f.cut() // kills "abc"
	f.clock.Advance(2 * time.Second)
	f.view.MoveTo(0)
	f.cut() // within window: kills "\n", appends

	if f.clipboardText() != "abc\n" {
		t.Errorf("clipboard = %q, want %q", f.clipboardText(), "abc\n")
	}

	// Third kill after the window has lapsed replaces the clipboard.
	f.clock.Advance(2500 * time.Millisecond)
	f.view.MoveTo(0)
	f.cut() // kills "def"

	if f.clipboardText() != "def" {
		t.Errorf("clipboard = %q, want %q", f.clipboardText(), "def")
	}
}

func TestCutSelectionReplacesClipboard(t *testing.T) {
	f := newFixture(t, "one two three")
	if err := f.clip.Set("stale"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	f.acc.Record() // window active; a selection cut must ignore it

	f.view.SetSelection(cursor.NewSelection(4, 7))
	res := f.cut()

	if res.killed != "two" {
		t.Errorf("killed = %q, want %q", res.killed, "two")
	}
	if f.text() != "one  three" {
		t.Errorf("text = %q, want %q", f.text(), "one  three")
	}
	if f.clipboardText() != "two" {
		t.Errorf("clipboard = %q, want replaced content %q", f.clipboardText(), "two")
	}
}

func TestCutSelectionDoesNotArmAccrual(t *testing.T) {
	f := newFixture(t, "one two three")
	f.view.SetSelection(cursor.NewSelection(0, 3))

	f.cut()
	if f.acc.Active() {
		t.Error("selection cut must not arm the accrual window")
	}
}

func TestCutReadOnlySkipsClipboardWrite(t *testing.T) {
	f := newFixture(t, "foo bar", buffer.WithReadOnly())
	f.view.MoveTo(0)

	res := f.cut()
	if !res.isError {
		t.Error("expected error result on read-only buffer")
	}
	if f.clipboardText() != "" {
		t.Errorf("clipboard = %q, no write should happen after a failed delete", f.clipboardText())
	}
	if f.acc.Active() {
		t.Error("failed kill must not arm the accrual window")
	}
}

func TestUnknownAction(t *testing.T) {
	f := newFixture(t, "abc")
	res := f.h.HandleAction(input.Action{Name: "smartedit.bogus"}, f.ctx)
	if !res.IsError() {
		t.Error("unknown action should return an error result")
	}
}
