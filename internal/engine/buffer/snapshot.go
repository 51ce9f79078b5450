package buffer

import "unicode/utf8"

// Snapshot provides a read-only view of a buffer at a specific point in
// time. It is safe for concurrent access and will not change even if the
// original buffer is modified. Offsets computed against a snapshot are
// only meaningful for that snapshot's revision.
type Snapshot struct {
	text       string
	lines      lineIndex
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns text in the given byte range, clamped to the snapshot.
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	return sliceText(s.text, start, end)
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() uint32 {
	return s.lines.lineCount()
}

// LineText returns the text of a specific line (without line break).
func (s *Snapshot) LineText(line uint32) string {
	return s.text[s.lines.start(line):s.lines.end(line, s.text)]
}

// LineLen returns the length of a specific line in bytes (without line break).
func (s *Snapshot) LineLen(line uint32) int {
	return int(s.lines.end(line, s.text) - s.lines.start(line))
}

// ByteAt returns the byte at the given offset.
func (s *Snapshot) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= ByteOffset(len(s.text)) {
		return 0, false
	}
	return s.text[offset], true
}

// RuneAt returns the rune at the given byte offset.
// Returns utf8.RuneError and size 0 if offset is out of range.
func (s *Snapshot) RuneAt(offset ByteOffset) (rune, int) {
	if offset < 0 || offset >= ByteOffset(len(s.text)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.text[offset:])
}

// OffsetToPoint converts a byte offset to line/column.
func (s *Snapshot) OffsetToPoint(offset ByteOffset) Point {
	return offsetToPoint(s.lines, offset)
}

// PointToOffset converts line/column to byte offset.
func (s *Snapshot) PointToOffset(point Point) ByteOffset {
	return pointToOffset(s.lines, s.text, point)
}

// LineForOffset returns the line containing the given offset.
func (s *Snapshot) LineForOffset(offset ByteOffset) uint32 {
	return s.lines.lineFor(offset)
}

// LineStartOffset returns the byte offset of the start of a line.
func (s *Snapshot) LineStartOffset(line uint32) ByteOffset {
	return s.lines.start(line)
}

// LineEndOffset returns the byte offset of the end of a line (before the
// line break characters).
func (s *Snapshot) LineEndOffset(line uint32) ByteOffset {
	return s.lines.end(line, s.text)
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// IsEmpty returns true if the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.text) == 0
}

// LineEnding returns the snapshot's dominant line ending style.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}

// TabWidth returns the snapshot's tab width.
func (s *Snapshot) TabWidth() int {
	return s.tabWidth
}
