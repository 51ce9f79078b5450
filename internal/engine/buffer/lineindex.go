package buffer

import "sort"

// lineIndex records the start offset of every line in a text.
// Line breaks are "\r\n", "\r", or "\n"; a CRLF pair counts as a single
// break. The index always contains at least one line (the empty text has
// one empty line).
type lineIndex struct {
	starts []ByteOffset
}

// buildLineIndex scans text and records line start offsets.
func buildLineIndex(text string) lineIndex {
	starts := make([]ByteOffset, 1, 16)
	starts[0] = 0

	for i := 0; i < len(text); {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
			starts = append(starts, ByteOffset(i))
		case '\n':
			i++
			starts = append(starts, ByteOffset(i))
		default:
			i++
		}
	}

	return lineIndex{starts: starts}
}

// lineCount returns the number of lines.
func (li lineIndex) lineCount() uint32 {
	return uint32(len(li.starts))
}

// start returns the byte offset of the start of a line.
// Lines past the end map to the end of the last line's start.
func (li lineIndex) start(line uint32) ByteOffset {
	if int(line) >= len(li.starts) {
		line = uint32(len(li.starts) - 1)
	}
	return li.starts[line]
}

// end returns the byte offset of the end of a line, before any line break
// characters. text must be the string the index was built from.
func (li lineIndex) end(line uint32, text string) ByteOffset {
	if int(line) >= len(li.starts) {
		line = uint32(len(li.starts) - 1)
	}
	if int(line) == len(li.starts)-1 {
		return ByteOffset(len(text))
	}

	next := li.starts[line+1]
	if next >= 2 && text[next-2:next] == "\r\n" {
		return next - 2
	}
	return next - 1
}

// lineFor returns the line containing the given offset.
// Offsets past the end map to the last line.
func (li lineIndex) lineFor(offset ByteOffset) uint32 {
	if offset <= 0 {
		return 0
	}
	// First line whose start is greater than offset; the line containing
	// offset is the one before it.
	i := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	})
	return uint32(i - 1)
}
