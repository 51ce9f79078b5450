// Package whitespace classifies the whitespace shapes the editing
// commands care about: trailing runs before a caret, leading runs ahead of
// it, and line break bytes. Horizontal whitespace is space and tab; line
// breaks are handled separately so spans taken from a single line never
// contain them.
package whitespace

import "regexp"

var (
	// reRun matches a string that is entirely horizontal whitespace.
	reRun = regexp.MustCompile(`^[ \t]+$`)

	// reTrailing captures the whitespace run at the end of a span.
	reTrailing = regexp.MustCompile(`([ \t]+)$`)

	// reLeading captures a leading whitespace run only when real content
	// follows it.
	reLeading = regexp.MustCompile(`^([ \t]+)[^ \t]`)
)

// IsSpace returns true if b is a horizontal whitespace byte.
func IsSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsBreak returns true if b is a line break byte.
func IsBreak(b byte) bool {
	return b == '\n' || b == '\r'
}

// IsRun returns true if s consists of one or more horizontal whitespace
// characters and nothing else.
func IsRun(s string) bool {
	return reRun.MatchString(s)
}

// TrailingRun returns the length in bytes of the whitespace run at the end
// of s, or 0 if s does not end in whitespace.
func TrailingRun(s string) int {
	m := reTrailing.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return len(m[1])
}

// LeadingRun returns the length in bytes of the whitespace run at the
// start of s, but only when at least one non-whitespace character follows
// it. Returns 0 for spans that are empty, start with content, or are
// whitespace all the way through.
func LeadingRun(s string) int {
	m := reLeading.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return len(m[1])
}
