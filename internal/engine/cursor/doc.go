// Package cursor provides selection and caret types for the editor.
//
// A Selection is a directional pair of byte offsets: Anchor is where the
// selection started, Head is the end the caret tracks. Anchor == Head means
// a plain caret with no selected extent. Selections are immutable value
// types; movement methods return new values.
//
// A Caret wraps the selection with a virtual column: a display position
// past the last real character of the head's line. Virtual space is never
// backed by buffer content, so anything counting deletable characters must
// leave virtual space first.
package cursor
