// Package smartedit provides whitespace-aware editing commands.
//
// Two actions are exposed:
//
//   - smartedit.backspace: hungry backspace. With a selection, deletes it.
//     At column 0, deletes the run of whitespace and line breaks stretching
//     backward from the caret, stopping at the start of the document.
//     Mid-line, deletes the whitespace run immediately before the caret,
//     or a single character when the caret follows content directly.
//
//   - smartedit.cutToEOL: kill to end of line. Kills the leading
//     whitespace run when content follows it on the line, otherwise the
//     rest of the line; at end of line it consumes the line terminator,
//     joining lines. Kills issued within the accrual window append to the
//     clipboard instead of replacing it. Cutting a selection replaces the
//     clipboard and stays outside the accrual window.
//
// Both commands are silent no-ops when no view is active. Every mutation
// is a single atomic delete through an edit transaction; the clipboard is
// written at most once per invocation, only after the delete commits.
package smartedit
