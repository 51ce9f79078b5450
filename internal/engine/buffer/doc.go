// Package buffer provides the text storage layer for the editor.
//
// A Buffer is a mutable, thread-safe text store with a line index that
// recognizes LF, CR, and CRLF terminators without rewriting them. Read
// access goes through immutable Snapshots tagged with a RevisionID; every
// mutation produces a new revision, so a snapshot (and anything derived
// from it, such as cached offsets) can be checked for staleness.
//
// Mutations are expressed as half-open byte Ranges and applied either
// directly (Insert, Delete, Replace) or through a scoped edit transaction:
//
//	tx := buf.BeginEdit()
//	tx.Delete(start, end)
//	if err := tx.Commit(); err != nil {
//	    // nothing was applied
//	}
//
// Uncommitted edits have no effect. Commit fails atomically: either every
// edit in the transaction is applied, or the buffer is untouched.
package buffer
