package buffer

import "errors"

// ErrTxFinished is returned when a finished transaction is reused.
var ErrTxFinished = errors.New("edit transaction already finished")

// Tx is a scoped edit transaction. Edits queued on the transaction have no
// effect until Commit, which applies them atomically: either all edits are
// applied and the buffer moves to a single new revision, or none are.
//
// A Tx is not safe for concurrent use; it is meant to be built and
// committed on one goroutine.
type Tx struct {
	b        *Buffer
	edits    []Edit
	finished bool
}

// BeginEdit starts a new edit transaction on the buffer.
func (b *Buffer) BeginEdit() *Tx {
	return &Tx{b: b}
}

// Delete queues deletion of the given range.
func (tx *Tx) Delete(start, end ByteOffset) *Tx {
	tx.edits = append(tx.edits, NewDelete(start, end))
	return tx
}

// Insert queues insertion of text at the given offset.
func (tx *Tx) Insert(offset ByteOffset, text string) *Tx {
	tx.edits = append(tx.edits, NewInsert(offset, text))
	return tx
}

// Replace queues replacement of the given range with new text.
func (tx *Tx) Replace(start, end ByteOffset, text string) *Tx {
	tx.edits = append(tx.edits, NewEdit(NewRange(start, end), text))
	return tx
}

// Len returns the number of queued edits.
func (tx *Tx) Len() int {
	return len(tx.edits)
}

// Commit applies the queued edits atomically. Edits are applied in reverse
// offset order so earlier edits do not shift later ones. On failure
// (invalid range, overlapping edits, read-only buffer) the buffer is left
// untouched.
func (tx *Tx) Commit() error {
	if tx.finished {
		return ErrTxFinished
	}
	tx.finished = true

	if len(tx.edits) == 0 {
		return nil
	}

	edits := make([]Edit, len(tx.edits))
	copy(edits, tx.edits)
	sortEditsReverse(edits)

	tx.b.mu.Lock()
	defer tx.b.mu.Unlock()
	return tx.b.applyEditsLocked(edits)
}

// Discard drops the queued edits without applying them.
func (tx *Tx) Discard() {
	tx.finished = true
	tx.edits = nil
}

// sortEditsReverse orders edits by descending start offset (insertion
// sort; transactions hold a handful of edits at most).
func sortEditsReverse(edits []Edit) {
	for i := 1; i < len(edits); i++ {
		for j := i; j > 0 && edits[j].Range.Start > edits[j-1].Range.Start; j-- {
			edits[j], edits[j-1] = edits[j-1], edits[j]
		}
	}
}
