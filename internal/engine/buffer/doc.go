// Package buffer holds the document being edited as an ordered sequence of
// rows.
//
// Rows live in the leaves of a balanced B+ tree whose internal nodes cache
// the row and byte counts of each child. Looking up, inserting or removing a
// row costs O(log n) and the total document size is always available from
// the root, so editing the middle of a large file never rewrites the rest.
//
// Basic usage:
//
//	buf := buffer.FromString("fn main() {\n}")
//
//	// Insert a character; the returned position follows it
//	pos := buf.Insert(buffer.Pos(0, 3), 'x')
//
//	// Delete the character before a position (backspace)
//	buf.Delete(pos)
//
//	// Save exactly what was loaded
//	data := buf.Bytes()
//
// Position Types:
//
// Position addresses characters by row and rune column. A column equal to
// the row length is the slot after the last character.
//
// Dirty Rows:
//
// Every mutated or new row is flagged dirty and queued once. The highlighter
// drains the queue with DrainDirty once per frame and clears each flag when
// it stores fresh spans with Row.SetSpans.
//
// Contract:
//
// Methods taking positions panic with an error wrapping
// ErrPositionOutOfRange when given a position outside the document. Callers
// clamp with Clamp first.
package buffer
