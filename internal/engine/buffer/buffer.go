package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors returned by buffer operations.
var (
	// ErrPositionOutOfRange indicates a position outside the document.
	// Buffer methods panic with an error wrapping it; callers clamp first.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrRangeInvalid indicates a range whose start is after its end.
	ErrRangeInvalid = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the display name of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "CRLF"
	}
	return "LF"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// Buffer is the document: an ordered sequence of rows held in a balanced
// tree. It always contains at least one row.
//
// Buffer is not safe for concurrent use; the editor mutates it from a single
// goroutine.
type Buffer struct {
	root       *node
	lineEnding LineEnding
	tabSize    int
	dirty      []*Row
	modified   bool
}

// New creates a buffer holding a single empty row.
func New(opts ...Option) *Buffer {
	b := &Buffer{tabSize: DefaultTabSize}
	for _, opt := range opts {
		opt(b)
	}
	b.reset([][]rune{nil})
	return b
}

// FromString creates a buffer from text. See FromBytes.
func FromString(text string, opts ...Option) *Buffer {
	return FromBytes([]byte(text), opts...)
}

// FromBytes creates a buffer from file content.
//
// The content is split on "\n". If every "\n" is preceded by "\r" the buffer
// adopts CRLF and strips the "\r"; otherwise it uses LF and any "\r" stays in
// the row content. Either way Bytes reproduces data exactly. A trailing line
// break yields a final empty row.
func FromBytes(data []byte, opts ...Option) *Buffer {
	b := &Buffer{tabSize: DefaultTabSize}
	for _, opt := range opts {
		opt(b)
	}

	b.lineEnding = DetectLineEnding(data)
	sep := []byte(b.lineEnding.Sequence())
	parts := bytes.Split(data, sep)
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(string(p))
	}
	b.reset(lines)
	return b
}

// DetectLineEnding returns CRLF when the content has at least one line break
// and every "\n" is preceded by "\r". Anything else is LF.
func DetectLineEnding(data []byte) LineEnding {
	lf := bytes.Count(data, []byte("\n"))
	if lf == 0 {
		return LineEndingLF
	}
	if bytes.Count(data, []byte("\r\n")) == lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}

func (b *Buffer) reset(lines [][]rune) {
	rows := make([]*Row, len(lines))
	for i, l := range lines {
		rows[i] = newRow(l, b.tabSize)
	}
	b.root = buildTree(rows)
	b.dirty = b.dirty[:0]
	for _, r := range rows {
		b.markDirty(r)
	}
}

// LineEnding returns the line ending used when serializing.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// TabSize returns the tab size used for render widths.
func (b *Buffer) TabSize() int {
	return b.tabSize
}

// LineCount returns the number of rows.
func (b *Buffer) LineCount() int {
	return b.root.summary.Rows
}

// LineLen returns the number of characters in row.
func (b *Buffer) LineLen(row int) int {
	return b.Row(row).Len()
}

// Row returns row i. The pointer stays valid until the row is removed.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= b.LineCount() {
		panic(fmt.Errorf("%w: row %d of %d", ErrPositionOutOfRange, i, b.LineCount()))
	}
	return b.root.get(i)
}

// Line returns the text of row i.
func (b *Buffer) Line(i int) string {
	return b.Row(i).String()
}

// TotalByteSize returns the size of the serialized document in bytes.
func (b *Buffer) TotalByteSize() int {
	return b.root.summary.Bytes + (b.LineCount()-1)*len(b.lineEnding.Sequence())
}

// IsModified reports whether the buffer changed since it was loaded or
// last marked saved.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// MarkSaved clears the modified flag.
func (b *Buffer) MarkSaved() {
	b.modified = false
}

// Clamp returns the nearest valid position to p.
func (b *Buffer) Clamp(p Position) Position {
	p.Row = max(0, min(p.Row, b.LineCount()-1))
	p.Col = max(0, min(p.Col, b.LineLen(p.Row)))
	return p
}

// Valid reports whether p addresses a character slot in the document.
func (b *Buffer) Valid(p Position) bool {
	return p.Row >= 0 && p.Row < b.LineCount() && p.Col >= 0 && p.Col <= b.LineLen(p.Row)
}

// End returns the position after the last character.
func (b *Buffer) End() Position {
	last := b.LineCount() - 1
	return Position{Row: last, Col: b.LineLen(last)}
}

func (b *Buffer) mustValid(p Position) {
	if !b.Valid(p) {
		panic(fmt.Errorf("%w: %s", ErrPositionOutOfRange, p))
	}
}

// Insert inserts one character at pos and returns the position after it.
// A '\n' splits the row and the result is column 0 of the new row.
func (b *Buffer) Insert(pos Position, c rune) Position {
	b.mustValid(pos)
	if c == '\n' {
		b.splitRow(pos)
		return Position{Row: pos.Row + 1}
	}

	b.mutate(pos.Row, func(runes []rune) []rune {
		out := make([]rune, 0, len(runes)+1)
		out = append(out, runes[:pos.Col]...)
		out = append(out, c)
		return append(out, runes[pos.Col:]...)
	})
	return Position{Row: pos.Row, Col: pos.Col + 1}
}

// InsertText inserts s at pos and returns the position after it. In a CRLF
// buffer "\r\n" in s counts as one line break.
func (b *Buffer) InsertText(pos Position, s string) Position {
	b.mustValid(pos)
	if s == "" {
		return pos
	}
	if b.lineEnding == LineEndingCRLF {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}

	lines := strings.Split(s, "\n")
	row := b.Row(pos.Row).Runes()
	head := append([]rune{}, row[:pos.Col]...)
	tail := append([]rune{}, row[pos.Col:]...)

	first := append(head, []rune(lines[0])...)
	if len(lines) == 1 {
		end := Position{Row: pos.Row, Col: len(first)}
		b.mutate(pos.Row, func([]rune) []rune { return append(first, tail...) })
		return end
	}

	b.mutate(pos.Row, func([]rune) []rune { return first })
	for i := 1; i < len(lines)-1; i++ {
		b.insertRow(pos.Row+i, []rune(lines[i]))
	}
	last := []rune(lines[len(lines)-1])
	end := Position{Row: pos.Row + len(lines) - 1, Col: len(last)}
	b.insertRow(end.Row, append(last, tail...))
	return end
}

// Delete removes the character immediately before pos and returns the
// position where it was. At column 0 of a non-first row the row is merged
// into the end of the previous row. Deleting at the start of the document is
// a no-op.
func (b *Buffer) Delete(pos Position) Position {
	b.mustValid(pos)
	if pos.Col == 0 {
		if pos.Row == 0 {
			return pos
		}
		col := b.LineLen(pos.Row - 1)
		b.joinRows(pos.Row - 1)
		return Position{Row: pos.Row - 1, Col: col}
	}

	b.mutate(pos.Row, func(runes []rune) []rune {
		out := make([]rune, 0, len(runes)-1)
		out = append(out, runes[:pos.Col-1]...)
		return append(out, runes[pos.Col:]...)
	})
	return Position{Row: pos.Row, Col: pos.Col - 1}
}

// DeleteForward removes the character at pos. At the end of a non-last row
// the following row is joined onto it. At the end of the document it is a
// no-op.
func (b *Buffer) DeleteForward(pos Position) {
	b.mustValid(pos)
	if pos.Col == b.LineLen(pos.Row) {
		if pos.Row < b.LineCount()-1 {
			b.joinRows(pos.Row)
		}
		return
	}
	b.Delete(Position{Row: pos.Row, Col: pos.Col + 1})
}

// DeleteRange removes every character in [start, end). Line breaks inside
// the range are removed, merging the boundary rows.
func (b *Buffer) DeleteRange(start, end Position) {
	b.mustValid(start)
	b.mustValid(end)
	if end.Before(start) {
		panic(fmt.Errorf("%w: %s > %s", ErrRangeInvalid, start, end))
	}
	if start == end {
		return
	}

	tail := append([]rune{}, b.Row(end.Row).Runes()[end.Col:]...)
	for r := end.Row; r > start.Row; r-- {
		b.removeRow(r)
	}
	b.mutate(start.Row, func(runes []rune) []rune {
		out := make([]rune, 0, start.Col+len(tail))
		out = append(out, runes[:start.Col]...)
		return append(out, tail...)
	})
}

// Text returns the characters in [start, end), joining rows with "\n".
func (b *Buffer) Text(start, end Position) string {
	b.mustValid(start)
	b.mustValid(end)
	if !start.Before(end) {
		return ""
	}

	var sb strings.Builder
	for r := start.Row; r <= end.Row; r++ {
		runes := b.Row(r).Runes()
		from, to := 0, len(runes)
		if r == start.Row {
			from = start.Col
		}
		if r == end.Row {
			to = end.Col
		}
		sb.WriteString(string(runes[from:to]))
		if r != end.Row {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Bytes serializes the document with its line ending.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(b.TotalByteSize())
	_, _ = b.WriteTo(&buf)
	return buf.Bytes()
}

// String returns the document text joined with its line ending.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// WriteTo writes the serialized document to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var (
		total int64
		err   error
		first = true
	)
	sep := b.lineEnding.Sequence()
	b.root.each(func(r *Row) {
		if err != nil {
			return
		}
		var n int
		if !first {
			n, err = io.WriteString(w, sep)
			total += int64(n)
			if err != nil {
				return
			}
		}
		first = false
		n, err = io.WriteString(w, string(r.runes))
		total += int64(n)
	})
	return total, err
}

// DrainDirty returns every row changed since the last drain, each once, and
// empties the queue. Rows keep their dirty flag until new spans are set.
func (b *Buffer) DrainDirty() []*Row {
	q := b.dirty
	b.dirty = nil
	return q
}

// MarkAllDirty queues every row, e.g. after the language changes.
func (b *Buffer) MarkAllDirty() {
	b.root.each(b.markDirty)
}

// PendingDirty returns the number of rows waiting in the dirty queue.
func (b *Buffer) PendingDirty() int {
	return len(b.dirty)
}

func (b *Buffer) markDirty(r *Row) {
	if r.dirty {
		return
	}
	r.dirty = true
	b.dirty = append(b.dirty, r)
}

// mutate replaces the content of row i with fn(content).
func (b *Buffer) mutate(i int, fn func([]rune) []rune) {
	b.root.mutate(i, func(r *Row) {
		r.set(fn(r.runes), b.tabSize)
		b.markDirty(r)
	})
	b.modified = true
}

func (b *Buffer) insertRow(i int, runes []rune) {
	r := newRow(runes, b.tabSize)
	if sibling := b.root.insert(i, r); sibling != nil {
		b.root = newInternal([]*node{b.root, sibling})
	}
	b.markDirty(r)
	b.modified = true
}

func (b *Buffer) removeRow(i int) {
	b.root.remove(i)
	for !b.root.isLeaf() && len(b.root.children) == 1 {
		b.root = b.root.children[0]
	}
	b.modified = true
}

func (b *Buffer) splitRow(pos Position) {
	tail := append([]rune{}, b.Row(pos.Row).Runes()[pos.Col:]...)
	b.mutate(pos.Row, func(runes []rune) []rune { return runes[:pos.Col:pos.Col] })
	b.insertRow(pos.Row+1, tail)
}

// joinRows appends row i+1 to row i and removes row i+1.
func (b *Buffer) joinRows(i int) {
	next := append([]rune{}, b.Row(i+1).Runes()...)
	b.removeRow(i + 1)
	b.mutate(i, func(runes []rune) []rune {
		out := make([]rune, 0, len(runes)+len(next))
		out = append(out, runes...)
		return append(out, next...)
	})
}
