package cursor

import "github.com/dshills/meow/internal/engine/buffer"

// Motion moves a position within a buffer. Every motion returns a position
// clamped to the document, with the column inside [0, LineLen(row)].
type Motion func(buf *buffer.Buffer, p Position) Position

// Left moves one character left, stopping at column 0.
func Left(buf *buffer.Buffer, p Position) Position {
	p = buf.Clamp(p)
	if p.Col > 0 {
		p.Col--
	}
	return p
}

// Right moves one character right, stopping after the last character.
func Right(buf *buffer.Buffer, p Position) Position {
	p = buf.Clamp(p)
	if p.Col < buf.LineLen(p.Row) {
		p.Col++
	}
	return p
}

// Up moves one row up, clamping the column to the new row.
func Up(buf *buffer.Buffer, p Position) Position {
	return buf.Clamp(Position{Row: p.Row - 1, Col: p.Col})
}

// Down moves one row down, clamping the column to the new row.
func Down(buf *buffer.Buffer, p Position) Position {
	return buf.Clamp(Position{Row: p.Row + 1, Col: p.Col})
}

// LineStart moves to column 0.
func LineStart(buf *buffer.Buffer, p Position) Position {
	return buf.Clamp(Position{Row: p.Row})
}

// LineEnd moves after the last character of the row.
func LineEnd(buf *buffer.Buffer, p Position) Position {
	p = buf.Clamp(p)
	p.Col = buf.LineLen(p.Row)
	return p
}

// PageUp returns a motion moving n rows up.
func PageUp(n int) Motion {
	return func(buf *buffer.Buffer, p Position) Position {
		return buf.Clamp(Position{Row: p.Row - max(n, 1), Col: p.Col})
	}
}

// PageDown returns a motion moving n rows down.
func PageDown(n int) Motion {
	return func(buf *buffer.Buffer, p Position) Position {
		return buf.Clamp(Position{Row: p.Row + max(n, 1), Col: p.Col})
	}
}
