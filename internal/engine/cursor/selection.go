package cursor

import "github.com/dshills/meow/internal/engine/buffer"

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Selection is an inclusive character range between an anchor and an active
// end. Anchor is where the selection started; Active follows the cursor.
// The two ends are kept in the order the user made them and sorted only
// when the range is consumed.
type Selection struct {
	Anchor Position
	Active Position
}

// NewSelection creates a selection covering the single character at p.
func NewSelection(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// Extend moves the active end to p, keeping the anchor.
func (s Selection) Extend(p Position) Selection {
	s.Active = p
	return s
}

// NormalizedRange returns the ends in document order.
func (s Selection) NormalizedRange() (start, end Position) {
	if s.Active.Before(s.Anchor) {
		return s.Active, s.Anchor
	}
	return s.Anchor, s.Active
}

// IsForward returns true if the active end is at or after the anchor.
func (s Selection) IsForward() bool {
	return !s.Active.Before(s.Anchor)
}

// Contains reports whether p lies inside the inclusive range.
func (s Selection) Contains(p Position) bool {
	start, end := s.NormalizedRange()
	return !p.Before(start) && !p.After(end)
}

// Bounds returns the half-open buffer range [start, end) covered by the
// selection. The inclusive end becomes exclusive by stepping over one
// character; an end sitting after the last character of a non-final row
// stands for that row's line break. The result is clamped to the document.
func (s Selection) Bounds(buf *buffer.Buffer) (start, end Position) {
	start, end = s.NormalizedRange()
	start = buf.Clamp(start)
	end = buf.Clamp(end)
	return start, Next(buf, end)
}

// Next returns the position one character after p, crossing line breaks.
// At the end of the document it returns p.
func Next(buf *buffer.Buffer, p Position) Position {
	if p.Col < buf.LineLen(p.Row) {
		return Position{Row: p.Row, Col: p.Col + 1}
	}
	if p.Row < buf.LineCount()-1 {
		return Position{Row: p.Row + 1}
	}
	return p
}
