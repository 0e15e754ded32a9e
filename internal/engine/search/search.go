// Package search implements wrap-around substring search over a buffer.
//
// A search scans row by row from a starting position in one direction. On
// reaching either end of the document it wraps to the other end and keeps
// going until it finds a match or has visited every row, finishing with the
// part of the starting row on the far side of the start. A match sitting
// exactly at the start is therefore found only when it is the only one.
package search

import (
	"errors"

	"github.com/dshills/meow/internal/engine/buffer"
)

// Errors returned by search operations.
var (
	// ErrNotFound indicates the query does not occur in the document.
	ErrNotFound = errors.New("pattern not found")

	// ErrEmptyQuery indicates a search for the empty string.
	ErrEmptyQuery = errors.New("empty search query")

	// ErrNoPreviousSearch indicates Next or Previous before any search.
	ErrNoPreviousSearch = errors.New("no previous search")
)

// Direction is the scan direction of a search.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}
	return Backward
}

// Prompt returns the character that starts a search in this direction.
func (d Direction) Prompt() string {
	if d == Backward {
		return "?"
	}
	return "/"
}

// Result is a successful search.
type Result struct {
	Pos buffer.Position

	// Wrapped is true when the match was found after crossing the end of
	// the document (or the start, searching backward).
	Wrapped bool
}

// Find searches buf for query starting at from.
func Find(buf *buffer.Buffer, query string, from buffer.Position, dir Direction) (Result, error) {
	if query == "" {
		return Result{}, ErrEmptyQuery
	}
	needle := []rune(query)
	from = buf.Clamp(from)
	if dir == Backward {
		return findBackward(buf, needle, from)
	}
	return findForward(buf, needle, from)
}

func findForward(buf *buffer.Buffer, needle []rune, from buffer.Position) (Result, error) {
	n := buf.LineCount()

	if col := indexFrom(buf.Row(from.Row).Runes(), needle, from.Col+1); col >= 0 {
		return Result{Pos: buffer.Pos(from.Row, col)}, nil
	}
	for i := 1; i < n; i++ {
		row := (from.Row + i) % n
		if col := indexFrom(buf.Row(row).Runes(), needle, 0); col >= 0 {
			return Result{Pos: buffer.Pos(row, col), Wrapped: row < from.Row}, nil
		}
	}
	if col := indexFrom(buf.Row(from.Row).Runes(), needle, 0); col >= 0 && col <= from.Col {
		return Result{Pos: buffer.Pos(from.Row, col), Wrapped: true}, nil
	}
	return Result{}, ErrNotFound
}

func findBackward(buf *buffer.Buffer, needle []rune, from buffer.Position) (Result, error) {
	n := buf.LineCount()

	if col := lastIndexBefore(buf.Row(from.Row).Runes(), needle, from.Col); col >= 0 {
		return Result{Pos: buffer.Pos(from.Row, col)}, nil
	}
	for i := 1; i < n; i++ {
		row := (from.Row - i + n) % n
		runes := buf.Row(row).Runes()
		if col := lastIndexBefore(runes, needle, len(runes)); col >= 0 {
			return Result{Pos: buffer.Pos(row, col), Wrapped: row > from.Row}, nil
		}
	}
	runes := buf.Row(from.Row).Runes()
	if col := lastIndexBefore(runes, needle, len(runes)); col >= 0 && col >= from.Col {
		return Result{Pos: buffer.Pos(from.Row, col), Wrapped: true}, nil
	}
	return Result{}, ErrNotFound
}

// indexFrom returns the first index >= start where needle occurs, or -1.
func indexFrom(hay, needle []rune, start int) int {
	for i := max(start, 0); i+len(needle) <= len(hay); i++ {
		if hasPrefix(hay[i:], needle) {
			return i
		}
	}
	return -1
}

// lastIndexBefore returns the last index < end where needle occurs, or -1.
func lastIndexBefore(hay, needle []rune, end int) int {
	for i := min(end-1, len(hay)-len(needle)); i >= 0; i-- {
		if hasPrefix(hay[i:], needle) {
			return i
		}
	}
	return -1
}

func hasPrefix(s, prefix []rune) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
