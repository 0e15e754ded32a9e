package buffer

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Category is the lexical class of a highlighted span.
type Category uint8

const (
	CategoryPlain Category = iota
	CategoryKeyword
	CategoryType
	CategoryComment
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryKeyword:
		return "keyword"
	case CategoryType:
		return "type"
	case CategoryComment:
		return "comment"
	default:
		return "plain"
	}
}

// Span is a half-open run [Start, End) of characters sharing one category.
type Span struct {
	Start    int
	End      int
	Category Category
}

// Row is a single line of the document.
//
// A Row never contains a line break. Its rendered width and UTF-8 byte length
// are cached and refreshed on every mutation. Rows are handed out by pointer
// and stay stable for as long as the line exists, so the dirty queue and the
// highlighter can refer to them directly.
type Row struct {
	runes []rune
	width int
	bytes int
	dirty bool
	spans []Span
}

func newRow(runes []rune, tabSize int) *Row {
	r := &Row{}
	r.set(runes, tabSize)
	return r
}

// set replaces the content and refreshes the cached metrics.
func (r *Row) set(runes []rune, tabSize int) {
	r.runes = runes
	r.bytes = 0
	r.width = 0
	for _, c := range runes {
		r.bytes += utf8.RuneLen(c)
		r.width += TabAdvance(c, r.width, tabSize)
	}
}

// Len returns the number of characters in the row.
func (r *Row) Len() int {
	return len(r.runes)
}

// Runes returns the row content. The slice must not be modified.
func (r *Row) Runes() []rune {
	return r.runes
}

// String returns the row content.
func (r *Row) String() string {
	return string(r.runes)
}

// ByteLen returns the UTF-8 length of the row.
func (r *Row) ByteLen() int {
	return r.bytes
}

// RenderWidth returns the number of terminal cells the row occupies.
func (r *Row) RenderWidth() int {
	return r.width
}

// Dirty reports whether the row changed since its spans were last computed.
func (r *Row) Dirty() bool {
	return r.dirty
}

// Spans returns the highlight spans of the row.
func (r *Row) Spans() []Span {
	return r.spans
}

// SetSpans stores freshly computed spans and clears the dirty flag.
func (r *Row) SetSpans(spans []Span) {
	r.spans = spans
	r.dirty = false
}

// CategoryAt returns the category of the character at col.
func (r *Row) CategoryAt(col int) Category {
	for _, s := range r.spans {
		if col >= s.Start && col < s.End {
			return s.Category
		}
	}
	return CategoryPlain
}

// TabAdvance returns the number of cells c occupies when drawn at render
// column col. Tabs advance to the next multiple of tabSize.
func TabAdvance(c rune, col, tabSize int) int {
	if c == '\t' {
		if tabSize < 1 {
			tabSize = 1
		}
		return tabSize - col%tabSize
	}
	w := runewidth.RuneWidth(c)
	if w < 1 {
		// Control and zero-width runes still take one cell.
		w = 1
	}
	return w
}
