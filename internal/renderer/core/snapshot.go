package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Line is one row of the text area.
type Line struct {
	// Number is the 1-based buffer row shown, or 0 for a filler row past
	// the end of the document.
	Number int

	// Cells holds the visible part of the row, already scrolled
	// horizontally and clipped to the text area width.
	Cells []Cell
}

// IsFiller returns true if the line is past the end of the document.
func (l Line) IsFiller() bool {
	return l.Number == 0
}

// Text returns the characters of the line.
func (l Line) Text() string {
	var sb strings.Builder
	for _, c := range l.Cells {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Snapshot is everything needed to draw one frame. It is a plain value; the
// backend never reaches back into editor state.
type Snapshot struct {
	Width  int
	Height int

	// GutterWidth is 0 when line numbers are off.
	GutterWidth int

	// Lines holds exactly Height-2 rows: the text area.
	Lines []Line

	// CursorX and CursorY are screen coordinates.
	CursorX int
	CursorY int

	// CursorBar selects a bar cursor instead of a block.
	CursorBar bool

	// CursorColor is the cursor color. The default color leaves the
	// terminal's own cursor color alone.
	CursorColor Color

	Status  string
	Message string

	TextStyle    Style
	GutterStyle  Style
	StatusStyle  Style
	MessageStyle Style
	FillerStyle  Style
}

// FitString truncates s to at most width terminal columns without
// splitting a grapheme cluster.
func FitString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
