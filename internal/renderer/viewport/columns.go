package viewport

import "github.com/dshills/meow/internal/engine/buffer"

// RenderCol returns the screen column at which the character at col starts,
// expanding tabs to tabSize and counting wide characters as two cells.
func RenderCol(runes []rune, col, tabSize int) int {
	rc := 0
	for i := 0; i < col && i < len(runes); i++ {
		rc += buffer.TabAdvance(runes[i], rc, tabSize)
	}
	return rc
}

// CharIndex returns the character whose cells cover renderCol. A column
// past the end of the row maps to the row length.
func CharIndex(runes []rune, renderCol, tabSize int) int {
	rc := 0
	for i, r := range runes {
		rc += buffer.TabAdvance(r, rc, tabSize)
		if rc > renderCol {
			return i
		}
	}
	return len(runes)
}

// GutterWidth returns the width of the line number gutter for a document of
// lineCount rows: the digits of the largest number plus one space.
func GutterWidth(lineCount int) int {
	digits := 1
	for n := lineCount; n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}
