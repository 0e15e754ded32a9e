// Package viewport tracks which part of the document is on screen.
package viewport

// Viewport represents the visible portion of the buffer: the text area
// between the gutter and the right edge, above the status and message lines.
type Viewport struct {
	// Position in buffer (first visible row and render column)
	rowOffset int
	colOffset int

	// Size of the text area in screen cells
	width  int
	height int
}

// NewViewport creates a viewport with the given text area size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(width, 1),
		height: max(height, 1),
	}
}

// Width returns the text area width.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the number of visible rows.
func (v *Viewport) Height() int {
	return v.height
}

// RowOffset returns the first visible row.
func (v *Viewport) RowOffset() int {
	return v.rowOffset
}

// ColOffset returns the first visible render column.
func (v *Viewport) ColOffset() int {
	return v.colOffset
}

// Resize updates the text area size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Scroll moves the offsets the least amount needed to show the cursor at
// row and render column renderCol.
func (v *Viewport) Scroll(row, renderCol int) {
	if row < v.rowOffset {
		v.rowOffset = row
	}
	if row > v.rowOffset+v.height-1 {
		v.rowOffset = row - v.height + 1
	}
	if renderCol < v.colOffset {
		v.colOffset = renderCol
	}
	if renderCol > v.colOffset+v.width-1 {
		v.colOffset = renderCol - v.width + 1
	}
	v.rowOffset = max(v.rowOffset, 0)
	v.colOffset = max(v.colOffset, 0)
}

// VisibleRowRange returns the half-open range of buffer rows on screen,
// limited to lineCount.
func (v *Viewport) VisibleRowRange(lineCount int) (start, end int) {
	start = min(v.rowOffset, lineCount)
	end = min(v.rowOffset+v.height, lineCount)
	return start, end
}

// IsRowVisible returns true if row is inside the viewport.
func (v *Viewport) IsRowVisible(row int) bool {
	return row >= v.rowOffset && row < v.rowOffset+v.height
}

// BufferToScreen converts a row and render column to text area
// coordinates. Returns (-1, -1) if the position is not visible.
func (v *Viewport) BufferToScreen(row, renderCol int) (screenRow, screenCol int) {
	if !v.IsRowVisible(row) {
		return -1, -1
	}
	if renderCol < v.colOffset || renderCol >= v.colOffset+v.width {
		return -1, -1
	}
	return row - v.rowOffset, renderCol - v.colOffset
}

// ScreenToBuffer converts text area coordinates to a row and render column.
func (v *Viewport) ScreenToBuffer(screenRow, screenCol int) (row, renderCol int) {
	return v.rowOffset + max(screenRow, 0), v.colOffset + max(screenCol, 0)
}
