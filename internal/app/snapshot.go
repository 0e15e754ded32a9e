package app

import (
	"github.com/dshills/meow/internal/engine/buffer"
	"github.com/dshills/meow/internal/input/mode"
	"github.com/dshills/meow/internal/renderer/core"
	"github.com/dshills/meow/internal/renderer/highlight"
	"github.com/dshills/meow/internal/renderer/statusline"
	"github.com/dshills/meow/internal/renderer/viewport"
)

// Snapshot brings highlighting up to date and returns the frame to draw.
func (e *Editor) Snapshot() core.Snapshot {
	e.highlighter.Refresh(e.buf)

	text := e.theme.Text()
	s := core.Snapshot{
		Width:        e.width,
		Height:       e.height,
		GutterWidth:  e.gutterWidth(),
		Lines:        make([]core.Line, e.textRows()),
		CursorBar:    e.mode.CursorStyle() == mode.CursorBar,
		CursorColor:  e.theme.Cursor,
		Status:       e.statusText(),
		Message:      e.message,
		TextStyle:    text,
		GutterStyle:  e.theme.StyleFor(buffer.CategoryComment),
		StatusStyle:  text.Reverse(),
		MessageStyle: statusline.MessageStyle(e.msgType, text),
		FillerStyle:  e.theme.StyleFor(buffer.CategoryComment),
	}

	first := e.viewport.RowOffset()
	for y := range s.Lines {
		row := first + y
		if row >= e.buf.LineCount() {
			continue
		}
		s.Lines[y] = core.Line{Number: row + 1, Cells: e.rowCells(row)}
	}

	if e.mode.HasInput() {
		s.Message = e.mode.Prompt() + e.mode.Text()
		s.CursorX = min(core.StringWidth(s.Message), max(e.width-1, 0))
		s.CursorY = e.height - 1
		return s
	}

	rc := viewport.RenderCol(e.buf.Row(e.cursor.Row).Runes(), e.cursor.Col, e.buf.TabSize())
	y, x := e.viewport.BufferToScreen(e.cursor.Row, rc)
	s.CursorX = s.GutterWidth + max(x, 0)
	s.CursorY = max(y, 0)
	return s
}

// rowCells renders the horizontally visible part of a row. Tabs expand to
// spaces. A wide character cut by either edge of the text area shows as
// blanks in its visible columns so later cells stay aligned.
func (e *Editor) rowCells(row int) []core.Cell {
	r := e.buf.Row(row)
	runes := r.Runes()
	tab := e.buf.TabSize()
	left := e.viewport.ColOffset()
	right := left + e.viewport.Width()

	var cells []core.Cell
	rc := 0
	for col, c := range runes {
		adv := buffer.TabAdvance(c, rc, tab)
		if rc >= right {
			break
		}

		style := e.theme.StyleFor(r.CategoryAt(col))
		if e.selection != nil && e.selection.Contains(buffer.Pos(row, col)) {
			style = e.theme.SelectionStyle(style)
		}

		if c != '\t' && rc >= left && rc+adv <= right {
			cells = append(cells, core.NewStyledCell(c, style))
		} else {
			for i := range adv {
				if x := rc + i; x >= left && x < right {
					cells = append(cells, core.NewStyledCell(' ', style))
				}
			}
		}
		rc += adv
	}
	return cells
}

func (e *Editor) statusText() string {
	state := statusline.State{
		Mode:     e.mode.Kind.DisplayName(),
		FileName: e.fileName,
		Modified: e.buf.IsModified(),
		Lines:    e.buf.LineCount(),
	}
	if ft := highlight.FileType(e.fileName); ft != highlight.PlainText.FileType {
		state.FileType = ft
	}
	return state.Text()
}
