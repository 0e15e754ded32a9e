package app

import (
	"errors"

	"github.com/dshills/meow/internal/engine/cursor"
	"github.com/dshills/meow/internal/input/key"
	"github.com/dshills/meow/internal/input/mode"
	"github.com/dshills/meow/internal/renderer/backend"
	"github.com/dshills/meow/internal/renderer/viewport"
	"github.com/dshills/meow/internal/watcher"
)

// wheelRows is how far one mouse wheel step moves the cursor.
const wheelRows = 3

// HandleEvent processes one backend event.
// Returns ErrQuit if the editor should exit.
func (e *Editor) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return e.HandleKey(ev.Key)
	case backend.EventMouse:
		e.HandleMouse(ev.MouseX, ev.MouseY, ev.MouseButton)
	case backend.EventResize:
		e.HandleResize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		return e.handleInterrupt(ev.Data)
	}
	return nil
}

// HandleKey processes a key press in the current mode.
// Returns ErrQuit after a quit command, or the error of a failed write.
func (e *Editor) HandleKey(ev key.Event) error {
	e.clearMessage()

	prev := e.mode
	action := mode.Lookup(prev.Kind, ev)
	e.logger.Debug("%s %s -> %s", prev.Kind, ev, action)

	err := e.perform(prev, action, ev)
	if e.quit {
		return ErrQuit
	}
	e.setMode(mode.Apply(prev, action, ev))
	e.layout()
	return err
}

// perform runs the side effect of action. The mode has not changed yet.
func (e *Editor) perform(m mode.Mode, action mode.Action, ev key.Event) error {
	if action.IsMotion() {
		e.moveTo(e.motion(action)(e.buf, e.cursor))
		return nil
	}

	switch action {
	case mode.ActionEnterAppend:
		e.cursor = cursor.Right(e.buf, e.cursor)
	case mode.ActionOpenBelow:
		e.cursor = e.buf.Insert(cursor.LineEnd(e.buf, e.cursor), '\n')
	case mode.ActionPaste:
		e.paste()
	case mode.ActionSearchNext:
		e.repeatSearch(false)
	case mode.ActionSearchPrevious:
		e.repeatSearch(true)

	case mode.ActionInsertRune:
		e.cursor = e.buf.Insert(e.cursor, ev.Rune)
	case mode.ActionInsertNewline:
		e.cursor = e.buf.Insert(e.cursor, '\n')
	case mode.ActionInsertTab:
		e.cursor = e.buf.Insert(e.cursor, '\t')
	case mode.ActionDeleteBackward:
		e.cursor = e.buf.Delete(e.cursor)
	case mode.ActionDeleteForward:
		e.buf.DeleteForward(e.cursor)

	case mode.ActionYank:
		e.yankSelection()
	case mode.ActionDeleteSelection:
		e.deleteSelection()
	case mode.ActionCut:
		if e.yankSelection() {
			e.deleteSelection()
		}

	case mode.ActionSubmit:
		if m.Kind == mode.Command {
			return e.execute(m.Text())
		}
		e.submitSearch(m.Text(), m.Direction)
	}
	return nil
}

func (e *Editor) motion(action mode.Action) cursor.Motion {
	switch action {
	case mode.ActionMoveLeft:
		return cursor.Left
	case mode.ActionMoveRight:
		return cursor.Right
	case mode.ActionMoveUp:
		return cursor.Up
	case mode.ActionMoveDown:
		return cursor.Down
	case mode.ActionMoveLineStart:
		return cursor.LineStart
	case mode.ActionMoveLineEnd:
		return cursor.LineEnd
	case mode.ActionPageUp:
		return cursor.PageUp(e.viewport.Height())
	default:
		return cursor.PageDown(e.viewport.Height())
	}
}

// HandleMouse processes a mouse event at screen cell (x, y). A left click
// in the text area moves the cursor to the character under it; the wheel
// moves the cursor by a few rows. Mouse input is ignored while a command or
// query is being typed, and entirely when mouse support is off.
func (e *Editor) HandleMouse(x, y int, button backend.MouseButton) {
	if !e.settings.Editor.MouseSupport || e.mode.HasInput() {
		return
	}

	switch button {
	case backend.MouseLeft:
		gutter := e.gutterWidth()
		if y < 0 || y >= e.textRows() || x < gutter {
			return
		}
		row, rc := e.viewport.ScreenToBuffer(y, x-gutter)
		row = min(row, e.buf.LineCount()-1)
		col := viewport.CharIndex(e.buf.Row(row).Runes(), rc, e.buf.TabSize())
		e.moveTo(cursor.Position{Row: row, Col: col})
	case backend.MouseWheelUp:
		e.moveTo(cursor.PageUp(wheelRows)(e.buf, e.cursor))
	case backend.MouseWheelDown:
		e.moveTo(cursor.PageDown(wheelRows)(e.buf, e.cursor))
	default:
		return
	}
	e.layout()
}

// HandleResize updates the terminal size.
func (e *Editor) HandleResize(width, height int) {
	e.width = max(width, 1)
	e.height = max(height, 1)
	e.layout()
}

func (e *Editor) handleInterrupt(data any) error {
	switch v := data.(type) {
	case watcher.Event:
		e.checkDisk(v)
	case error:
		if errors.Is(v, ErrQuit) {
			e.quit = true
			return ErrQuit
		}
		e.logger.Warn("%v", v)
	}
	return nil
}
