package app

// yankSelection copies the selection to the clipboard. It returns false
// when there is no selection.
func (e *Editor) yankSelection() bool {
	if e.selection == nil {
		return false
	}
	start, end := e.selection.Bounds(e.buf)
	if err := e.clipboard.Set(e.buf.Text(start, end)); err != nil {
		e.logger.Warn("yank: %v", err)
		e.setError("Clipboard error: %v", err)
	}
	return true
}

// deleteSelection removes the selected text and leaves the cursor where it
// started.
func (e *Editor) deleteSelection() {
	if e.selection == nil {
		return
	}
	start, end := e.selection.Bounds(e.buf)
	e.buf.DeleteRange(start, end)
	e.cursor = e.buf.Clamp(start)
}

// paste inserts the clipboard text at the cursor and moves the cursor past
// it.
func (e *Editor) paste() {
	text, ok := e.clipboard.Get()
	if !ok || text == "" {
		e.setMessage("Nothing to paste")
		return
	}
	e.cursor = e.buf.InsertText(e.cursor, text)
}
