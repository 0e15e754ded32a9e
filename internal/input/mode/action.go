package mode

import (
	"github.com/dshills/meow/internal/engine/search"
	"github.com/dshills/meow/internal/input/key"
)

// Action is what a key does in a given mode.
type Action uint8

const (
	// ActionNone ignores the key.
	ActionNone Action = iota

	// Cursor movement, valid in Normal, Insert and Visual.
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMoveLineStart
	ActionMoveLineEnd
	ActionPageUp
	ActionPageDown

	// Normal mode.
	ActionEnterInsert
	ActionEnterAppend
	ActionOpenBelow
	ActionEnterVisual
	ActionEnterCommand
	ActionEnterSearchForward
	ActionEnterSearchBackward
	ActionPaste
	ActionSearchNext
	ActionSearchPrevious

	// Insert mode.
	ActionInsertRune
	ActionInsertNewline
	ActionInsertTab
	ActionDeleteBackward
	ActionDeleteForward

	// Visual mode.
	ActionYank
	ActionDeleteSelection
	ActionCut

	// Command and Search mode.
	ActionAppendInput
	ActionInputBackspace
	ActionSubmit

	// ActionExit leaves the current mode for Normal, discarding pending input.
	ActionExit
)

var actionNames = map[Action]string{
	ActionNone:                "none",
	ActionMoveLeft:            "move.left",
	ActionMoveRight:           "move.right",
	ActionMoveUp:              "move.up",
	ActionMoveDown:            "move.down",
	ActionMoveLineStart:       "move.line_start",
	ActionMoveLineEnd:         "move.line_end",
	ActionPageUp:              "move.page_up",
	ActionPageDown:            "move.page_down",
	ActionEnterInsert:         "mode.insert",
	ActionEnterAppend:         "mode.append",
	ActionOpenBelow:           "mode.open_below",
	ActionEnterVisual:         "mode.visual",
	ActionEnterCommand:        "mode.command",
	ActionEnterSearchForward:  "mode.search_forward",
	ActionEnterSearchBackward: "mode.search_backward",
	ActionPaste:               "edit.paste",
	ActionSearchNext:          "search.next",
	ActionSearchPrevious:      "search.previous",
	ActionInsertRune:          "edit.insert",
	ActionInsertNewline:       "edit.newline",
	ActionInsertTab:           "edit.tab",
	ActionDeleteBackward:      "edit.backspace",
	ActionDeleteForward:       "edit.delete",
	ActionYank:                "selection.yank",
	ActionDeleteSelection:     "selection.delete",
	ActionCut:                 "selection.cut",
	ActionAppendInput:         "input.append",
	ActionInputBackspace:      "input.backspace",
	ActionSubmit:              "input.submit",
	ActionExit:                "mode.exit",
}

// String returns the dotted action name, e.g. "move.left".
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsMotion reports whether the action only moves the cursor.
func (a Action) IsMotion() bool {
	return a >= ActionMoveLeft && a <= ActionPageDown
}

// Target returns the mode the action switches to. ok is false for actions
// that stay in the current mode. Submit always ends in Normal; a command
// that quits stops the editor before the mode matters.
func (a Action) Target() (m Mode, ok bool) {
	switch a {
	case ActionEnterInsert, ActionEnterAppend, ActionOpenBelow:
		return NewInsert(), true
	case ActionEnterVisual:
		return NewVisual(), true
	case ActionEnterCommand:
		return NewCommand(), true
	case ActionEnterSearchForward:
		return NewSearch(search.Forward), true
	case ActionEnterSearchBackward:
		return NewSearch(search.Backward), true
	case ActionYank, ActionDeleteSelection, ActionCut, ActionSubmit, ActionExit:
		return NewNormal(), true
	default:
		return Mode{}, false
	}
}

// Apply returns the mode after a in m. It edits pending input for the
// input actions and switches mode for actions with a Target; other actions
// leave m unchanged. Backspace on empty input cancels back to Normal.
func Apply(m Mode, a Action, event key.Event) Mode {
	switch a {
	case ActionAppendInput:
		return m.Append(event.Rune)
	case ActionInputBackspace:
		if next, ok := m.Backspace(); ok {
			return next
		}
		return NewNormal()
	}
	if target, ok := a.Target(); ok {
		return target
	}
	return m
}
