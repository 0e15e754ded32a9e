package mode

import "github.com/dshills/meow/internal/input/key"

// Binding is a dispatch table key. Rune is set only for key.KeyRune.
type Binding struct {
	Kind Kind
	Key  key.Key
	Rune rune
}

// String returns a readable form like "normal:i" or "insert:<Esc>".
func (b Binding) String() string {
	if b.Key == key.KeyRune {
		return b.Kind.String() + ":" + key.NewRuneEvent(b.Rune, key.ModNone).String()
	}
	return b.Kind.String() + ":" + key.NewSpecialEvent(b.Key, key.ModNone).String()
}

func special(k Kind, kk key.Key) Binding { return Binding{Kind: k, Key: kk} }
func char(k Kind, r rune) Binding      { return Binding{Kind: k, Key: key.KeyRune, Rune: r} }

// table is the static (mode, key) dispatch table.
var table = buildTable()

func buildTable() map[Binding]Action {
	t := make(map[Binding]Action)

	// Movement shared by Normal, Insert and Visual. Letters move only where
	// they are not text.
	for _, k := range []Kind{Normal, Insert, Visual} {
		t[special(k, key.KeyLeft)] = ActionMoveLeft
		t[special(k, key.KeyRight)] = ActionMoveRight
		t[special(k, key.KeyUp)] = ActionMoveUp
		t[special(k, key.KeyDown)] = ActionMoveDown
		t[special(k, key.KeyHome)] = ActionMoveLineStart
		t[special(k, key.KeyEnd)] = ActionMoveLineEnd
		t[special(k, key.KeyPageUp)] = ActionPageUp
		t[special(k, key.KeyPageDown)] = ActionPageDown
		t[special(k, key.KeyEscape)] = ActionExit
	}
	for _, k := range []Kind{Normal, Visual} {
		t[char(k, 'h')] = ActionMoveLeft
		t[char(k, 'l')] = ActionMoveRight
		t[char(k, 'k')] = ActionMoveUp
		t[char(k, 'j')] = ActionMoveDown
		t[char(k, '0')] = ActionMoveLineStart
		t[char(k, '$')] = ActionMoveLineEnd
	}

	// Normal
	t[char(Normal, 'i')] = ActionEnterInsert
	t[char(Normal, 'a')] = ActionEnterAppend
	t[char(Normal, 'o')] = ActionOpenBelow
	t[char(Normal, 'v')] = ActionEnterVisual
	t[char(Normal, ':')] = ActionEnterCommand
	t[char(Normal, '/')] = ActionEnterSearchForward
	t[char(Normal, '?')] = ActionEnterSearchBackward
	t[char(Normal, 'p')] = ActionPaste
	t[char(Normal, 'n')] = ActionSearchNext
	t[char(Normal, 'N')] = ActionSearchPrevious

	// Insert
	t[special(Insert, key.KeyEnter)] = ActionInsertNewline
	t[special(Insert, key.KeyTab)] = ActionInsertTab
	t[special(Insert, key.KeyBackspace)] = ActionDeleteBackward
	t[special(Insert, key.KeyDelete)] = ActionDeleteForward

	// Visual
	t[char(Visual, 'y')] = ActionYank
	t[char(Visual, 'd')] = ActionDeleteSelection
	t[char(Visual, 'x')] = ActionCut

	// Command and Search
	for _, k := range []Kind{Command, Search} {
		t[special(k, key.KeyEnter)] = ActionSubmit
		t[special(k, key.KeyBackspace)] = ActionInputBackspace
		t[special(k, key.KeyEscape)] = ActionExit
	}

	return t
}

// Bindings returns a copy of the dispatch table.
func Bindings() map[Binding]Action {
	out := make(map[Binding]Action, len(table))
	for b, a := range table {
		out[b] = a
	}
	return out
}

// BindingFor returns the table key for event in mode kind. Ctrl and Alt
// chords have no binding; Shift is part of the rune.
func BindingFor(kind Kind, event key.Event) (Binding, bool) {
	if event.IsModified() {
		return Binding{}, false
	}
	if event.Key == key.KeyRune {
		return char(kind, event.Rune), true
	}
	return special(kind, event.Key), true
}

// Lookup resolves event in mode kind, applying the per-mode fallback for
// keys that have no table entry.
func Lookup(kind Kind, event key.Event) Action {
	if b, ok := BindingFor(kind, event); ok {
		if a, ok := table[b]; ok {
			return a
		}
	}
	return fallback(kind, event)
}

// fallback handles keys with no binding.
func fallback(kind Kind, event key.Event) Action {
	if !event.IsChar() {
		return ActionNone
	}
	switch kind {
	case Insert:
		return ActionInsertRune
	case Command, Search:
		return ActionAppendInput
	default:
		return ActionNone
	}
}
