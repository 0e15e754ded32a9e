package mode

import "github.com/dshills/meow/internal/engine/search"

// Kind identifies one of the editor modes.
type Kind uint8

const (
	// Normal is the initial mode: keys are commands.
	Normal Kind = iota

	// Insert types text into the document.
	Insert

	// Visual extends a character-wise selection.
	Visual

	// Command edits an ex-style command line.
	Command

	// Search edits a search query.
	Search
)

// Kinds lists every mode kind.
var Kinds = []Kind{Normal, Insert, Visual, Command, Search}

// String returns the lower-case mode name.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Insert:
		return "insert"
	case Visual:
		return "visual"
	case Command:
		return "command"
	case Search:
		return "search"
	default:
		return "unknown"
	}
}

// DisplayName returns the upper-case name shown on the status line.
func (k Kind) DisplayName() string {
	switch k {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	case Search:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}

// Mode is the current mode together with the data only that mode carries.
// Command mode keeps the pending command text in Input; Search mode keeps
// the query in Input and its direction in Direction.
type Mode struct {
	Kind      Kind
	Input     []rune
	Direction search.Direction
}

// NewNormal returns Normal mode.
func NewNormal() Mode { return Mode{Kind: Normal} }

// NewInsert returns Insert mode.
func NewInsert() Mode { return Mode{Kind: Insert} }

// NewVisual returns Visual mode.
func NewVisual() Mode { return Mode{Kind: Visual} }

// NewCommand returns Command mode with empty input.
func NewCommand() Mode { return Mode{Kind: Command} }

// NewSearch returns Search mode with an empty query in direction dir.
func NewSearch(dir search.Direction) Mode {
	return Mode{Kind: Search, Direction: dir}
}

// Enter returns the mode for kind k. dir is used only for Search.
func Enter(k Kind, dir search.Direction) Mode {
	if k == Search {
		return NewSearch(dir)
	}
	return Mode{Kind: k}
}

// Text returns the pending input as a string.
func (m Mode) Text() string {
	return string(m.Input)
}

// Prompt returns the prefix shown before the pending input on the message
// line, or "" for modes without input.
func (m Mode) Prompt() string {
	switch m.Kind {
	case Command:
		return ":"
	case Search:
		return m.Direction.Prompt()
	default:
		return ""
	}
}

// HasInput reports whether the mode edits a line of input.
func (m Mode) HasInput() bool {
	return m.Kind == Command || m.Kind == Search
}

// Append returns a copy of m with r appended to its input.
func (m Mode) Append(r rune) Mode {
	input := make([]rune, len(m.Input), len(m.Input)+1)
	copy(input, m.Input)
	m.Input = append(input, r)
	return m
}

// Backspace returns a copy of m with the last input rune removed. ok is
// false when the input was already empty.
func (m Mode) Backspace() (Mode, bool) {
	if len(m.Input) == 0 {
		return m, false
	}
	m.Input = append([]rune(nil), m.Input[:len(m.Input)-1]...)
	return m, true
}

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m.Kind {
	case Insert, Command, Search:
		return CursorBar
	default:
		return CursorBlock
	}
}

// String returns the mode's display name.
func (m Mode) String() string {
	return m.Kind.DisplayName()
}
