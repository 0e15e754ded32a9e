// Package statusline formats the status and message lines.
package statusline

import (
	"strconv"

	"github.com/dshills/meow/internal/renderer/core"
)

// State is what the status line shows.
type State struct {
	Mode     string // Current mode name (e.g., "NORMAL", "INSERT")
	FileName string // Current filename (empty for an unnamed document)
	Modified bool   // Buffer has unsaved changes
	Lines    int    // Total lines in buffer
	FileType string // Language name, empty when unknown
}

// Text formats the status line:
// " NORMAL | main.rs [+] | Lines: 42 | Rust".
func (s State) Text() string {
	name := s.FileName
	if name == "" {
		name = "[No Name]"
	}
	if s.Modified {
		name += " [+]"
	}

	text := " " + s.Mode + " | " + name + " | Lines: " + strconv.Itoa(s.Lines)
	if s.FileType != "" {
		text += " | " + s.FileType
	}
	return text
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// String returns the message type name.
func (t MessageType) String() string {
	switch t {
	case MessageInfo:
		return "info"
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	default:
		return "none"
	}
}

var (
	warningColor = core.MustHex("#e5c07b")
	errorColor   = core.MustHex("#e06c75")
)

// MessageStyle returns the style of a message of type t drawn over base.
func MessageStyle(t MessageType, base core.Style) core.Style {
	switch t {
	case MessageError:
		return base.WithForeground(errorColor).Bold()
	case MessageWarning:
		return base.WithForeground(warningColor)
	default:
		return base
	}
}
