// Package backend connects the editor to a terminal.
//
// A Backend turns terminal input into Events and draws core.Snapshot
// frames. It never reads editor state: everything it draws arrives in the
// snapshot, and everything it reports leaves as an Event.
package backend

import (
	"github.com/dshills/meow/internal/input/key"
	"github.com/dshills/meow/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventInterrupt carries a value posted from another goroutine.
	EventInterrupt
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key key.Event

	// Mouse event fields, in screen cells
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Interrupt payload
	Data any
}

// KeyEvent wraps a key press.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// InterruptEvent wraps a value for PostEvent.
func InterruptEvent(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// Backend defines the interface for terminal backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// PollEvent waits for and returns the next terminal event.
	// This is the only blocking call in the editor.
	PollEvent() Event

	// PostEvent queues a synthetic event. It is safe to call from any
	// goroutine.
	PostEvent(event Event) error

	// Draw replaces the screen content with the snapshot.
	Draw(s core.Snapshot)

	// EnableMouse enables mouse event reporting.
	EnableMouse()

	// DisableMouse disables mouse event reporting.
	DisableMouse()
}
