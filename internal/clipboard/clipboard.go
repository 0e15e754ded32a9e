// Package clipboard provides the editor's yank register.
//
// The System clipboard goes through the operating system (xclip, xsel,
// wl-clipboard, pbcopy or the Windows API, via atotto/clipboard) and keeps
// a local copy so yank and paste keep working when no system clipboard is
// reachable. Memory is a purely local register used in tests and when the
// platform has no clipboard at all.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the system clipboard could not be reached.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard stores text between yank and paste.
type Clipboard interface {
	// Get returns the clipboard text and whether there is any.
	Get() (string, bool)

	// Set replaces the clipboard text. A non-nil error means the text was
	// kept locally but could not reach the system clipboard.
	Set(text string) error
}

// Memory is an in-process clipboard.
type Memory struct {
	text string
	ok   bool
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored text.
func (m *Memory) Get() (string, bool) {
	return m.text, m.ok
}

// Set stores text.
func (m *Memory) Set(text string) error {
	m.text = text
	m.ok = true
	return nil
}

// System is the operating system clipboard with a local fallback.
type System struct {
	read  func() (string, error)
	write func(string) error
	local Memory
}

// New returns the system clipboard, or an in-process one when the platform
// has no clipboard support.
func New() Clipboard {
	if clipboard.Unsupported {
		return NewMemory()
	}
	return &System{read: clipboard.ReadAll, write: clipboard.WriteAll}
}

// Get reads the system clipboard, falling back to the last text set here.
func (s *System) Get() (string, bool) {
	if text, err := s.read(); err == nil && text != "" {
		return text, true
	}
	return s.local.Get()
}

// Set stores text locally and copies it to the system clipboard.
func (s *System) Set(text string) error {
	_ = s.local.Set(text)
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
