package app

import (
	"errors"

	"github.com/dshills/meow/internal/renderer/backend"
)

// ErrAlreadyRunning is returned by Run when the editor is already running.
var ErrAlreadyRunning = errors.New("editor already running")

// Run initializes b and processes its events until a quit command or a
// posted ErrQuit. Each event is handled completely and the screen redrawn
// before the next one is read.
func (e *Editor) Run(b backend.Backend) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	if e.settings.Editor.MouseSupport {
		b.EnableMouse()
	} else {
		b.DisableMouse()
	}
	e.HandleResize(b.Size())

	for !e.quit {
		b.Draw(e.Snapshot())
		err := e.HandleEvent(b.PollEvent())
		switch {
		case errors.Is(err, ErrQuit):
			e.logger.Info("quit")
			return nil
		case err != nil:
			e.logger.Debug("event: %v", err)
		}
	}
	return nil
}

// Stop asks a running editor to exit. It is safe to call from any
// goroutine.
func Stop(b backend.Backend) error {
	return b.PostEvent(backend.InterruptEvent(ErrQuit))
}
