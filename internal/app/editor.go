// Package app is the editor's mode controller.
//
// An Editor owns one document together with its cursor, mode, selection,
// viewport, search state and highlighter. Terminal events go in through
// HandleKey, HandleMouse and HandleResize; a core.Snapshot comes out of
// Snapshot. Run ties the two to a backend.Backend. All state changes happen
// on the goroutine that calls these methods.
package app

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"

	"github.com/dshills/meow/internal/clipboard"
	"github.com/dshills/meow/internal/config"
	"github.com/dshills/meow/internal/engine/buffer"
	"github.com/dshills/meow/internal/engine/cursor"
	"github.com/dshills/meow/internal/engine/search"
	"github.com/dshills/meow/internal/fileio"
	"github.com/dshills/meow/internal/input/mode"
	"github.com/dshills/meow/internal/renderer/highlight"
	"github.com/dshills/meow/internal/renderer/statusline"
	"github.com/dshills/meow/internal/renderer/viewport"
)

// Default terminal size used until the first resize.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Editor is the context of one editing session.
type Editor struct {
	// Document
	buf      *buffer.Buffer
	fileName string
	diskSum  uint64 // checksum of the content last read from or written to fileName

	// Interaction state
	cursor    cursor.Position
	mode      mode.Mode
	selection *cursor.Selection
	viewport  *viewport.Viewport
	search    *search.Engine
	message   string
	msgType   statusline.MessageType

	// Presentation
	highlighter *highlight.Highlighter
	theme       *highlight.Theme
	settings    *config.Settings
	width       int
	height      int

	// Collaborators
	files     *fileio.Files
	clipboard clipboard.Clipboard
	logger    *Logger

	quit    bool
	running atomic.Bool
}

// Options configures an Editor.
type Options struct {
	// FileName is the document to open. A missing file starts an empty
	// document that will be written under this name.
	FileName string

	// Settings defaults to config.Default().
	Settings *config.Settings

	// Theme defaults to highlight.DefaultTheme().
	Theme *highlight.Theme

	// Files defaults to the OS file system.
	Files *fileio.Files

	// Clipboard defaults to the system clipboard.
	Clipboard clipboard.Clipboard

	// Logger defaults to NullLogger.
	Logger *Logger

	// Width and Height are the initial terminal size.
	Width  int
	Height int

	// Message is shown on the message line until the first key.
	Message string
}

// New creates an editor and loads opts.FileName.
func New(opts Options) (*Editor, error) {
	if opts.Settings == nil {
		opts.Settings = config.Default()
	}
	if opts.Theme == nil {
		opts.Theme = highlight.DefaultTheme()
	}
	if opts.Files == nil {
		opts.Files = fileio.New(nil)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.New()
	}
	if opts.Logger == nil {
		opts.Logger = NullLogger
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	e := &Editor{
		fileName:  opts.FileName,
		mode:      mode.NewNormal(),
		search:    search.NewEngine(),
		theme:     opts.Theme,
		settings:  opts.Settings,
		width:     opts.Width,
		height:    opts.Height,
		files:     opts.Files,
		clipboard: opts.Clipboard,
		logger:    opts.Logger.WithComponent("editor"),
		viewport:  viewport.NewViewport(opts.Width, opts.Height-2),
	}
	if opts.Message != "" {
		e.setWarning("%s", opts.Message)
	}

	tab := buffer.WithTabSize(opts.Settings.Editor.TabSize)
	e.buf = buffer.New(tab)
	if e.fileName != "" {
		data, err := e.files.Load(e.fileName)
		switch {
		case err == nil:
			e.buf = buffer.FromBytes(data, tab)
			e.diskSum = checksum(data)
			e.logger.Info("opened %s (%d lines, %s)", e.fileName, e.buf.LineCount(), e.buf.LineEnding())
		case fileio.IsNotExist(err):
			e.logger.Info("new file %s", e.fileName)
		default:
			return nil, &InitError{Component: "document", Err: NewOperationError("open", e.fileName, err)}
		}
	}

	e.highlighter = highlight.New(highlight.SelectSyntax(e.fileName))
	e.layout()
	return e, nil
}

// Buffer returns the document.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// FileName returns the document's file name, or "" when it has none.
func (e *Editor) FileName() string {
	return e.fileName
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() cursor.Position {
	return e.cursor
}

// Mode returns the current mode.
func (e *Editor) Mode() mode.Mode {
	return e.mode
}

// Selection returns the Visual mode selection, or nil outside Visual mode.
func (e *Editor) Selection() *cursor.Selection {
	if e.selection == nil {
		return nil
	}
	s := *e.selection
	return &s
}

// Message returns the status message.
func (e *Editor) Message() string {
	return e.message
}

// SearchState returns the last search.
func (e *Editor) SearchState() search.State {
	return e.search.State()
}

// Quitting reports whether a quit command was executed.
func (e *Editor) Quitting() bool {
	return e.quit
}

// setMode switches mode. A selection exists exactly while in Visual mode.
func (e *Editor) setMode(m mode.Mode) {
	if m.Kind == mode.Visual && e.mode.Kind != mode.Visual {
		sel := cursor.NewSelection(e.cursor)
		e.selection = &sel
	}
	if m.Kind != mode.Visual {
		e.selection = nil
	}
	e.mode = m
}

// setMessage shows an informational message.
func (e *Editor) setMessage(format string, args ...any) {
	e.showMessage(statusline.MessageInfo, format, args...)
}

func (e *Editor) setWarning(format string, args ...any) {
	e.showMessage(statusline.MessageWarning, format, args...)
}

func (e *Editor) setError(format string, args ...any) {
	e.showMessage(statusline.MessageError, format, args...)
}

func (e *Editor) showMessage(t statusline.MessageType, format string, args ...any) {
	e.msgType = t
	if len(args) == 0 {
		e.message = format
		return
	}
	e.message = fmt.Sprintf(format, args...)
}

func (e *Editor) clearMessage() {
	e.message = ""
	e.msgType = statusline.MessageNone
}

// moveTo places the cursor at p, clamped, and extends the selection in
// Visual mode.
func (e *Editor) moveTo(p cursor.Position) {
	e.cursor = e.buf.Clamp(p)
	if e.selection != nil {
		sel := e.selection.Extend(e.cursor)
		e.selection = &sel
	}
}

// gutterWidth returns the width of the line number column, or 0.
func (e *Editor) gutterWidth() int {
	if !e.settings.Editor.LineNumbers {
		return 0
	}
	return viewport.GutterWidth(e.buf.LineCount())
}

// textRows returns the number of screen rows above the status line.
func (e *Editor) textRows() int {
	return max(e.height-2, 0)
}

// layout sizes the viewport for the current gutter and scrolls the cursor
// into view.
func (e *Editor) layout() {
	e.viewport.Resize(e.width-e.gutterWidth(), e.textRows())
	e.cursor = e.buf.Clamp(e.cursor)
	rc := viewport.RenderCol(e.buf.Row(e.cursor.Row).Runes(), e.cursor.Col, e.buf.TabSize())
	e.viewport.Scroll(e.cursor.Row, rc)
}

func checksum(data []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return h.Sum64()
}
