package app

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/meow/internal/clipboard"
	"github.com/dshills/meow/internal/config"
	"github.com/dshills/meow/internal/engine/buffer"
	"github.com/dshills/meow/internal/fileio"
	"github.com/dshills/meow/internal/input/key"
	"github.com/dshills/meow/internal/input/mode"
	"github.com/dshills/meow/internal/renderer/backend"
	"github.com/dshills/meow/internal/watcher"
)

const sample = "fn main() {\n  // hello\n}"

type harness struct {
	ed   *Editor
	fs   *fileio.MemFS
	clip *clipboard.Memory
}

// newHarness opens content as name on an in-memory file system. An empty
// name starts an unnamed document.
func newHarness(t *testing.T, name, content string) *harness {
	t.Helper()
	h := &harness{fs: fileio.NewMemFS(), clip: clipboard.NewMemory()}
	if name != "" {
		require.NoError(t, h.fs.WriteFile(name, []byte(content)))
	}
	ed, err := New(Options{
		FileName:  name,
		Files:     fileio.New(h.fs),
		Clipboard: h.clip,
		Width:     80,
		Height:    24,
	})
	require.NoError(t, err)
	h.ed = ed
	return h
}

// keys feeds a key script and returns the error of the last key.
func (h *harness) keys(script string) error {
	var err error
	for _, ev := range key.ParseSequence(script) {
		err = h.ed.HandleKey(ev)
	}
	return err
}

func (h *harness) lines() []string {
	buf := h.ed.Buffer()
	out := make([]string, buf.LineCount())
	for i := range out {
		out[i] = buf.Line(i)
	}
	return out
}

func TestInsertScenario(t *testing.T) {
	h := newHarness(t, "main.rs", sample)

	require.NoError(t, h.keys("llli"))
	assert.Equal(t, buffer.Pos(0, 3), h.ed.Cursor())
	assert.Equal(t, mode.Insert, h.ed.Mode().Kind)

	require.NoError(t, h.keys("x<Esc>"))
	assert.Equal(t, "fn xmain() {", h.ed.Buffer().Line(0))
	assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
	assert.Equal(t, buffer.Pos(0, 4), h.ed.Cursor())
	assert.True(t, h.ed.Buffer().IsModified())
}

func TestYankPasteScenario(t *testing.T) {
	h := newHarness(t, "main.rs", sample)

	require.NoError(t, h.keys("jlllllv"))
	require.NotNil(t, h.ed.Selection())
	require.NoError(t, h.keys("llll"))
	assert.Equal(t, buffer.Pos(1, 9), h.ed.Selection().Active)

	require.NoError(t, h.keys("y"))
	assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
	assert.Nil(t, h.ed.Selection())
	text, ok := h.clip.Get()
	require.True(t, ok)
	assert.Equal(t, "hello", text)

	require.NoError(t, h.keys("j0p"))
	assert.Equal(t, []string{"fn main() {", "  // hello", "hello}"}, h.lines())
}

func TestWriteScenario(t *testing.T) {
	content := "fn main() {\n    println!(\"hi there!\");\n}"
	require.Len(t, content, 40)
	h := newHarness(t, "main.rs", content)
	require.Equal(t, 3, h.ed.Buffer().LineCount())

	require.NoError(t, h.keys(":w output.txt<CR>"))
	assert.Equal(t, "40 bytes written", h.ed.Message())
	assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
	assert.Equal(t, content, h.ed.Buffer().String())
	assert.Equal(t, "main.rs", h.ed.FileName())

	written, err := h.fs.ReadFile("output.txt")
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestNewMissingFile(t *testing.T) {
	h := newHarness(t, "", "")
	ed, err := New(Options{FileName: "new.go", Files: fileio.New(h.fs), Clipboard: h.clip})
	require.NoError(t, err)
	assert.Equal(t, "new.go", ed.FileName())
	assert.Equal(t, 1, ed.Buffer().LineCount())
	assert.False(t, ed.Buffer().IsModified())
}

func TestNewInvalidEncoding(t *testing.T) {
	fs := fileio.NewMemFS()
	require.NoError(t, fs.WriteFile("bin.dat", []byte{0xC3, 0x28}))

	_, err := New(Options{FileName: "bin.dat", Files: fileio.New(fs), Clipboard: clipboard.NewMemory()})
	require.Error(t, err)
	assert.ErrorIs(t, err, fileio.ErrInvalidEncoding)

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "document", initErr.Component)
}

func TestInsertModeEditing(t *testing.T) {
	h := newHarness(t, "", "")

	require.NoError(t, h.keys("iab<CR>c<Esc>"))
	assert.Equal(t, []string{"ab", "c"}, h.lines())
	assert.Equal(t, buffer.Pos(1, 1), h.ed.Cursor())

	require.NoError(t, h.keys("i<BS><BS><Esc>"))
	assert.Equal(t, []string{"ab"}, h.lines())
	assert.Equal(t, buffer.Pos(0, 2), h.ed.Cursor())

	require.NoError(t, h.keys("0i<Tab><Del><Esc>"))
	assert.Equal(t, []string{"\tb"}, h.lines())
}

func TestNormalModeEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
		script  string
		want    []string
		cursor  buffer.Position
	}{
		{"append", "ab", "aX<Esc>", []string{"aXb"}, buffer.Pos(0, 2)},
		{"append at end", "ab", "$aX<Esc>", []string{"abX"}, buffer.Pos(0, 3)},
		{"open below", "ab\ncd", "oX<Esc>", []string{"ab", "X", "cd"}, buffer.Pos(1, 1)},
		{"arrows in insert", "ab", "i<Right>X<Esc>", []string{"aXb"}, buffer.Pos(0, 2)},
		{"unbound key ignored", "ab", "zZ", []string{"ab"}, buffer.Pos(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "doc.txt", tt.content)
			require.NoError(t, h.keys(tt.script))
			assert.Equal(t, tt.want, h.lines())
			assert.Equal(t, tt.cursor, h.ed.Cursor())
			assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
		})
	}
}

func TestVisualOperations(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
		clip   string
		cursor buffer.Position
	}{
		{"delete", "lvlld", []string{"aef", "gh"}, "", buffer.Pos(0, 1)},
		{"cut", "lvllx", []string{"aef", "gh"}, "bcd", buffer.Pos(0, 1)},
		{"backward selection", "lllvhhy", []string{"abcdef", "gh"}, "bcd", buffer.Pos(0, 1)},
		{"across rows", "$vj0d", []string{"abcdefh"}, "", buffer.Pos(0, 6)},
		{"escape keeps text", "vll<Esc>", []string{"abcdef", "gh"}, "", buffer.Pos(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "doc.txt", "abcdef\ngh")
			require.NoError(t, h.keys(tt.script))
			assert.Equal(t, tt.want, h.lines())
			assert.Equal(t, tt.cursor, h.ed.Cursor())
			assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
			assert.Nil(t, h.ed.Selection())

			got, _ := h.clip.Get()
			assert.Equal(t, tt.clip, got)
		})
	}
}

type failingClipboard struct{ clipboard.Memory }

func (f *failingClipboard) Set(text string) error {
	_ = f.Memory.Set(text)
	return clipboard.ErrUnavailable
}

func TestYankClipboardFailure(t *testing.T) {
	fs := fileio.NewMemFS()
	require.NoError(t, fs.WriteFile("doc.txt", []byte("abc")))
	ed, err := New(Options{FileName: "doc.txt", Files: fileio.New(fs), Clipboard: &failingClipboard{}})
	require.NoError(t, err)

	for _, ev := range key.ParseSequence("vly") {
		require.NoError(t, ed.HandleKey(ev))
	}
	assert.True(t, strings.HasPrefix(ed.Message(), "Clipboard error"), ed.Message())
	assert.Equal(t, mode.Normal, ed.Mode().Kind)
}

func TestPasteEmptyClipboard(t *testing.T) {
	h := newHarness(t, "doc.txt", "abc")
	require.NoError(t, h.keys("p"))
	assert.Equal(t, "Nothing to paste", h.ed.Message())
	assert.Equal(t, []string{"abc"}, h.lines())
}

func TestCommands(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		err := h.keys(":foo bar<CR>")
		assert.ErrorIs(t, err, ErrUnknownCommand)
		assert.Equal(t, "Not an editor command: foo bar", h.ed.Message())
		assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
	})

	t.Run("q with argument is unknown", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		assert.ErrorIs(t, h.keys(":q now<CR>"), ErrUnknownCommand)
		assert.False(t, h.ed.Quitting())
	})

	t.Run("write without name", func(t *testing.T) {
		h := newHarness(t, "", "")
		err := h.keys("ix<Esc>:w<CR>")
		assert.ErrorIs(t, err, ErrNoFileName)
		assert.ErrorIs(t, err, fileio.ErrNoFileName)
		assert.Equal(t, "No file name", h.ed.Message())
		assert.True(t, h.ed.Buffer().IsModified())
	})

	t.Run("write adopts name", func(t *testing.T) {
		h := newHarness(t, "", "")
		require.NoError(t, h.keys("ifn<Esc>:w new.rs<CR>"))
		assert.Equal(t, "new.rs", h.ed.FileName())
		assert.Equal(t, "2 bytes written", h.ed.Message())
		assert.False(t, h.ed.Buffer().IsModified())
		assert.Contains(t, h.ed.Snapshot().Status, "Rust")
	})

	t.Run("write elsewhere keeps modified", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		require.NoError(t, h.keys("ix<Esc>:w copy.txt<CR>"))
		assert.Equal(t, "doc.txt", h.ed.FileName())
		assert.True(t, h.ed.Buffer().IsModified())

		require.NoError(t, h.keys(":w<CR>"))
		assert.False(t, h.ed.Buffer().IsModified())
	})

	t.Run("write failure", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		h.fs.FailWrites = os.ErrPermission

		err := h.keys(":w<CR>")
		var opErr *OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "write", opErr.Op)
		assert.Equal(t, "doc.txt", opErr.Target)
		assert.ErrorIs(t, err, os.ErrPermission)
		assert.True(t, strings.HasPrefix(h.ed.Message(), "Error writing doc.txt: "), h.ed.Message())
	})

	t.Run("wq failure stays open", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		h.fs.FailWrites = os.ErrPermission
		assert.Error(t, h.keys(":wq<CR>"))
		assert.False(t, h.ed.Quitting())
	})

	t.Run("wq", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		assert.ErrorIs(t, h.keys("ix<Esc>:wq<CR>"), ErrQuit)
		assert.True(t, h.ed.Quitting())
		data, err := h.fs.ReadFile("doc.txt")
		require.NoError(t, err)
		assert.Equal(t, "xabc", string(data))
	})

	t.Run("q discards changes", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		assert.ErrorIs(t, h.keys("ix<Esc>:q<CR>"), ErrQuit)
		assert.True(t, h.ed.Quitting())
		data, _ := h.fs.ReadFile("doc.txt")
		assert.Equal(t, "abc", string(data))
	})

	t.Run("escape discards input", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		require.NoError(t, h.keys(":q<Esc>"))
		assert.False(t, h.ed.Quitting())
		assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
	})

	t.Run("backspace on empty input cancels", func(t *testing.T) {
		h := newHarness(t, "doc.txt", "abc")
		require.NoError(t, h.keys(":ab<BS>"))
		assert.Equal(t, "a", h.ed.Mode().Text())
		require.NoError(t, h.keys("<BS><BS>"))
		assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
	})
}

func TestSearch(t *testing.T) {
	h := newHarness(t, "doc.txt", "foo\na\nb\nc\nd\nxfoo bar")

	require.NoError(t, h.keys("/foo<CR>"))
	assert.Equal(t, buffer.Pos(5, 1), h.ed.Cursor())
	assert.Equal(t, "", h.ed.Message())
	assert.Equal(t, mode.Normal, h.ed.Mode().Kind)

	require.NoError(t, h.keys("n"))
	assert.Equal(t, buffer.Pos(0, 0), h.ed.Cursor())
	assert.Equal(t, "search hit BOTTOM, continuing at TOP", h.ed.Message())

	require.NoError(t, h.keys("N"))
	assert.Equal(t, buffer.Pos(5, 1), h.ed.Cursor())
	assert.Equal(t, "search hit TOP, continuing at BOTTOM", h.ed.Message())

	require.NoError(t, h.keys("/zzz<CR>"))
	assert.Equal(t, buffer.Pos(5, 1), h.ed.Cursor())
	assert.Equal(t, "Pattern not found: zzz", h.ed.Message())

	// The next key clears the message.
	require.NoError(t, h.keys("h"))
	assert.Equal(t, "", h.ed.Message())
}

func TestSearchBackwardPrompt(t *testing.T) {
	h := newHarness(t, "doc.txt", "foo\nbar\nfoo")

	require.NoError(t, h.keys("j?fo"))
	assert.Equal(t, "?fo", h.ed.Snapshot().Message)

	require.NoError(t, h.keys("<CR>"))
	assert.Equal(t, buffer.Pos(0, 0), h.ed.Cursor())
	assert.Equal(t, "fo", h.ed.SearchState().Query)
}

func TestSearchEscapeKeepsCursor(t *testing.T) {
	h := newHarness(t, "doc.txt", "foo\nbar\nfoo")
	require.NoError(t, h.keys("j/foo<Esc>"))
	assert.Equal(t, buffer.Pos(1, 0), h.ed.Cursor())
	assert.Equal(t, mode.Normal, h.ed.Mode().Kind)
}

func TestSearchWithoutHistory(t *testing.T) {
	h := newHarness(t, "doc.txt", "foo")
	require.NoError(t, h.keys("n"))
	assert.Equal(t, "No previous search pattern", h.ed.Message())
	require.NoError(t, h.keys("/<CR>"))
	assert.Equal(t, "No previous search pattern", h.ed.Message())
}

func TestMouse(t *testing.T) {
	h := newHarness(t, "main.rs", sample)
	gutter := h.ed.gutterWidth()
	require.Equal(t, 2, gutter)

	h.ed.HandleMouse(gutter+4, 1, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(1, 4), h.ed.Cursor())

	// Below the last row: clamp to the last row.
	h.ed.HandleMouse(gutter+4, 10, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(2, 1), h.ed.Cursor())

	// Gutter and status line are not text.
	h.ed.HandleMouse(0, 0, backend.MouseLeft)
	h.ed.HandleMouse(gutter, 22, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(2, 1), h.ed.Cursor())

	h.ed.HandleMouse(0, 0, backend.MouseWheelUp)
	assert.Equal(t, buffer.Pos(0, 1), h.ed.Cursor())

	// Visual mode extends the selection.
	require.NoError(t, h.keys("v"))
	h.ed.HandleMouse(gutter+6, 1, backend.MouseLeft)
	require.NotNil(t, h.ed.Selection())
	assert.Equal(t, buffer.Pos(0, 1), h.ed.Selection().Anchor)
	assert.Equal(t, buffer.Pos(1, 6), h.ed.Selection().Active)

	// Ignored while typing a command.
	require.NoError(t, h.keys("<Esc>:"))
	h.ed.HandleMouse(gutter, 0, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(1, 6), h.ed.Cursor())
}

func TestMouseTabs(t *testing.T) {
	h := newHarness(t, "doc.txt", "\tab")
	gutter := h.ed.gutterWidth()

	h.ed.HandleMouse(gutter+2, 0, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(0, 0), h.ed.Cursor())
	h.ed.HandleMouse(gutter+5, 0, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(0, 2), h.ed.Cursor())
}

func TestMouseDisabled(t *testing.T) {
	settings := config.Default()
	settings.Editor.MouseSupport = false
	fs := fileio.NewMemFS()
	require.NoError(t, fs.WriteFile("doc.txt", []byte("abc\ndef")))
	ed, err := New(Options{FileName: "doc.txt", Settings: settings, Files: fileio.New(fs), Clipboard: clipboard.NewMemory()})
	require.NoError(t, err)

	ed.HandleMouse(3, 1, backend.MouseLeft)
	assert.Equal(t, buffer.Pos(0, 0), ed.Cursor())
}

func TestDiskChange(t *testing.T) {
	h := newHarness(t, "doc.txt", "abc")

	// Unchanged content is not reported.
	require.NoError(t, h.ed.HandleEvent(backend.InterruptEvent(watcher.Event{Path: "doc.txt", Op: watcher.OpWrite})))
	assert.Equal(t, "", h.ed.Message())

	// Our own write is not reported either.
	require.NoError(t, h.keys("ix<Esc>:w<CR>"))
	require.NoError(t, h.ed.HandleEvent(backend.InterruptEvent(watcher.Event{Path: "doc.txt", Op: watcher.OpWrite})))
	assert.Equal(t, "4 bytes written", h.ed.Message())

	require.NoError(t, h.fs.WriteFile("doc.txt", []byte("changed")))
	require.NoError(t, h.ed.HandleEvent(backend.InterruptEvent(watcher.Event{Path: "doc.txt", Op: watcher.OpWrite})))
	assert.Equal(t, "File changed on disk: doc.txt", h.ed.Message())
	assert.Equal(t, "xabc", h.ed.Buffer().String())

	// Events for other files are ignored.
	h.ed.message = ""
	require.NoError(t, h.ed.HandleEvent(backend.InterruptEvent(watcher.Event{Path: "other.txt", Op: watcher.OpWrite})))
	assert.Equal(t, "", h.ed.Message())
}

func TestQuitInterrupt(t *testing.T) {
	h := newHarness(t, "doc.txt", "abc")
	err := h.ed.HandleEvent(backend.InterruptEvent(ErrQuit))
	assert.True(t, errors.Is(err, ErrQuit))
	assert.True(t, h.ed.Quitting())
}
