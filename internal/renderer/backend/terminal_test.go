package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/meow/internal/input/key"
	"github.com/dshills/meow/internal/renderer/core"
)

func newSimTerminal(t *testing.T, w, h int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init error = %v", err)
	}
	t.Cleanup(term.Shutdown)
	screen.SetSize(w, h)
	return term, screen
}

func cellsOf(s string, style core.Style) []core.Cell {
	var cells []core.Cell
	for _, r := range s {
		cells = append(cells, core.NewStyledCell(r, style))
	}
	return cells
}

func rowText(screen tcell.SimulationScreen, y, n int) string {
	var out []rune
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), key.NewRuneEvent('X', key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyPageDown, key.ModNone)},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), key.NewRuneEvent('s', key.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if !ok {
				t.Fatal("key not converted")
			}
			if got != tt.want {
				t.Errorf("convertKey = %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, ok := convertKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); ok {
		t.Error("F5 should not be converted")
	}
}

func TestPostAndPollEvents(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 5)

	if err := term.PostEvent(KeyEvent(key.MustParse("<Esc>"))); err != nil {
		t.Fatal(err)
	}
	ev := term.PollEvent()
	if ev.Type != EventKey || ev.Key != key.MustParse("<Esc>") {
		t.Errorf("expected Esc key event, got %+v", ev)
	}

	if err := term.PostEvent(KeyEvent(key.MustParse("<C-s>"))); err != nil {
		t.Fatal(err)
	}
	if ev := term.PollEvent(); ev.Key != key.MustParse("<C-s>") {
		t.Errorf("expected Ctrl-s round trip, got %#v", ev.Key)
	}

	if err := term.PostEvent(InterruptEvent("changed")); err != nil {
		t.Fatal(err)
	}
	ev = term.PollEvent()
	if ev.Type != EventInterrupt || ev.Data != "changed" {
		t.Errorf("expected interrupt event, got %+v", ev)
	}
}

func TestDrawSnapshot(t *testing.T) {
	term, screen := newSimTerminal(t, 12, 4)
	keyword := core.DefaultStyle().WithForeground(core.MustHex("#c678dd")).Bold()

	term.Draw(core.Snapshot{
		Width:       12,
		Height:      4,
		GutterWidth: 2,
		Lines: []core.Line{
			{Number: 1, Cells: cellsOf("fn", keyword)},
			{Number: 0},
		},
		CursorX: 3,
		CursorY: 0,
		Status:  "NORMAL | a.rs | Lines: 1",
		Message: "hi",
	})

	if got := rowText(screen, 0, 4); got != "1 fn" {
		t.Errorf("row 0 = %q, want %q", got, "1 fn")
	}
	if got := rowText(screen, 1, 3); got != "  ~" {
		t.Errorf("row 1 = %q, want %q", got, "  ~")
	}
	if got := rowText(screen, 2, 12); got != "NORMAL | a.r" {
		t.Errorf("status = %q", got)
	}
	if got := rowText(screen, 3, 2); got != "hi" {
		t.Errorf("message = %q", got)
	}

	_, _, style, _ := screen.GetContent(2, 0)
	fg, _, attrs := style.Decompose()
	if fg != tcell.NewRGBColor(0xc6, 0x78, 0xdd) {
		t.Errorf("keyword foreground = %v", fg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("keyword should be bold")
	}

	x, y, visible := screen.GetCursor()
	if x != 3 || y != 0 || !visible {
		t.Errorf("cursor = (%d,%d,%v), want (3,0,true)", x, y, visible)
	}
}

func TestCursorStyle(t *testing.T) {
	shape, colors := cursorStyle(core.Snapshot{})
	if shape != tcell.CursorStyleSteadyBlock || colors != nil {
		t.Errorf("default cursor = %v %v", shape, colors)
	}

	shape, colors = cursorStyle(core.Snapshot{CursorBar: true, CursorColor: core.MustHex("#cccccc")})
	if shape != tcell.CursorStyleSteadyBar {
		t.Errorf("shape = %v, want bar", shape)
	}
	if len(colors) != 1 || colors[0] != tcell.NewRGBColor(0xcc, 0xcc, 0xcc) {
		t.Errorf("colors = %v, want #cccccc", colors)
	}
}

func TestSize(t *testing.T) {
	term, _ := newSimTerminal(t, 30, 10)
	w, h := term.Size()
	if w != 30 || h != 10 {
		t.Errorf("Size = %dx%d, want 30x10", w, h)
	}
}
