package backend

import (
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/meow/internal/input/key"
	"github.com/dshills/meow/internal/renderer/core"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a backend on the process's terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen creates a backend on an existing screen, such as
// tcell's simulation screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) EnableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.EnableMouse()
}

func (t *Terminal) DisableMouse() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.DisableMouse()
}

func (t *Terminal) PollEvent() Event {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Event{Type: EventNone}
		}
		if out := convertEvent(ev); out.Type != EventNone {
			return out
		}
	}
}

func (t *Terminal) PostEvent(event Event) error {
	switch event.Type {
	case EventKey:
		k, r, mod := convertToTcellKey(event.Key)
		return t.screen.PostEvent(tcell.NewEventKey(k, r, mod))
	case EventResize:
		return t.screen.PostEvent(tcell.NewEventResize(event.Width, event.Height))
	default:
		return t.screen.PostEvent(tcell.NewEventInterrupt(event.Data))
	}
}

// Draw paints the snapshot: text rows with the gutter, the status line and
// the message line, then places the cursor.
func (t *Terminal) Draw(s core.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := convertStyle(s.TextStyle)
	t.screen.SetStyle(text)
	t.screen.Clear()

	for y, line := range s.Lines {
		x := 0
		if s.GutterWidth > 0 {
			label := ""
			if !line.IsFiller() {
				label = strconv.Itoa(line.Number)
			}
			x = t.putString(0, y, padLeft(label, s.GutterWidth-1)+" ", convertStyle(s.GutterStyle), s.GutterWidth)
		}
		if line.IsFiller() {
			t.screen.SetContent(x, y, '~', nil, convertStyle(s.FillerStyle))
			continue
		}
		for _, c := range line.Cells {
			if x >= s.Width {
				break
			}
			t.screen.SetContent(x, y, c.Rune, nil, convertStyle(c.Style))
			x += max(c.Width, 1)
		}
	}

	if s.Height >= 2 {
		status := convertStyle(s.StatusStyle)
		n := t.putString(0, s.Height-2, core.FitString(s.Status, s.Width), status, s.Width)
		for x := n; x < s.Width; x++ {
			t.screen.SetContent(x, s.Height-2, ' ', nil, status)
		}
	}
	if s.Height >= 1 {
		t.putString(0, s.Height-1, core.FitString(s.Message, s.Width), convertStyle(s.MessageStyle), s.Width)
	}

	shape, colors := cursorStyle(s)
	t.screen.SetCursorStyle(shape, colors...)
	t.screen.ShowCursor(s.CursorX, s.CursorY)
	t.screen.Show()
}

// cursorStyle returns the cursor shape for s and, when s sets one, its color.
func cursorStyle(s core.Snapshot) (tcell.CursorStyle, []tcell.Color) {
	shape := tcell.CursorStyleSteadyBlock
	if s.CursorBar {
		shape = tcell.CursorStyleSteadyBar
	}
	if s.CursorColor.IsDefault() {
		return shape, nil
	}
	return shape, []tcell.Color{convertColor(s.CursorColor)}
}

// putString draws str from x and returns the column after it.
func (t *Terminal) putString(x, y int, str string, style tcell.Style, limit int) int {
	for _, r := range str {
		w := core.RuneWidth(r)
		if x+w > limit {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(core.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(core.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}

	return style
}

func convertColor(c core.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return KeyEvent(k)

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseButton: convertMouseButton(e.Buttons()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return InterruptEvent(e.Data())

	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key event. Control characters that have
// their own key (Tab, Enter, Backspace, Escape) are matched before the
// generic Ctrl+letter range they share codes with.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	switch k := e.Key(); k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods&^key.ModShift), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods&^key.ModCtrl), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods&^key.ModCtrl), true
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods|key.ModShift), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods&^key.ModCtrl), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewSpecialEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewSpecialEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return key.NewRuneEvent(rune('a'+(k-tcell.KeyCtrlA)), key.ModCtrl), true
		}
		return key.Event{}, false
	}
}

// convertToTcellKey converts our key event to tcell's key, rune and mask.
func convertToTcellKey(ev key.Event) (tcell.Key, rune, tcell.ModMask) {
	mod := convertToTcellMod(ev.Modifiers)
	switch ev.Key {
	case key.KeyRune:
		if ev.Modifiers.Has(key.ModCtrl) && ev.Rune >= 'a' && ev.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(ev.Rune-'a'), 0, mod
		}
		return tcell.KeyRune, ev.Rune, mod
	case key.KeyEscape:
		return tcell.KeyEscape, 0, mod
	case key.KeyEnter:
		return tcell.KeyEnter, 0, mod
	case key.KeyTab:
		return tcell.KeyTab, 0, mod
	case key.KeyBackspace:
		return tcell.KeyBackspace2, 0, mod
	case key.KeyDelete:
		return tcell.KeyDelete, 0, mod
	case key.KeyHome:
		return tcell.KeyHome, 0, mod
	case key.KeyEnd:
		return tcell.KeyEnd, 0, mod
	case key.KeyPageUp:
		return tcell.KeyPgUp, 0, mod
	case key.KeyPageDown:
		return tcell.KeyPgDn, 0, mod
	case key.KeyUp:
		return tcell.KeyUp, 0, mod
	case key.KeyDown:
		return tcell.KeyDown, 0, mod
	case key.KeyLeft:
		return tcell.KeyLeft, 0, mod
	case key.KeyRight:
		return tcell.KeyRight, 0, mod
	default:
		return tcell.KeyRune, 0, mod
	}
}

// convertMod converts tcell modifier mask to key.Modifier.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}

// convertToTcellMod converts key.Modifier to tcell.ModMask.
func convertToTcellMod(m key.Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m.Has(key.ModShift) {
		result |= tcell.ModShift
	}
	if m.Has(key.ModCtrl) {
		result |= tcell.ModCtrl
	}
	if m.Has(key.ModAlt) {
		result |= tcell.ModAlt
	}
	return result
}

// convertMouseButton converts tcell button mask to our MouseButton.
func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}
