package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/meow/internal/config"
	"github.com/dshills/meow/internal/engine/buffer"
	"github.com/dshills/meow/internal/renderer/core"
)

// DefaultThemeName selects the built-in palette.
const DefaultThemeName = "default"

// Theme defines colors and styles for the editor.
type Theme struct {
	// Name is the theme identifier it was built from.
	Name string

	// Background is the editor background color.
	Background core.Color

	// Foreground is the default text color.
	Foreground core.Color

	// Cursor is the cursor color.
	Cursor core.Color

	// Selection is the selection highlight color.
	Selection core.Color

	// Categories maps span categories to their styles.
	Categories map[buffer.Category]core.Style
}

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() *Theme {
	t := &Theme{
		Name:       DefaultThemeName,
		Background: core.MustHex("#1e1e1e"),
		Foreground: core.MustHex("#ffffff"),
		Cursor:     core.MustHex("#cccccc"),
		Selection:  core.MustHex("#3e4451"),
	}
	t.Categories = map[buffer.Category]core.Style{
		buffer.CategoryKeyword: t.Text().WithForeground(core.MustHex("#c678dd")).Bold(),
		buffer.CategoryType:    t.Text().WithForeground(core.MustHex("#e5c07b")),
		buffer.CategoryComment: t.Text().WithForeground(core.MustHex("#7f848e")).Italic(),
	}
	return t
}

// NewTheme builds the theme called name. Names other than "default" are
// looked up in chroma's style registry; unknown names fall back to the
// built-in palette. Colors set in file override the result.
func NewTheme(name string, file *config.ThemeFile) (*Theme, error) {
	t := DefaultTheme()
	if name != "" && name != DefaultThemeName {
		if s, ok := styles.Registry[name]; ok {
			t.applyChroma(s)
		}
		t.Name = name
	}
	if file != nil {
		if err := t.applyFile(file); err != nil {
			return t, err
		}
	}
	return t, nil
}

// Text returns the style of plain text.
func (t *Theme) Text() core.Style {
	return core.Style{Foreground: t.Foreground, Background: t.Background}
}

// StyleFor returns the style for a span category.
func (t *Theme) StyleFor(c buffer.Category) core.Style {
	if s, ok := t.Categories[c]; ok {
		return s
	}
	return t.Text()
}

// SelectionStyle returns style with the selection background.
func (t *Theme) SelectionStyle(style core.Style) core.Style {
	return style.WithBackground(t.Selection)
}

func (t *Theme) applyChroma(s *chroma.Style) {
	bg := s.Get(chroma.Background)
	if bg.Background.IsSet() {
		t.Background = chromaColor(bg.Background)
	}
	if bg.Colour.IsSet() {
		t.Foreground = chromaColor(bg.Colour)
	}
	if txt := s.Get(chroma.Text); txt.Colour.IsSet() {
		t.Foreground = chromaColor(txt.Colour)
	}

	mapping := map[buffer.Category]chroma.TokenType{
		buffer.CategoryKeyword: chroma.Keyword,
		buffer.CategoryType:    chroma.KeywordType,
		buffer.CategoryComment: chroma.Comment,
	}
	for cat, tok := range mapping {
		e := s.Get(tok)
		style := t.Text()
		if e.Colour.IsSet() {
			style = style.WithForeground(chromaColor(e.Colour))
		}
		if e.Bold == chroma.Yes {
			style = style.Bold()
		}
		if e.Italic == chroma.Yes {
			style = style.Italic()
		}
		t.Categories[cat] = style
	}
}

func (t *Theme) applyFile(f *config.ThemeFile) error {
	set := func(dst *core.Color, field, hex string) error {
		if hex == "" {
			return nil
		}
		c, err := core.ColorFromHex(hex)
		if err != nil {
			return fmt.Errorf("theme %s: %s: %w", t.Name, field, err)
		}
		*dst = c
		return nil
	}

	fields := []struct {
		dst   *core.Color
		name  string
		value string
	}{
		{&t.Background, "background", f.Background},
		{&t.Foreground, "foreground", f.Foreground},
		{&t.Cursor, "cursor", f.Cursor},
		{&t.Selection, "selection_bg", f.SelectionBg},
	}
	for _, fl := range fields {
		if err := set(fl.dst, fl.name, fl.value); err != nil {
			return err
		}
	}

	overrides := []struct {
		cat   buffer.Category
		name  string
		value string
	}{
		{buffer.CategoryKeyword, "keyword", f.Keyword},
		{buffer.CategoryType, "type", f.Type},
		{buffer.CategoryComment, "comment", f.Comment},
	}
	for cat, s := range t.Categories {
		t.Categories[cat] = s.WithBackground(t.Background)
	}
	for _, o := range overrides {
		fg := t.StyleFor(o.cat).Foreground
		if err := set(&fg, o.name, o.value); err != nil {
			return err
		}
		t.Categories[o.cat] = t.StyleFor(o.cat).WithForeground(fg)
	}
	return nil
}

func chromaColor(c chroma.Colour) core.Color {
	return core.ColorFromRGB(c.Red(), c.Green(), c.Blue())
}
