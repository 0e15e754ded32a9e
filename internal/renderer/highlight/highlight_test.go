package highlight

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/meow/internal/config"
	"github.com/dshills/meow/internal/engine/buffer"
	"github.com/dshills/meow/internal/renderer/core"
)

func spansText(runes []rune, spans []buffer.Span) map[string]buffer.Category {
	out := make(map[string]buffer.Category)
	for _, s := range spans {
		out[string(runes[s.Start:s.End])] = s.Category
	}
	return out
}

func TestClassifyRust(t *testing.T) {
	syntax := SelectSyntax("main.rs")
	runes := []rune("fn main() { let x: u32 = 1; } // done fn")

	spans := Classify(runes, syntax)
	got := spansText(runes, spans)

	if got["fn"] != buffer.CategoryKeyword {
		t.Errorf("expected fn keyword, got %v", got["fn"])
	}
	if got["u32"] != buffer.CategoryType {
		t.Errorf("expected u32 type, got %v", got["u32"])
	}
	if got["// done fn"] != buffer.CategoryComment {
		t.Errorf("expected trailing comment span, got %v", spans)
	}
	if last := spans[len(spans)-1]; last.End != len(runes) || last.Category != buffer.CategoryComment {
		t.Errorf("expected final comment span to end the row, got %+v", last)
	}
}

func TestClassifyKeywordBeatsType(t *testing.T) {
	s := newSyntax(Syntax{Keywords: []string{"both"}, Types: []string{"both", "only"}})
	runes := []rune("both only")

	got := spansText(runes, Classify(runes, s))
	if got["both"] != buffer.CategoryKeyword {
		t.Errorf("expected keyword to win, got %v", got["both"])
	}
	if got["only"] != buffer.CategoryType {
		t.Errorf("expected type, got %v", got["only"])
	}
}

func TestClassifyCommentWins(t *testing.T) {
	syntax := SelectSyntax("x.py")
	runes := []rune(`s = "# not a string" if True`)

	spans := Classify(runes, syntax)
	for _, s := range spans {
		if s.Start >= 5 && s.Category != buffer.CategoryComment {
			t.Errorf("expected everything after marker to be comment, got %+v", s)
		}
	}
}

func TestClassifyWordBoundaries(t *testing.T) {
	syntax := SelectSyntax("a.go")
	runes := []rune("iffy if_x func")

	got := spansText(runes, Classify(runes, syntax))
	if _, ok := got["if"]; ok {
		t.Error("keyword matched inside a longer word")
	}
	if got["func"] != buffer.CategoryKeyword {
		t.Errorf("expected func keyword, got %v", got["func"])
	}
}

func TestClassifyEmptyRow(t *testing.T) {
	if spans := Classify(nil, SelectSyntax("a.c")); len(spans) != 0 {
		t.Errorf("expected no spans, got %v", spans)
	}
}

func TestClassifyPartitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z_ (){};:/#0-9é\t]{0,60}`).Draw(t, "row")
		syntax := rapid.SampledFrom(append([]*Syntax{PlainText}, Languages()...)).Draw(t, "syntax")
		runes := []rune(text)

		spans := Classify(runes, syntax)
		if len(runes) == 0 {
			if len(spans) != 0 {
				t.Fatalf("empty row produced spans %v", spans)
			}
			return
		}

		pos := 0
		for i, s := range spans {
			if s.Start != pos || s.End <= s.Start {
				t.Fatalf("span %d %+v does not continue at %d", i, s, pos)
			}
			if i > 0 && spans[i-1].Category == s.Category {
				t.Fatalf("adjacent spans %d and %d share category %v", i-1, i, s.Category)
			}
			pos = s.End
		}
		if pos != len(runes) {
			t.Fatalf("spans end at %d, row has %d characters", pos, len(runes))
		}

		again := Classify(runes, syntax)
		if len(again) != len(spans) {
			t.Fatal("classification is not deterministic")
		}
		for i := range spans {
			if spans[i] != again[i] {
				t.Fatal("classification is not deterministic")
			}
		}
	})
}

func TestSelectSyntax(t *testing.T) {
	tests := map[string]string{
		"main.rs":    "Rust",
		"x.h":        "C",
		"x.cpp":      "C++",
		"A.java":     "Java",
		"app.tsx":    "JavaScript",
		"script.py":  "Python",
		"main.go":    "Go",
		"README":     "Text",
		"notes.conf": "Text",
	}
	for name, want := range tests {
		if got := SelectSyntax(name).FileType; got != want {
			t.Errorf("SelectSyntax(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestFileType(t *testing.T) {
	if got := FileType("main.go"); got != "Go" {
		t.Errorf("expected Go, got %q", got)
	}
	if got := FileType(""); got != "Text" {
		t.Errorf("expected Text, got %q", got)
	}
	if got := FileType("config.yaml"); got != "YAML" {
		t.Errorf("expected chroma to name YAML, got %q", got)
	}
}

func TestHighlighterRefresh(t *testing.T) {
	buf := buffer.FromString("fn main() {\n  // hello\n}")
	h := New(SelectSyntax("main.rs"))

	if n := h.Refresh(buf); n != 3 {
		t.Fatalf("expected 3 rows on first refresh, got %d", n)
	}
	if buf.Row(0).Dirty() {
		t.Error("row should be clean after refresh")
	}
	if buf.Row(1).CategoryAt(2) != buffer.CategoryComment {
		t.Error("expected comment on row 1")
	}

	if n := h.Refresh(buf); n != 0 {
		t.Errorf("expected nothing to do, got %d", n)
	}

	buf.Insert(buffer.Pos(2, 0), 'x')
	if n := h.Refresh(buf); n != 1 {
		t.Errorf("expected only the edited row, got %d", n)
	}

	h.SetSyntax(SelectSyntax("main.py"), buf)
	if n := h.Refresh(buf); n != 3 {
		t.Errorf("expected every row after language change, got %d", n)
	}
	if buf.Row(0).CategoryAt(0) != buffer.CategoryPlain {
		t.Error("fn is not a python keyword")
	}
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	if theme.Background != core.MustHex("#1e1e1e") {
		t.Errorf("unexpected background %s", theme.Background)
	}
	if theme.Selection != core.MustHex("#3e4451") {
		t.Errorf("unexpected selection %s", theme.Selection)
	}
	for _, c := range []buffer.Category{buffer.CategoryKeyword, buffer.CategoryType, buffer.CategoryComment} {
		if theme.StyleFor(c) == theme.Text() {
			t.Errorf("category %s should be styled", c)
		}
	}
	if theme.StyleFor(buffer.CategoryPlain) != theme.Text() {
		t.Error("plain text should use the text style")
	}
}

func TestNewThemeFromChroma(t *testing.T) {
	theme, err := NewTheme("monokai", nil)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Name != "monokai" {
		t.Errorf("expected monokai, got %q", theme.Name)
	}
	if theme.Background == DefaultTheme().Background {
		t.Error("expected monokai background")
	}

	unknown, err := NewTheme("no-such-theme", nil)
	if err != nil {
		t.Fatal(err)
	}
	if unknown.Background != DefaultTheme().Background {
		t.Error("unknown theme should keep the default palette")
	}
}

func TestNewThemeFileOverrides(t *testing.T) {
	theme, err := NewTheme("default", &config.ThemeFile{
		Background:  "#000000",
		SelectionBg: "#112233",
		Keyword:     "#ff0000",
	})
	if err != nil {
		t.Fatal(err)
	}
	if theme.Background != core.MustHex("#000000") {
		t.Errorf("unexpected background %s", theme.Background)
	}
	if theme.Selection != core.MustHex("#112233") {
		t.Errorf("unexpected selection %s", theme.Selection)
	}
	kw := theme.StyleFor(buffer.CategoryKeyword)
	if kw.Foreground != core.MustHex("#ff0000") || kw.Background != theme.Background {
		t.Errorf("unexpected keyword style %+v", kw)
	}

	if _, err := NewTheme("default", &config.ThemeFile{Cursor: "nope"}); err == nil {
		t.Error("expected error for malformed color")
	}
}
