package highlight

import (
	"unicode"

	"github.com/dshills/meow/internal/engine/buffer"
)

// Classify splits a row into spans in a single left-to-right scan.
//
// Word runs (letters, digits and '_') are keywords, then types, then plain.
// Everything from the first occurrence of the comment marker to the end of
// the row is comment. Adjacent spans of the same category are merged, so the
// result covers [0, len(runes)) with no gaps or overlaps. An empty row has no
// spans.
func Classify(runes []rune, syntax *Syntax) []buffer.Span {
	if len(runes) == 0 {
		return nil
	}
	if syntax == nil {
		syntax = PlainText
	}

	end := len(runes)
	if c := indexOf(runes, []rune(syntax.Comment)); c >= 0 {
		end = c
	}

	var spans []buffer.Span
	for i := 0; i < end; {
		j := i + 1
		cat := buffer.CategoryPlain
		if isWordRune(runes[i]) {
			for j < end && isWordRune(runes[j]) {
				j++
			}
			word := string(runes[i:j])
			switch {
			case syntax.IsKeyword(word):
				cat = buffer.CategoryKeyword
			case syntax.IsType(word):
				cat = buffer.CategoryType
			}
		}
		spans = appendSpan(spans, buffer.Span{Start: i, End: j, Category: cat})
		i = j
	}
	if end < len(runes) {
		spans = appendSpan(spans, buffer.Span{Start: end, End: len(runes), Category: buffer.CategoryComment})
	}
	return spans
}

func appendSpan(spans []buffer.Span, s buffer.Span) []buffer.Span {
	if n := len(spans); n > 0 && spans[n-1].Category == s.Category && spans[n-1].End == s.Start {
		spans[n-1].End = s.End
		return spans
	}
	return append(spans, s)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func indexOf(hay, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for k, r := range needle {
			if hay[i+k] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
