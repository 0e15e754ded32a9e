// Package highlight provides lexical syntax highlighting.
//
// Highlighting is incremental: the buffer queues every row it changes, and
// once per frame the Highlighter drains that queue and reclassifies only
// those rows. Spans are stored on the rows themselves.
package highlight

import (
	"github.com/dshills/meow/internal/engine/buffer"
)

// Highlighter keeps row spans current for one buffer's language.
type Highlighter struct {
	syntax *Syntax
}

// New creates a highlighter for syntax. A nil syntax means plain text.
func New(syntax *Syntax) *Highlighter {
	if syntax == nil {
		syntax = PlainText
	}
	return &Highlighter{syntax: syntax}
}

// Syntax returns the active language table.
func (h *Highlighter) Syntax() *Syntax {
	return h.syntax
}

// SetSyntax switches language and queues every row of buf for
// reclassification.
func (h *Highlighter) SetSyntax(syntax *Syntax, buf *buffer.Buffer) {
	if syntax == nil {
		syntax = PlainText
	}
	if syntax == h.syntax {
		return
	}
	h.syntax = syntax
	buf.MarkAllDirty()
}

// Refresh drains the dirty queue of buf and recomputes spans for those rows.
// It returns the number of rows processed.
func (h *Highlighter) Refresh(buf *buffer.Buffer) int {
	rows := buf.DrainDirty()
	for _, r := range rows {
		r.SetSpans(Classify(r.Runes(), h.syntax))
	}
	return len(rows)
}
