package buffer

// DefaultTabSize is the tab size used when none is configured.
const DefaultTabSize = 4

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithLineEnding sets the line ending of a new empty buffer.
// FromBytes detects the line ending from content and ignores this option.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithTabSize sets the tab size used to compute row render widths.
func WithTabSize(size int) Option {
	return func(b *Buffer) {
		if size > 0 {
			b.tabSize = size
		}
	}
}
