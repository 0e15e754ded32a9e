package fileio

import (
	"bytes"
	"unicode/utf8"
)

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian.
	EncodingUTF16BE Encoding = "utf-16be"

	// EncodingUnknown is anything that is not valid UTF-8.
	EncodingUnknown Encoding = "unknown"
)

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Supported reports whether the editor can open content in e. A UTF-8 BOM
// is kept as the first character of the document.
func (e Encoding) Supported() bool {
	return e == EncodingUTF8 || e == EncodingUTF8BOM
}

// DetectEncoding identifies the encoding of file content from its BOM and
// by validating UTF-8.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		if utf8.Valid(content[len(bomUTF8):]) {
			return EncodingUTF8BOM
		}
		return EncodingUnknown
	case bytes.HasPrefix(content, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, bomUTF16BE):
		return EncodingUTF16BE
	case utf8.Valid(content):
		return EncodingUTF8
	default:
		return EncodingUnknown
	}
}
