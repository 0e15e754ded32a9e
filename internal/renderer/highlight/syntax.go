package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// Syntax is the lexical table for one language: the words to color and the
// marker that starts a comment running to the end of the row.
type Syntax struct {
	// FileType is the display name shown in the status line.
	FileType string

	// Extensions lists file extensions without the leading dot.
	Extensions []string

	Keywords []string
	Types    []string

	// Comment is the single-line comment marker, or "" for none.
	Comment string

	keywords map[string]struct{}
	types    map[string]struct{}
}

func newSyntax(s Syntax) *Syntax {
	s.keywords = make(map[string]struct{}, len(s.Keywords))
	for _, k := range s.Keywords {
		s.keywords[k] = struct{}{}
	}
	s.types = make(map[string]struct{}, len(s.Types))
	for _, k := range s.Types {
		s.types[k] = struct{}{}
	}
	return &s
}

// IsKeyword returns true if word is a keyword of the language.
func (s *Syntax) IsKeyword(word string) bool {
	_, ok := s.keywords[word]
	return ok
}

// IsType returns true if word names a type of the language.
func (s *Syntax) IsType(word string) bool {
	_, ok := s.types[word]
	return ok
}

// PlainText has no keywords and no comment marker.
var PlainText = newSyntax(Syntax{FileType: "Text"})

var builtin = []*Syntax{
	newSyntax(Syntax{
		FileType:   "Rust",
		Extensions: []string{"rs"},
		Keywords: []string{
			"fn", "let", "mut", "pub", "use", "mod", "struct", "enum", "impl", "trait", "match",
			"if", "else", "for", "while", "loop", "return", "break", "continue", "const", "static",
			"type", "as", "ref", "in", "where", "crate", "super", "self", "true", "false",
			"None", "Some", "Ok", "Err",
		},
		Types: []string{
			"Self", "i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64", "u128",
			"usize", "f32", "f64", "bool", "char", "str", "String", "Vec", "Option", "Result", "Box",
		},
		Comment: "//",
	}),
	newSyntax(Syntax{
		FileType:   "C",
		Extensions: []string{"c", "h"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else", "struct",
			"union", "typedef", "static", "enum", "class", "case", "NULL",
		},
		Types:   []string{"int", "long", "double", "float", "char", "unsigned", "signed", "void"},
		Comment: "//",
	}),
	newSyntax(Syntax{
		FileType:   "C++",
		Extensions: []string{"cpp", "hpp", "cc", "cxx", "hh"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else", "struct",
			"union", "typedef", "static", "enum", "class", "case", "public", "private",
			"protected", "friend", "inline", "virtual", "template", "using", "namespace",
			"true", "false", "NULL",
		},
		Types:   []string{"int", "long", "double", "float", "char", "unsigned", "signed", "void", "bool", "auto"},
		Comment: "//",
	}),
	newSyntax(Syntax{
		FileType:   "Java",
		Extensions: []string{"java"},
		Keywords: []string{
			"class", "public", "private", "protected", "static", "final", "return", "if",
			"else", "for", "while", "do", "break", "continue", "switch", "case", "default",
			"try", "catch", "finally", "import", "package", "new", "this", "super", "true",
			"false", "null",
		},
		Types:   []string{"void", "int", "double", "float", "boolean", "char", "long", "short", "byte", "String"},
		Comment: "//",
	}),
	newSyntax(Syntax{
		FileType:   "JavaScript",
		Extensions: []string{"js", "jsx", "ts", "tsx"},
		Keywords: []string{
			"function", "let", "var", "const", "if", "else", "for", "while", "do", "return",
			"break", "continue", "switch", "case", "default", "try", "catch", "finally",
			"class", "extends", "new", "this", "import", "export", "from", "async", "await",
			"true", "false", "null", "undefined",
		},
		Types:   []string{"number", "string", "boolean", "any", "void", "Array", "Object", "Promise"},
		Comment: "//",
	}),
	newSyntax(Syntax{
		FileType:   "Python",
		Extensions: []string{"py"},
		Keywords: []string{
			"def", "class", "if", "elif", "else", "for", "while", "break", "continue", "return",
			"import", "from", "as", "pass", "try", "except", "finally", "raise", "with", "lambda",
			"global", "nonlocal", "True", "False", "None", "and", "or", "not", "is", "in",
		},
		Types:   []string{"int", "float", "str", "bool", "list", "dict", "tuple", "set", "bytes"},
		Comment: "#",
	}),
	newSyntax(Syntax{
		FileType:   "Go",
		Extensions: []string{"go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func", "go", "goto", "if", "import", "interface", "map",
			"package", "range", "return", "select", "struct", "switch", "type", "var",
			"true", "false", "nil", "iota",
		},
		Types: []string{
			"int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32",
			"uint64", "uintptr", "float32", "float64", "complex64", "complex128", "bool",
			"byte", "rune", "string", "error", "any",
		},
		Comment: "//",
	}),
}

// Languages returns the built-in syntax tables.
func Languages() []*Syntax {
	return builtin
}

// SelectSyntax returns the table for filename by extension, or PlainText.
func SelectSyntax(filename string) *Syntax {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return PlainText
	}
	for _, s := range builtin {
		for _, e := range s.Extensions {
			if e == ext {
				return s
			}
		}
	}
	return PlainText
}

// FileType names the language of filename for display. Files without a
// built-in table are named by chroma's lexer registry when it knows them.
func FileType(filename string) string {
	if s := SelectSyntax(filename); s != PlainText {
		return s.FileType
	}
	if filename == "" {
		return PlainText.FileType
	}
	if l := lexers.Match(filepath.Base(filename)); l != nil {
		return l.Config().Name
	}
	return PlainText.FileType
}
