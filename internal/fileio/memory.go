package fileio

import (
	"io/fs"
	"path"
)

// MemFS implements FS in memory. It is used in tests.
type MemFS struct {
	files map[string][]byte

	// FailWrites, when set, is returned by every WriteFile.
	FailWrites error
}

// NewMemFS creates a new in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(p string) ([]byte, error) {
	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

// WriteFile stores a copy of data at p.
func (m *MemFS) WriteFile(p string, data []byte) error {
	if m.FailWrites != nil {
		return &fs.PathError{Op: "write", Path: p, Err: m.FailWrites}
	}
	m.files[path.Clean(p)] = append([]byte(nil), data...)
	return nil
}

// Exists reports whether p has been written.
func (m *MemFS) Exists(p string) bool {
	_, ok := m.files[path.Clean(p)]
	return ok
}
