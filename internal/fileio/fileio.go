// Package fileio reads and writes documents.
//
// Content is loaded as raw bytes and must be valid UTF-8. Anything else is
// rejected with ErrInvalidEncoding. A missing file is not an error for the
// editor: it starts a new document under that name.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Errors returned by file operations.
var (
	// ErrInvalidEncoding indicates content that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")

	// ErrNoFileName indicates a save without a target path.
	ErrNoFileName = errors.New("no file name")
)

// FS is the file system the editor reads and writes through.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file content, creating it if needed.
	WriteFile(path string, data []byte) error
}

// Files loads and saves documents through an FS.
type Files struct {
	fs FS
}

// New creates Files over fsys. A nil fsys means the OS file system.
func New(fsys FS) *Files {
	if fsys == nil {
		fsys = NewOSFS()
	}
	return &Files{fs: fsys}
}

// Load reads path. Missing files yield an error matching fs.ErrNotExist;
// content that is not UTF-8 yields an error matching ErrInvalidEncoding.
func (f *Files) Load(path string) ([]byte, error) {
	data, err := f.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if enc := DetectEncoding(data); !enc.Supported() {
		return nil, fmt.Errorf("%s: %w (detected %s)", path, ErrInvalidEncoding, enc)
	}
	return data, nil
}

// Save writes data to path and returns the number of bytes written.
func (f *Files) Save(path string, data []byte) (int, error) {
	if path == "" {
		return 0, ErrNoFileName
	}
	if err := f.fs.WriteFile(path, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// IsNotExist reports whether err means the file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
