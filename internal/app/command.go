package app

import (
	"fmt"
	"strings"

	"github.com/dshills/meow/internal/renderer/highlight"
)

// execute runs a command line: "w", "w <path>", "q" or "wq".
func (e *Editor) execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	e.logger.Debug("command %q", line)

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch {
	case name == "w":
		return e.write(arg)
	case name == "q" && arg == "":
		e.quit = true
		return nil
	case name == "wq" && arg == "":
		if err := e.write(""); err != nil {
			return err
		}
		e.quit = true
		return nil
	default:
		e.setError("Not an editor command: %s", line)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, line)
	}
}

// write saves the document to path, or to its own file when path is empty.
// A document without a name adopts path.
func (e *Editor) write(path string) error {
	target := path
	if target == "" {
		target = e.fileName
	}
	if target == "" {
		e.setError("No file name")
		return ErrNoFileName
	}

	data := e.buf.Bytes()
	n, err := e.files.Save(target, data)
	if err != nil {
		opErr := NewOperationError("write", target, err)
		e.logger.Error("%v", opErr)
		e.setError("Error writing %s: %v", target, err)
		return opErr
	}

	if e.fileName == "" {
		e.fileName = target
		e.highlighter.SetSyntax(highlight.SelectSyntax(target), e.buf)
	}
	if target == e.fileName {
		e.buf.MarkSaved()
		e.diskSum = checksum(data)
	}
	e.logger.Info("wrote %d bytes to %s", n, target)
	e.setMessage("%d bytes written", n)
	return nil
}
