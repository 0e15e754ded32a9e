package app

import (
	"path/filepath"

	"github.com/dshills/meow/internal/fileio"
	"github.com/dshills/meow/internal/watcher"
)

// checkDisk compares the document's file with what was last loaded or
// saved and reports a change on the message line. Writes made by the editor
// itself leave the checksum unchanged and are not reported.
func (e *Editor) checkDisk(ev watcher.Event) {
	if e.fileName == "" || !samePath(ev.Path, e.fileName) {
		return
	}
	e.logger.Debug("disk event %s on %s", ev.Op, ev.Path)

	data, err := e.files.Load(e.fileName)
	if err != nil {
		if fileio.IsNotExist(err) {
			e.setWarning("File removed from disk: %s", e.fileName)
			e.diskSum = 0
			return
		}
		e.logger.Warn("reading %s: %v", e.fileName, err)
		return
	}

	sum := checksum(data)
	if sum == e.diskSum {
		return
	}
	e.diskSum = sum
	e.setWarning("File changed on disk: %s", e.fileName)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
