package watch

import (
	"errors"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a fixed set of files. It watches the parent
// directories so that editors which replace files by rename are caught too.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	files    map[string]bool
	isClosed bool
}

func New(paths ...string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{fsnotify: fsWatch, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatch.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := fsWatch.Add(d); err != nil {
			fsWatch.Close()
			return nil, err
		}
	}
	return w, nil
}

// Changed drains pending events without blocking and reports whether any
// watched file was created or written since the last call.
func (w *Watcher) Changed() (bool, error) {
	if w.isClosed {
		return false, errors.New("watcher already closed")
	}
	changed := false
	var firstErr error
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return changed, firstErr
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			abs, err := filepath.Abs(e.Name)
			if err == nil && w.files[abs] {
				changed = true
			}
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return changed, firstErr
			}
			if firstErr == nil {
				firstErr = err
			}
		default:
			return changed, firstErr
		}
	}
}

func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	return w.fsnotify.Close()
}
