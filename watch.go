package sandbox

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to shader directories. Events are queued by
// fsnotify and drained by Pending on the render thread.
type Watcher struct {
	fw *fsnotify.Watcher
}

// NewWatcher watches each of dirs. Duplicate directories are watched once.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	seen := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	return &Watcher{fw: fw}, nil
}

// Pending drains queued events without blocking and reports whether any of
// them modified, created, renamed or removed a file.
func (w *Watcher) Pending() bool {
	changed := false
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return changed
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				logger.Debug("shader changed", "file", event.Name, "op", event.Op.String())
				changed = true
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return changed
			}
			logger.Warn("shader watcher", "err", err)
		default:
			return changed
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
