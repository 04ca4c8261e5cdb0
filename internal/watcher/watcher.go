package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pders01/brkpt/internal/debuglog"
)

// ConfigWatcher watches a single config file and invokes a callback after
// writes settle. The parent directory is watched rather than the file
// itself so atomic save strategies (write temp, rename over) still fire.
type ConfigWatcher struct {
	path     string
	fsw      *fsnotify.Watcher
	debounce *Debouncer
	done     chan struct{}
}

// Watch starts watching path and calls onChange (debounced) after each
// modification. Close releases the watch.
func Watch(path string, window time.Duration, onChange func()) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &ConfigWatcher{
		path:     abs,
		fsw:      fsw,
		debounce: NewDebouncer(window),
		done:     make(chan struct{}),
	}

	go w.run(onChange)
	return w, nil
}

func (w *ConfigWatcher) run(onChange func()) {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			debuglog.Debugf("config watcher: %s on %s", ev.Op, ev.Name)
			w.debounce.Trigger(onChange)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			debuglog.Warnf("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops watching and cancels any pending reload.
func (w *ConfigWatcher) Close() error {
	close(w.done)
	w.debounce.Stop()
	return w.fsw.Close()
}
