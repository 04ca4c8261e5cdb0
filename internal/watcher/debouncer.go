// Package watcher reloads configuration when the config file changes on
// disk. Editors fire several filesystem events per save, so changes are
// debounced before the reload callback runs.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default coalescing window.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer coalesces rapid triggers into a single callback invocation.
// Only the last callback scheduled within the window runs.
type Debouncer struct {
	window time.Duration
	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
}

// NewDebouncer returns a Debouncer with the given window, or
// DefaultDebounce when zero.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the window elapses. A second Trigger
// within the window supersedes the first.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A newer trigger may have fired between the timer expiring and
		// this callback taking the lock.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
