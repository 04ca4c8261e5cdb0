//go:build !unix

package display

import "time"

// pollInterval is how often the size is compared on platforms without a
// resize signal.
const pollInterval = 250 * time.Millisecond

// Notify polls the terminal size and invokes fn when it changes. Windows
// has no SIGWINCH equivalent usable from a library, so polling it is.
func (e *termEnv) Notify(fn func()) (cancel func()) {
	if !e.CanObserve() {
		return func() {}
	}

	done := make(chan struct{})

	go func() {
		lastW, lastH := e.Size()
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w, h := e.Size()
				if w != lastW || h != lastH {
					lastW, lastH = w, h
					fn()
				}
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}
