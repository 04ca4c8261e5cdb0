//go:build unix

package display

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify delivers resize notifications via SIGWINCH. The returned cancel
// func stops signal delivery and shuts the forwarding goroutine down.
func (e *termEnv) Notify(fn func()) (cancel func()) {
	if !e.CanObserve() {
		return func() {}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sig:
				fn()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sig)
		close(done)
	}
}
