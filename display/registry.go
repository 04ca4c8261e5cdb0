package display

import (
	"errors"
	"sync"
)

// ErrNotInitialized is returned by Default before SetDefault has run. It is
// a distinct sentinel so callers can tell a setup-ordering mistake apart
// from ordinary absence of data.
var ErrNotInitialized = errors.New("display: default display not initialized")

var (
	defaultMu      sync.RWMutex
	defaultDisplay *Display
)

// SetDefault registers d as the process-wide shared display. Passing nil
// clears the registration.
func SetDefault(d *Display) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultDisplay = d
}

// Default returns the process-wide shared display, or ErrNotInitialized if
// SetDefault has not been called.
func Default() (*Display, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultDisplay == nil {
		return nil, ErrNotInitialized
	}
	return defaultDisplay, nil
}

// ResetDefault clears the shared display, closing it if one was set.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDisplay != nil {
		_ = defaultDisplay.Close()
		defaultDisplay = nil
	}
}
