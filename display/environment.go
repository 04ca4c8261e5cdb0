package display

// Environment is what a Display needs from its host: a viewport to measure,
// an identification string for platform detection, capability probes, and
// optionally a resize notification source.
type Environment interface {
	// Size reports the current viewport dimensions. Implementations with
	// no viewport report 0, 0.
	Size() (width, height int)

	// Ident returns the environment-identification string used for
	// platform detection.
	Ident() string

	// Touch reports whether the environment has a touch-style input
	// capability (mouse reporting, for terminals).
	Touch() bool

	// HasViewport reports whether a live viewport exists at all. When
	// false the Display treats the context as headless: dimensions stay
	// at zero and mobile classification falls back to platform flags.
	HasViewport() bool

	// CanObserve reports whether resize notifications are available.
	CanObserve() bool

	// Notify registers a callback invoked on each resize notification and
	// returns a cancel func releasing the registration. Implementations
	// that cannot observe return a no-op cancel.
	Notify(fn func()) (cancel func())
}

// SSRIdent is the sentinel identification string reported when no real
// environment string is available.
const SSRIdent = "ssr"

type headlessEnv struct {
	ident string
}

// Headless returns an Environment with no viewport, for server-side and CI
// contexts. The ident string is used as-is for platform detection; when
// empty it defaults to the ssr sentinel.
func Headless(ident string) Environment {
	if ident == "" {
		ident = SSRIdent
	}
	return headlessEnv{ident: ident}
}

type fixedEnv struct {
	width, height int
	ident         string
}

// Fixed returns a live but static Environment with the given dimensions,
// for one-shot classification and tests. It never notifies.
func Fixed(width, height int, ident string) Environment {
	return fixedEnv{width: width, height: height, ident: ident}
}

func (e fixedEnv) Size() (int, int) { return e.width, e.height }

func (e fixedEnv) Ident() string { return e.ident }

func (fixedEnv) Touch() bool { return false }

func (fixedEnv) HasViewport() bool { return true }

func (fixedEnv) CanObserve() bool { return false }

func (fixedEnv) Notify(func()) (cancel func()) { return func() {} }

func (headlessEnv) Size() (int, int) { return 0, 0 }

func (e headlessEnv) Ident() string { return e.ident }

func (headlessEnv) Touch() bool { return false }

func (headlessEnv) HasViewport() bool { return false }

func (headlessEnv) CanObserve() bool { return false }

func (headlessEnv) Notify(func()) (cancel func()) { return func() {} }
