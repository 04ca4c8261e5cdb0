// Package display classifies a live viewport into named width buckets.
//
// A Display watches an Environment (a terminal, a bubbletea program, or a
// headless stub), keeps a derived State current across resizes, and notifies
// subscribed observers synchronously after every recompute. The State is a
// pure function of the viewport size, the configured thresholds, the
// mobile-breakpoint selector, and a platform snapshot taken once at
// construction.
package display

import "sync"

// Options configures a Display. The zero value uses the default thresholds
// and the default mobile breakpoint.
type Options struct {
	// Thresholds partially overrides the default column boundaries.
	// Missing keys keep their defaults.
	Thresholds map[Breakpoint]int

	// MobileBreakpoint is either a literal cutoff width ("580") or a
	// bucket name ("md"). Widths below the resolved cutoff classify as
	// mobile. Defaults to "md".
	MobileBreakpoint string
}

// State is the derived, read-only output of a Display. Exactly one of the
// five bucket flags is true for any width under ascending thresholds, and
// Name matches that flag. All fields are recomputed together on every
// resize; a reader never sees a partial update.
type State struct {
	XS bool `json:"xs"`
	SM bool `json:"sm"`
	MD bool `json:"md"`
	LG bool `json:"lg"`
	XL bool `json:"xl"`

	SMAndDown bool `json:"smAndDown"`
	SMAndUp   bool `json:"smAndUp"`
	MDAndDown bool `json:"mdAndDown"`
	MDAndUp   bool `json:"mdAndUp"`
	LGAndDown bool `json:"lgAndDown"`
	LGAndUp   bool `json:"lgAndUp"`

	Name   Breakpoint `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`

	Mobile bool `json:"mobile"`
	// MobileBreakpoint is the resolved cutoff width, or -1 when the
	// configured selector named no known bucket.
	MobileBreakpoint int `json:"mobileBreakpoint"`

	Platform   Platform   `json:"platform"`
	Thresholds Thresholds `json:"thresholds"`
}

// Display owns the current State and recomputes it whenever the viewport
// size changes. It is safe for concurrent use; observer callbacks run
// synchronously on the goroutine that triggered the recompute.
type Display struct {
	mu         sync.RWMutex
	env        Environment
	thresholds Thresholds
	mobileSel  string
	platform   Platform
	live       bool

	width  int
	height int
	state  State

	observers map[int]func(State)
	nextObs   int
	cancel    func()
	closed    bool
}

// New builds a Display over env. The platform snapshot is taken once here;
// if the environment can deliver resize notifications, a subscription is
// registered and held until Close.
func New(env Environment, opts Options) *Display {
	sel := opts.MobileBreakpoint
	if sel == "" {
		sel = DefaultMobileBreakpoint
	}

	d := &Display{
		env:        env,
		thresholds: resolveThresholds(opts.Thresholds),
		mobileSel:  sel,
		platform:   ParsePlatform(env.Ident(), env.Touch()),
		live:       env.HasViewport(),
		observers:  make(map[int]func(State)),
	}

	if d.live {
		d.width, d.height = env.Size()
	}
	d.state = d.compute(d.width, d.height)

	if env.CanObserve() {
		d.cancel = env.Notify(d.Refresh)
	}

	return d
}

// compute derives a full State from a width and height. Pure; callers hold
// whatever locking they need.
func (d *Display) compute(width, height int) State {
	t := d.thresholds

	xs := width < t.XS
	sm := width < t.SM && !xs
	md := width < t.MD && !(sm || xs)
	lg := width < t.LG && !(md || sm || xs)
	xl := width >= t.LG

	cutoff, ok := resolveMobileCutoff(d.mobileSel, t)
	echo := cutoff
	if !ok {
		echo = -1
	}

	var mobile bool
	if d.live {
		mobile = ok && width < cutoff
	} else {
		// No real viewport to measure, so fall back to platform flags.
		mobile = d.platform.Android || d.platform.IOS || d.platform.Opera
	}

	return State{
		XS: xs,
		SM: sm,
		MD: md,
		LG: lg,
		XL: xl,

		SMAndDown: !(md || lg || xl),
		SMAndUp:   !xs,
		MDAndDown: !(lg || xl),
		MDAndUp:   !(xs || sm),
		LGAndDown: !xl,
		LGAndUp:   !(xs || sm || md),

		Name:   Classify(width, t),
		Width:  width,
		Height: height,

		Mobile:           mobile,
		MobileBreakpoint: echo,

		Platform:   d.platform,
		Thresholds: t,
	}
}

// State returns a copy of the current derived state.
func (d *Display) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Resize sets the viewport dimensions and recomputes the state, notifying
// observers. Push-style environments (a bubbletea program handling
// WindowSizeMsg) call this directly. Resizes after Close are ignored, as
// are resizes in headless contexts, where dimensions stay at zero.
func (d *Display) Resize(width, height int) {
	d.mu.Lock()
	if d.closed || !d.live {
		d.mu.Unlock()
		return
	}
	d.width, d.height = width, height
	d.state = d.compute(width, height)
	state := d.state
	obs := make([]func(State), 0, len(d.observers))
	for _, fn := range d.observers {
		obs = append(obs, fn)
	}
	d.mu.Unlock()

	for _, fn := range obs {
		fn(state)
	}
}

// Refresh re-reads the environment's current size and recomputes the
// state. It is the resize notification callback, and can be called
// directly when the environment cannot deliver notifications itself.
func (d *Display) Refresh() {
	w, h := d.env.Size()
	d.Resize(w, h)
}

// Subscribe registers an observer called synchronously with the new State
// after every recompute. The returned func removes the observer; calling
// it more than once is harmless.
func (d *Display) Subscribe(fn func(State)) (cancel func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id := d.nextObs
	d.nextObs++
	d.observers[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.observers, id)
	}
}

// Close releases the resize subscription and drops all observers. The last
// computed State remains readable. Close is idempotent.
func (d *Display) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.observers = make(map[int]func(State))
	return nil
}
