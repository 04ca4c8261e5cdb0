package display

import "strconv"

// Breakpoint names the five width buckets.
type Breakpoint string

const (
	XS Breakpoint = "xs"
	SM Breakpoint = "sm"
	MD Breakpoint = "md"
	LG Breakpoint = "lg"
	XL Breakpoint = "xl"
)

// Thresholds holds the four ascending column boundaries that partition
// widths into the five buckets. A width below XS is "xs", below SM is "sm",
// and so on; anything at or above LG is "xl". Each boundary is the
// exclusive upper bound of the bucket it names, not the lower bound, so a
// map like {xs: 0} leaves the xs bucket empty for non-negative widths.
//
// Ordering is not validated. If the boundaries are not ascending, lower
// buckets win: a width satisfying both the xs and sm raw comparisons is
// still classified xs.
type Thresholds struct {
	XS int `json:"xs" toml:"xs"`
	SM int `json:"sm" toml:"sm"`
	MD int `json:"md" toml:"md"`
	LG int `json:"lg" toml:"lg"`
}

// DefaultThresholds returns the standard column boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{XS: 600, SM: 960, MD: 1280, LG: 1920}
}

// DefaultMobileBreakpoint is the cutoff selector used when none is configured.
const DefaultMobileBreakpoint = "md"

// resolveThresholds merges a partial override map over the defaults.
// Unknown keys are ignored.
func resolveThresholds(overrides map[Breakpoint]int) Thresholds {
	t := DefaultThresholds()
	for name, v := range overrides {
		switch name {
		case XS:
			t.XS = v
		case SM:
			t.SM = v
		case MD:
			t.MD = v
		case LG:
			t.LG = v
		}
	}
	return t
}

// value looks up a boundary by bucket name. The xl bucket has no boundary.
func (t Thresholds) value(name Breakpoint) (int, bool) {
	switch name {
	case XS:
		return t.XS, true
	case SM:
		return t.SM, true
	case MD:
		return t.MD, true
	case LG:
		return t.LG, true
	}
	return 0, false
}

// Classify returns the bucket a width falls into under the given thresholds.
func Classify(width int, t Thresholds) Breakpoint {
	switch {
	case width < t.XS:
		return XS
	case width < t.SM:
		return SM
	case width < t.MD:
		return MD
	case width < t.LG:
		return LG
	}
	return XL
}

// resolveMobileCutoff turns a mobile-breakpoint selector into a numeric
// cutoff. A selector that parses as an integer is used directly; otherwise
// it is treated as a bucket name and looked up in the thresholds. An
// unrecognized name resolves to nothing, which makes the display
// never-mobile in viewport contexts.
func resolveMobileCutoff(selector string, t Thresholds) (int, bool) {
	if selector == "" {
		selector = DefaultMobileBreakpoint
	}
	if n, err := strconv.Atoi(selector); err == nil {
		return n, true
	}
	return t.value(Breakpoint(selector))
}
