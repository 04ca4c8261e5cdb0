// Package validation provides advisory checks for display configuration.
// The classifier itself accepts anything; these checks exist so a config
// file with a scrambled threshold order produces a warning instead of
// silently odd bucket boundaries.
package validation

import (
	"fmt"
	"sort"
	"strconv"
)

// thresholdOrder is the required ascending order of the bucket boundaries.
var thresholdOrder = []string{"xs", "sm", "md", "lg"}

// CheckDisplay returns human-readable warnings for the display config
// section. An empty slice means nothing looked wrong.
func CheckDisplay(thresholds map[string]int, mobileBreakpoint string) []string {
	warnings := CheckThresholds(thresholds)

	if mobileBreakpoint != "" {
		if _, err := strconv.Atoi(mobileBreakpoint); err != nil {
			if !isBucketName(mobileBreakpoint) {
				warnings = append(warnings, fmt.Sprintf(
					"mobile_breakpoint %q is neither a width nor a bucket name; mobile will always be false", mobileBreakpoint))
			}
		}
	}

	return warnings
}

// CheckThresholds warns about negative, unknown, or non-ascending
// boundaries.
func CheckThresholds(thresholds map[string]int) []string {
	var warnings []string

	var unknown []string
	for name := range thresholds {
		if !isBucketName(name) || name == "xl" {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		warnings = append(warnings, fmt.Sprintf("threshold %q is not a bucket boundary and will be ignored", name))
	}

	prev := 0
	prevName := ""
	for _, name := range thresholdOrder {
		v, ok := thresholds[name]
		if !ok {
			continue
		}
		if v < 0 {
			warnings = append(warnings, fmt.Sprintf("threshold %q is negative (%d)", name, v))
		}
		if prevName != "" && v < prev {
			warnings = append(warnings, fmt.Sprintf(
				"threshold %q (%d) is below %q (%d); lower buckets take priority in the overlap", name, v, prevName, prev))
		}
		prev, prevName = v, name
	}

	return warnings
}

func isBucketName(s string) bool {
	switch s {
	case "xs", "sm", "md", "lg", "xl":
		return true
	}
	return false
}
