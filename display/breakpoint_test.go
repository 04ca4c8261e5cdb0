package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDefaults(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		width int
		want  Breakpoint
	}{
		{0, XS},
		{599, XS},
		{600, SM},
		{959, SM},
		{960, MD},
		{1279, MD},
		{1280, LG},
		{1919, LG},
		{1920, XL},
		{5000, XL},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.width, th), "width %d", tt.width)
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	// Boundaries are exclusive upper bounds of the buckets they name: an
	// xs boundary of 0 means no non-negative width classifies xs, and
	// 339 lands in sm because it is under the sm boundary of 340.
	th := resolveThresholds(map[Breakpoint]int{XS: 0, SM: 340, MD: 540, LG: 800})

	assert.Equal(t, XS, Classify(-1, th))
	assert.Equal(t, SM, Classify(0, th))
	assert.Equal(t, SM, Classify(339, th))
	assert.Equal(t, MD, Classify(340, th))
	assert.Equal(t, XL, Classify(800, th))
}

func TestResolveThresholdsPartialOverride(t *testing.T) {
	th := resolveThresholds(map[Breakpoint]int{SM: 700})

	assert.Equal(t, 600, th.XS, "unspecified fields keep their defaults")
	assert.Equal(t, 700, th.SM)
	assert.Equal(t, 1280, th.MD)
	assert.Equal(t, 1920, th.LG)

	// Unknown keys are ignored, xl included: it has no boundary.
	th = resolveThresholds(map[Breakpoint]int{XL: 4000, "huge": 9000})
	assert.Equal(t, DefaultThresholds(), th)
}

func TestResolveThresholdsNil(t *testing.T) {
	assert.Equal(t, DefaultThresholds(), resolveThresholds(nil))
}

func TestResolveMobileCutoff(t *testing.T) {
	th := DefaultThresholds()

	cutoff, ok := resolveMobileCutoff("md", th)
	require.True(t, ok)
	assert.Equal(t, 1280, cutoff)

	cutoff, ok = resolveMobileCutoff("580", th)
	require.True(t, ok)
	assert.Equal(t, 580, cutoff)

	// Empty selector falls back to the default bucket name.
	cutoff, ok = resolveMobileCutoff("", th)
	require.True(t, ok)
	assert.Equal(t, 1280, cutoff)

	// Unknown names resolve to nothing.
	_, ok = resolveMobileCutoff("tablet", th)
	assert.False(t, ok)
	_, ok = resolveMobileCutoff("xl", th)
	assert.False(t, ok)
}
