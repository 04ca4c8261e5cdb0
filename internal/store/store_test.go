package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLastSizeRoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.LastSize()
	require.NoError(t, err)
	assert.False(t, found, "fresh store has no last size")

	want := ViewportSize{Width: 120, Height: 40, SeenAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, s.SaveLastSize(want))

	got, found, err := s.LastSize()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)

	// Overwrites, never appends
	want2 := ViewportSize{Width: 80, Height: 24, SeenAt: want.SeenAt}
	require.NoError(t, s.SaveLastSize(want2))
	got, _, err = s.LastSize()
	require.NoError(t, err)
	assert.Equal(t, want2, got)
}

func TestResizeLogNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		ev := ResizeEvent{
			Time:   base.Add(time.Duration(i) * time.Second),
			Width:  100 + i,
			Height: 40,
			Name:   "xs",
		}
		require.NoError(t, s.AppendResize(ev))
	}

	events, err := s.RecentResizes(3)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 104, events[0].Width, "newest first")
	assert.Equal(t, 102, events[2].Width)

	all, err := s.RecentResizes(100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestResizeLogPrunes(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < maxResizeEvents+25; i++ {
		require.NoError(t, s.AppendResize(ResizeEvent{Width: i, Height: 1, Name: "xs"}))
	}

	events, err := s.RecentResizes(maxResizeEvents + 100)
	require.NoError(t, err)
	assert.Len(t, events, maxResizeEvents)
	assert.Equal(t, maxResizeEvents+24, events[0].Width, "newest entry survives pruning")
}
