package store

import "time"

// ViewportSize is the last observed terminal size, persisted so a later
// headless run can be seeded with realistic dimensions.
type ViewportSize struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	SeenAt time.Time `json:"seen_at"`
}

// ResizeEvent is one entry in the append-only resize log.
type ResizeEvent struct {
	Time   time.Time `json:"time"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Name   string    `json:"name"`
	Mobile bool      `json:"mobile"`
}
