package tui

type View int

const (
	ViewDashboard View = iota
	ViewHistory
)
