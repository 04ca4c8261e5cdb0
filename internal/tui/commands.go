package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pders01/brkpt/display"
	"github.com/pders01/brkpt/internal/store"
)

type historyLoadedMsg struct {
	events []store.ResizeEvent
}

type errorMsg struct {
	err error
}

// ConfigReloadedMsg is sent from outside the program (the config watcher)
// when the config file changed on disk.
type ConfigReloadedMsg struct{}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if a.store == nil {
			return historyLoadedMsg{}
		}
		events, err := a.store.RecentResizes(100)
		if err != nil {
			return errorMsg{err: err}
		}
		return historyLoadedMsg{events: events}
	}
}

func (a *App) recordResize(s display.State) tea.Cmd {
	if a.store == nil {
		return nil
	}
	ev := store.ResizeEvent{
		Time:   time.Now(),
		Width:  s.Width,
		Height: s.Height,
		Name:   string(s.Name),
		Mobile: s.Mobile,
	}
	size := store.ViewportSize{Width: s.Width, Height: s.Height, SeenAt: ev.Time}
	return func() tea.Msg {
		if err := a.store.AppendResize(ev); err != nil {
			return errorMsg{err: err}
		}
		if err := a.store.SaveLastSize(size); err != nil {
			return errorMsg{err: err}
		}
		return nil
	}
}
