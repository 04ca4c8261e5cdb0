package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/brkpt/display"
	"github.com/pders01/brkpt/internal/config"
	"github.com/pders01/brkpt/internal/debuglog"
	"github.com/pders01/brkpt/internal/store"
)

// staticEnv strips the observe capability from an environment. Inside a
// bubbletea program resize updates arrive as WindowSizeMsg, so letting the
// display also listen for SIGWINCH would double-deliver every resize.
type staticEnv struct {
	display.Environment
}

func (staticEnv) CanObserve() bool { return false }

type App struct {
	cfg        *config.Config
	configPath string
	env        display.Environment
	disp       *display.Display
	store      *store.Store

	state    display.State
	view     View
	histList list.Model
	help     help.Model
	keys     keyMap

	width  int
	height int
	err    error
}

func NewApp(cfg *config.Config, configPath string, st *store.Store) *App {
	return newApp(cfg, configPath, st, staticEnv{display.Term()})
}

func newApp(cfg *config.Config, configPath string, st *store.Store, env display.Environment) *App {
	ApplyColors(cfg.UI.Colors)

	histList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	histList.Title = AppName + " › resize history"
	histList.SetShowStatusBar(false)
	histList.SetFilteringEnabled(false)
	histList.SetShowHelp(false)

	disp := display.New(env, cfg.DisplayOptions())

	return &App{
		cfg:        cfg,
		configPath: configPath,
		env:        env,
		disp:       disp,
		store:      st,
		state:      disp.State(),
		view:       ViewDashboard,
		histList:   histList,
		help:       help.New(),
		keys:       defaultKeyMap(),
	}
}

// Display exposes the app's classifier, mainly for tests.
func (a *App) Display() *display.Display { return a.disp }

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.loadHistory(),
		tea.EnterAltScreen,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.disp.Resize(msg.Width, msg.Height)
		a.state = a.disp.State()
		histHeight := msg.Height - 5
		if histHeight < 0 {
			histHeight = 0
		}
		a.histList.SetSize(msg.Width, histHeight)
		if cmd := a.recordResize(a.state); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.History):
			if a.view == ViewDashboard {
				a.view = ViewHistory
				cmds = append(cmds, a.loadHistory())
			} else {
				a.view = ViewDashboard
			}
		case key.Matches(msg, a.keys.Refresh):
			if a.view == ViewHistory {
				cmds = append(cmds, a.loadHistory())
			}
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
		}

	case historyLoadedMsg:
		items := make([]list.Item, len(msg.events))
		for i, ev := range msg.events {
			items[i] = resizeItem{event: ev}
		}
		a.histList.SetItems(items)

	case ConfigReloadedMsg:
		cmds = append(cmds, a.reloadConfig())

	case errorMsg:
		a.err = msg.err
	}

	if a.view == ViewHistory {
		newList, cmd := a.histList.Update(msg)
		a.histList = newList
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// reloadConfig re-reads the config file and swaps in a classifier built
// from the new thresholds, re-applying the current terminal size.
func (a *App) reloadConfig() tea.Cmd {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.err = fmt.Errorf("reloading config: %w", err)
		return nil
	}
	for _, w := range cfg.Warnings() {
		debuglog.Warnf("config: %s", w)
	}

	a.cfg = cfg
	ApplyColors(cfg.UI.Colors)

	old := a.disp
	a.disp = display.New(a.env, cfg.DisplayOptions())
	a.disp.Resize(a.width, a.height)
	a.state = a.disp.State()
	_ = old.Close()

	debuglog.Infof("config reloaded: thresholds=%+v mobile_breakpoint=%s",
		a.state.Thresholds, cfg.Display.MobileBreakpoint)
	a.err = nil
	return nil
}

func (a *App) View() string {
	var content string

	switch a.view {
	case ViewDashboard:
		content = a.renderDashboard()
	case ViewHistory:
		content = a.histList.View()
	}

	return lipgloss.JoinVertical(lipgloss.Top, content, a.statusBar())
}

func (a *App) renderDashboard() string {
	s := a.state

	header := TitleStyle.Render(CompactLogo) + "  " +
		HeaderStyle.Render("terminal breakpoint classifier")

	rows := []string{
		header,
		"",
		a.renderBadges(),
		"",
		a.renderRow("size", fmt.Sprintf("%d × %d", s.Width, s.Height)),
		a.renderRow("bucket", string(s.Name)),
		a.renderRow("mobile", a.renderMobile()),
		a.renderRow("cumulative", a.renderCumulative()),
		a.renderRow("platform", a.renderPlatform()),
		a.renderRow("thresholds", fmt.Sprintf("xs:%d sm:%d md:%d lg:%d",
			s.Thresholds.XS, s.Thresholds.SM, s.Thresholds.MD, s.Thresholds.LG)),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)

	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	return lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Padding(1, 2).
		Render(body)
}

func (a *App) renderBadges() string {
	s := a.state
	active := map[display.Breakpoint]bool{
		display.XS: s.XS,
		display.SM: s.SM,
		display.MD: s.MD,
		display.LG: s.LG,
		display.XL: s.XL,
	}

	badges := make([]string, 0, 5)
	for _, name := range []display.Breakpoint{display.XS, display.SM, display.MD, display.LG, display.XL} {
		style := BadgeStyle
		if active[name] {
			style = ActiveBadgeStyle
		}
		badges = append(badges, style.Render(string(name)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, badges...)
}

func (a *App) renderRow(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func (a *App) renderMobile() string {
	s := a.state
	if s.Mobile {
		return OnStyle.Render("yes") + HelpStyle.Render(fmt.Sprintf(" (cutoff %d)", s.MobileBreakpoint))
	}
	if s.MobileBreakpoint < 0 {
		return OffStyle.Render("no") + HelpStyle.Render(" (no cutoff resolved)")
	}
	return OffStyle.Render("no") + HelpStyle.Render(fmt.Sprintf(" (cutoff %d)", s.MobileBreakpoint))
}

func (a *App) renderCumulative() string {
	s := a.state
	flags := []struct {
		name string
		on   bool
	}{
		{"smAndDown", s.SMAndDown},
		{"smAndUp", s.SMAndUp},
		{"mdAndDown", s.MDAndDown},
		{"mdAndUp", s.MDAndUp},
		{"lgAndDown", s.LGAndDown},
		{"lgAndUp", s.LGAndUp},
	}

	parts := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.on {
			parts = append(parts, OnStyle.Render(f.name))
		} else {
			parts = append(parts, OffStyle.Render(f.name))
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) renderPlatform() string {
	p := a.state.Platform
	tokens := []struct {
		name string
		on   bool
	}{
		{"win", p.Win}, {"mac", p.Mac}, {"linux", p.Linux},
		{"android", p.Android}, {"ios", p.IOS},
		{"chrome", p.Chrome}, {"edge", p.Edge}, {"firefox", p.Firefox}, {"opera", p.Opera},
		{"cordova", p.Cordova}, {"electron", p.Electron},
		{"touch", p.Touch}, {"ssr", p.SSR},
	}

	var set []string
	for _, tk := range tokens {
		if tk.on {
			set = append(set, tk.name)
		}
	}
	if len(set) == 0 {
		return OffStyle.Render("none detected")
	}
	return strings.Join(set, " ")
}

func (a *App) statusBar() string {
	if a.err != nil {
		errText := lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Render(fmt.Sprintf("✗ %v", a.err))
		return lipgloss.NewStyle().
			Width(a.width).
			Padding(0, 1).
			Render(errText)
	}

	return lipgloss.NewStyle().
		Width(a.width).
		Padding(0, 1).
		Render(a.help.View(a.keys))
}

type resizeItem struct {
	event store.ResizeEvent
}

func (i resizeItem) Title() string {
	return fmt.Sprintf("%d × %d → %s", i.event.Width, i.event.Height, i.event.Name)
}

func (i resizeItem) Description() string {
	desc := i.event.Time.Format("Jan 2, 15:04:05")
	if i.event.Mobile {
		desc += " • mobile"
	}
	return desc
}

func (i resizeItem) FilterValue() string { return i.event.Name }
