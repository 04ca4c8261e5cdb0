package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/brkpt/internal/config"
)

const AppName = "brkpt"

const CompactLogo = "brkpt ›"

// Brand colors, overridden from the config at startup.
var (
	PrimaryColor   = lipgloss.Color("#FF6B6B")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#95E1D3")
	TextColor      = lipgloss.Color("#EAEAEA")
	MutedColor     = lipgloss.Color("#94A3B8")
	ErrorColor     = lipgloss.Color("#F87171")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// BadgeStyle renders an inactive bucket badge.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 2)

	// ActiveBadgeStyle renders the bucket the current width falls into.
	ActiveBadgeStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(AccentColor).
				Padding(0, 2)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(18)

	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	OnStyle = lipgloss.NewStyle().
		Foreground(AccentColor).
		Bold(true)

	OffStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// ApplyColors rebuilds the style set from configured colors.
func ApplyColors(c config.UIColors) {
	if c.Primary != "" {
		PrimaryColor = lipgloss.Color(c.Primary)
	}
	if c.Secondary != "" {
		SecondaryColor = lipgloss.Color(c.Secondary)
	}
	if c.Accent != "" {
		AccentColor = lipgloss.Color(c.Accent)
	}
	if c.Text != "" {
		TextColor = lipgloss.Color(c.Text)
	}
	if c.Muted != "" {
		MutedColor = lipgloss.Color(c.Muted)
	}
	if c.Error != "" {
		ErrorColor = lipgloss.Color(c.Error)
	}

	TitleStyle = TitleStyle.Foreground(PrimaryColor)
	HeaderStyle = HeaderStyle.Foreground(SecondaryColor)
	HelpStyle = HelpStyle.Foreground(MutedColor)
	BadgeStyle = BadgeStyle.Foreground(MutedColor).BorderForeground(MutedColor)
	ActiveBadgeStyle = ActiveBadgeStyle.Foreground(AccentColor).BorderForeground(AccentColor)
	LabelStyle = LabelStyle.Foreground(MutedColor)
	ValueStyle = ValueStyle.Foreground(TextColor)
	OnStyle = OnStyle.Foreground(AccentColor)
	OffStyle = OffStyle.Foreground(MutedColor)
}
