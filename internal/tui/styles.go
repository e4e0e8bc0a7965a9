package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary     = lipgloss.Color("#2196F3")
	colorMuted       = lipgloss.Color("#6b7280")
	colorDestructive = lipgloss.Color("#e53935")
	colorSuccess     = lipgloss.Color("#8BC34A")
)

type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Tab:   lipgloss.NewStyle().Padding(0, 1).Foreground(colorMuted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("#ffffff")).Background(colorPrimary),
		Label: lipgloss.NewStyle().Foreground(colorMuted),
		Output: lipgloss.NewStyle().Padding(0, 1).
			Border(lipgloss.RoundedBorder()).BorderForeground(colorSuccess),
		Error: lipgloss.NewStyle().Padding(0, 1).Foreground(colorDestructive).
			Border(lipgloss.ThickBorder()).BorderForeground(colorDestructive),
		Help:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Status: lipgloss.NewStyle().Foreground(colorSuccess),
	}
}
