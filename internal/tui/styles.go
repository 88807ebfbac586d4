package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#3b82f6")
	muted  = lipgloss.Color("#6b7280")
	warn   = lipgloss.Color("#f59e0b")
	danger = lipgloss.Color("#e53935")
)

type styles struct {
	Title    lipgloss.Style
	Range    lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Override lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Range:    lipgloss.NewStyle().Foreground(muted),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 2),
		Label:    lipgloss.NewStyle().Bold(true),
		Override: lipgloss.NewStyle().Foreground(warn).Italic(true),
		Help:     lipgloss.NewStyle().Foreground(muted),
		Error:    lipgloss.NewStyle().Foreground(danger),
		Status:   lipgloss.NewStyle().Foreground(accent),
	}
}
