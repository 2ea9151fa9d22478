package tui

import "github.com/charmbracelet/lipgloss"

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaOrange     = "#FFB86C"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

type styles struct {
	title   lipgloss.Style
	tenant  lipgloss.Style
	header  lipgloss.Style
	row     lipgloss.Style
	cursor  lipgloss.Style
	help    lipgloss.Style
	status  lipgloss.Style
	errLine lipgloss.Style
	detail  lipgloss.Style
	loading lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		tenant: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPurple)),
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)).
			Bold(true),
		row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)),
		cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		errLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		detail: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaPurple)).
			Padding(0, 1),
		loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaOrange)),
	}
}
