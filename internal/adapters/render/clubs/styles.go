package clubs

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	city   lipgloss.Style
	club   lipgloss.Style
	id     lipgloss.Style
	arrow  lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		city:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		club:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		id:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		arrow:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
