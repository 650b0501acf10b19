// Package chat styles the labels of the interactive chat loop.
package chat

import (
	"github.com/bnema/bundesliga-context-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type Printer struct {
	bot    lipgloss.Style
	user   lipgloss.Style
	notice lipgloss.Style
}

var _ application.ChatPrinter = Printer{}

func NewPrinter() Printer {
	return Printer{
		bot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		user:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		notice: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

func (p Printer) Bot(label, message string) string {
	return p.bot.Render(label) + p.notice.Render(message)
}

func (p Printer) Prompt(label string) string {
	return p.user.Render(label)
}
