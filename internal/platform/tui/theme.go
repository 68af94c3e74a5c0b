package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles used outside the game screen buffer.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
	Help            lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1),
		MenuDescription: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
