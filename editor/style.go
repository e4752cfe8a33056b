package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text       lipgloss.Style
	Cursor     lipgloss.Style
	Tilde      lipgloss.Style
	Welcome    lipgloss.Style
	StatusBar  lipgloss.Style
	MessageBar lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:       lipgloss.NewStyle(),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Tilde:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Welcome:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		StatusBar:  lipgloss.NewStyle().Background(lipgloss.Color("#003264")).Foreground(lipgloss.Color("#ffffff")),
		MessageBar: lipgloss.NewStyle(),
	}
}
