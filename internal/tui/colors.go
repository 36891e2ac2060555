package tui

import "github.com/charmbracelet/lipgloss"

// ColorPrefix colors a subtree prefix path
func ColorPrefix(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// ColorRepository colors an upstream repository URL
func ColorRepository(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Render(text)
}

// ColorRef colors a git ref name
func ColorRef(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorDim colors secondary text
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
