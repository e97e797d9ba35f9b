package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the search view.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Item    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")).MarginTop(1),
		Item:    lipgloss.NewStyle().PaddingLeft(2),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")),
	}
}
