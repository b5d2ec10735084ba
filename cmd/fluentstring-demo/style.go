package main

import "github.com/charmbracelet/lipgloss"

// Style controls the demo's rendering.
type Style struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Joined lipgloss.Style
	Token  lipgloss.Style
	Cursor lipgloss.Style
	Stats  lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Log    lipgloss.Style
}

func DefaultStyle() Style {
	return NewStyle(lipgloss.DefaultRenderer())
}

// NewStyle builds the default palette on r, so tests can pin a color profile.
func NewStyle(r *lipgloss.Renderer) Style {
	muted := r.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Title:  r.NewStyle().Bold(true),
		Label:  muted,
		Joined: r.NewStyle().Foreground(lipgloss.Color("250")),
		Token:  r.NewStyle().Foreground(lipgloss.Color("212")),
		Cursor: r.NewStyle().Reverse(true),
		Stats:  muted,
		Error:  r.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   muted,
		Log:    r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("237")),
	}
}
