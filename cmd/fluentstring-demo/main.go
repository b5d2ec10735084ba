package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	m := newModel(Config{Style: DefaultStyle(), KeyMap: DefaultKeyMap()})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
