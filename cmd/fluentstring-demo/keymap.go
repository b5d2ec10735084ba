package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the demo key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Commit, Backspace key.Binding
	DropLast, Clear   key.Binding
	Shrink, Reserve   key.Binding
	Quit              key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "append token")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete grapheme")),

		// ctrl+backspace is not reported by most terminals.
		DropLast: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "drop last token")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		Shrink:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "shrink to fit")),
		Reserve: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "try reserve 1KiB")),

		Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Backspace, k.DropLast, k.Clear, k.Shrink, k.Reserve, k.Quit}
}
