package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	ShowWeek key.Binding
	Quit     key.Binding
}

var DefaultKeyMap = KeyMap{
	ShowWeek: key.NewBinding(
		key.WithKeys("w", "enter"),
		key.WithHelp("w/enter", "show or refresh the 5-day forecast"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
