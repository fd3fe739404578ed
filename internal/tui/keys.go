package tui

import (
	"github.com/Mr-Dark-debug/countdown/internal/tabs"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the dashboard key bindings with built-in help text.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Jump  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down"),
			key.WithHelp("→/↓", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←/↑", "prev tab"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first tab"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Jump, k.Help, k.Quit},
	}
}

// tabKey translates a key press matching one of the navigation
// bindings into the tab controller's key name.
func (k KeyMap) tabKey(msg tea.KeyMsg) (tabs.Key, bool) {
	switch {
	case key.Matches(msg, k.Next):
		return tabs.KeyArrowRight, true
	case key.Matches(msg, k.Prev):
		return tabs.KeyArrowLeft, true
	case key.Matches(msg, k.First):
		return tabs.KeyHome, true
	case key.Matches(msg, k.Last):
		return tabs.KeyEnd, true
	}
	return "", false
}
