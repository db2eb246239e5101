package controller

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the converter.
// Letters are left to the text input.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Copy     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns a KeyMap with default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous notation"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next notation"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy selected"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next input notation"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous input notation"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// FullHelp returns bindings for the main help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Copy},
		{k.Tab, k.ShiftTab},
		{k.Help, k.Quit},
	}
}

// ShortHelp returns a minimal set of bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Tab, k.Help, k.Quit}
}
