package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the board.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Record key.Binding
	Save   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Record: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "record"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReadOnlyKeyMap disables the keys that change the quest.
func ReadOnlyKeyMap() KeyMap {
	km := DefaultKeyMap()
	km.Record.SetEnabled(false)
	km.Save.SetEnabled(false)
	return km
}

// FooterBindings returns the bindings shown in the footer.
func FooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Record, km.Save, km.Quit}
}
