package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the play screen. Letters go to the
// notation input, so every command sits on a control key.
type KeyMap struct {
	Submit   key.Binding
	Undo     key.Binding
	Reset    key.Binding
	Scramble key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Undo, k.Reset, k.Scramble, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Undo},
		{k.Reset, k.Scramble, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply moves"),
		),
		Undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("C-z", "undo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "reset"),
		),
		Scramble: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "scramble"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}
