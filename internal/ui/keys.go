package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the launcher
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Quit     key.Binding
	PowerOff key.Binding // Only active when power options are enabled
	Restart  key.Binding
	Logout   key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Printable keys are left to the query box, so actions use ctrl chords.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j", "tab"),
			key.WithHelp("↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		PowerOff: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "power off"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "log out"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// SetPowerEnabled enables or disables the power bindings
func (k *KeyMap) SetPowerEnabled(enabled bool) {
	k.PowerOff.SetEnabled(enabled)
	k.Restart.SetEnabled(enabled)
	k.Logout.SetEnabled(enabled)
}

// ShortHelp returns keybindings to show in short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Up, k.Down, k.Escape, k.Help}
}

// FullHelp returns all keybindings for full help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Enter},
		// Power
		{k.PowerOff, k.Restart, k.Logout},
		// General
		{k.Help, k.Escape, k.Quit},
	}
}
