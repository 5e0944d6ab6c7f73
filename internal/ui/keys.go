package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the launcher
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Home     key.Binding
	End      key.Binding
	Launch   key.Binding
	Refresh  key.Binding // Rescan descriptor directories
	Info     key.Binding // Show the selected entry's descriptor
	Help     key.Binding
	Escape   key.Binding // Close overlay, quit from the grid
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "N", "pgdown"),
			key.WithHelp("n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "P", "pgup"),
			key.WithHelp("p", "prev page"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("Home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("End", "last"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "reload"),
		),
		Info: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "details"),
		),
		Help: key.NewBinding(
			key.WithKeys("k", "K", "?"),
			key.WithHelp("k", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in short help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Launch, k.NextPage, k.PrevPage, k.Refresh, k.Info, k.Help, k.Quit}
}

// FullHelp returns all keybindings for full help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		// Pages
		{k.NextPage, k.PrevPage},
		// Actions
		{k.Launch, k.Refresh, k.Info},
		// General
		{k.Help, k.Escape, k.Quit},
	}
}
