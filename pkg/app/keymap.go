package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global key bindings. The help footer renders from
// these bindings, so descriptions stay next to their keys.
type KeyMap struct {
	Faster     key.Binding
	Slower     key.Binding
	FasterBig  key.Binding
	SlowerBig  key.Binding
	ZeroV      key.Binding
	Stationary key.Binding
	Moving     key.Binding
	Units      key.Binding
	Clear      key.Binding
	NextPanel  key.Binding
	PrevPanel  key.Binding
	Expand     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Faster: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "slower"),
		),
		FasterBig: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "faster ×10"),
		),
		SlowerBig: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "slower ×10"),
		),
		ZeroV: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "stop"),
		),
		Stationary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stationary frame"),
		),
		Moving: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "moving frame"),
		),
		Units: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "toggle units"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear events"),
		),
		NextPanel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		PrevPanel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand panel"),
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
	return []key.Binding{k.Slower, k.Faster, k.Stationary, k.Moving, k.Units, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Slower, k.Faster, k.SlowerBig, k.FasterBig, k.ZeroV},
		{k.Stationary, k.Moving, k.Units, k.Clear},
		{k.NextPanel, k.PrevPanel, k.Expand, k.Help, k.Quit},
	}
}
