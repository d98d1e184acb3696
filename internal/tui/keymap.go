package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Focus     key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FastLeft  key.Binding
	FastRight key.Binding

	// Brushing
	Anchor key.Binding
	Commit key.Binding
	Clear  key.Binding
	Reset  key.Binding

	// Actions
	Filter    key.Binding
	ColorMode key.Binding
	Copy      key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next panel"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "previous panel"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up (map)"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down (map)"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "right"),
		),
		FastLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "left x10"),
		),
		FastRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "right x10"),
		),
		Anchor: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("Space", "start brush / corner"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "end brush"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "clear brush"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset all"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter text"),
		),
		ColorMode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "map colors"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy summary"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Anchor, k.Commit, k.Filter, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.PrevFocus, k.Left, k.Right},
		{k.Up, k.Down, k.FastLeft, k.FastRight},
		{k.Anchor, k.Commit, k.Clear, k.Reset},
		{k.Filter, k.ColorMode, k.Copy},
		{k.Help, k.Quit},
	}
}
