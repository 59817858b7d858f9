package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the estimator TUI.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Detail scrolling.
	PageUp   key.Binding
	PageDown key.Binding

	Reload    key.Binding
	ClearMock key.Binding
	Quit      key.Binding
}

// DefaultKeyMap uses vim-style navigation alongside the arrow keys.
var DefaultKeyMap = KeyMap{ //nolint: gochecknoglobals
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous part"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next part"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "scroll down"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	ClearMock: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear demo data"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Reload, k.ClearMock, k.Quit}
}
