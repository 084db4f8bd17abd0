package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

type keyMap struct {
	Theme        key.Binding
	Loading      key.Binding
	Section      key.Binding
	DismissAlert key.Binding
	DismissToast key.Binding
	NotFound     key.Binding
	Home         key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Loading: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "simulate loading"),
		),
		Section: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "toggle section"),
		),
		DismissAlert: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "dismiss alert"),
		),
		DismissToast: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss toast"),
		),
		NotFound: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "show 404"),
		),
		Home: key.NewBinding(
			key.WithKeys("h", "esc"),
			key.WithHelp("h/esc", "home"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the one-line footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Loading, k.NotFound, k.Help, k.Quit}
}

// FullHelp groups every binding into columns.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Loading, k.NotFound, k.Home},
		{k.Section, k.DismissAlert, k.DismissToast},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

// viewportKeys hands the scroll bindings to the viewport so both stay in sync.
func (k keyMap) viewportKeys() viewport.KeyMap {
	km := viewport.DefaultKeyMap()
	km.Up = k.Up
	km.Down = k.Down
	km.PageUp = k.PageUp
	km.PageDown = k.PageDown
	km.HalfPageUp.SetEnabled(false)
	km.HalfPageDown.SetEnabled(false)
	return km
}
