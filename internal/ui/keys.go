package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Select   key.Binding
	About    key.Binding
	Contact  key.Binding
	Theme    key.Binding
	Move     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Send     key.Binding
	Close    key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Select:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		About:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
		Contact:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Move:     key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→/drag", "move card")),
		Up:       key.NewBinding(key.WithKeys("up", "k")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		Left:     key.NewBinding(key.WithKeys("left", "h")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
		ScrollUp: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
		ScrollDn: key.NewBinding(key.WithKeys("pgdown")),
	}
}

// cardHelp is the binding set shown while no overlay is open.
type cardHelp keyMap

func (k cardHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.About, k.Contact, k.Theme, k.Move, k.Quit}
}

func (k cardHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type aboutHelp keyMap

func (k aboutHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Contact, k.Theme, k.Close}
}

func (k aboutHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type contactHelp keyMap

func (k contactHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.ScrollUp, k.Close}
}

func (k contactHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
