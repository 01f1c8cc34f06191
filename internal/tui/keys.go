package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown     key.Binding
	Toggle     key.Binding
	Additive   key.Binding
	Properties key.Binding
	Reload     key.Binding
	Close      key.Binding
	Enter      key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown:     key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("j/k", "navigate")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Additive:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to selection")),
		Properties: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "properties")),
		Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/save")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Toggle, k.Additive, k.Properties, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Toggle, k.Additive, k.Properties, k.Reload, k.Quit}}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Close, k.Quit}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Enter, k.Close, k.Quit}}
}
