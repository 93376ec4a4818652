package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the control surface. Start, pause/resume and reset map
// 1:1 to player transitions; the rest is navigation.
type keyMap struct {
	Start       key.Binding
	PauseResume key.Binding
	Reset       key.Binding
	Quit        key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	AlgoUp      key.Binding
	AlgoDown    key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	PauseResume: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume"),
	),
	Reset: key.NewBinding(
		key.WithKeys("esc", "r"),
		key.WithHelp("esc", "reset"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "right"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "left"),
		key.WithHelp("shift+tab", "prev field"),
	),
	AlgoUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous algorithm"),
	),
	AlgoDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next algorithm"),
	),
}
