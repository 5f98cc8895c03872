// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the slider UI. It implements help.KeyMap.
type keyMap struct {
	Up, Down            key.Binding
	Left, Right         key.Binding
	FastLeft, FastRight key.Binding
	Mode                key.Binding
	Reset               key.Binding
	Help                key.Binding
	Quit                key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "previous slider")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next slider")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		FastLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "decrease ×5")),
		FastRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "increase ×5")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "next mode")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Mode, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FastLeft, k.FastRight, k.Mode, k.Reset},
		{k.Help, k.Quit},
	}
}
