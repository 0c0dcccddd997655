package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	reload    key.Binding
	toggle    key.Binding
	delete    key.Binding
	copy      key.Binding
	filter    key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	nextPage:  key.NewBinding(key.WithKeys("right", "l", "n")),
	prevPage:  key.NewBinding(key.WithKeys("left", "h", "p")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	reload:    key.NewBinding(key.WithKeys("r")),
	toggle:    key.NewBinding(key.WithKeys("t")),
	delete:    key.NewBinding(key.WithKeys("d", "ctrl+d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	filter:    key.NewBinding(key.WithKeys("/")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
