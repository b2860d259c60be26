package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	copyUser  key.Binding
	favorite  key.Binding
	search    key.Binding
	sort      key.Binding
	generate  key.Binding
	lock      key.Binding
	changePin key.Binding
	reveal    key.Binding
	reset     key.Binding
	yes       key.Binding
	no        key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	search:    key.NewBinding(key.WithKeys("/")),
	sort:      key.NewBinding(key.WithKeys("o")),
	generate:  key.NewBinding(key.WithKeys("g")),
	lock:      key.NewBinding(key.WithKeys("L")),
	changePin: key.NewBinding(key.WithKeys("p")),
	reveal:    key.NewBinding(key.WithKeys("r")),
	reset:     key.NewBinding(key.WithKeys("ctrl+r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
}
