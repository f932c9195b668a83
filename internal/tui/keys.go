package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	prevMonth key.Binding
	nextMonth key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	space     key.Binding
	quit      key.Binding
	newEntry  key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	reload    key.Binding
	stats     key.Binding
	settings  key.Binding
	profile   key.Binding
	version   key.Binding
	submit    key.Binding
	addTag    key.Binding
	anon      key.Binding
	google    key.Binding
	signOut   key.Binding
	photo     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	prevMonth: key.NewBinding(key.WithKeys("[")),
	nextMonth: key.NewBinding(key.WithKeys("]")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	space:     key.NewBinding(key.WithKeys(" ")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	newEntry:  key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	reload:    key.NewBinding(key.WithKeys("r")),
	stats:     key.NewBinding(key.WithKeys("t")),
	settings:  key.NewBinding(key.WithKeys("s")),
	profile:   key.NewBinding(key.WithKeys("p")),
	version:   key.NewBinding(key.WithKeys("v")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	addTag:    key.NewBinding(key.WithKeys("a")),
	anon:      key.NewBinding(key.WithKeys("a")),
	google:    key.NewBinding(key.WithKeys("g")),
	signOut:   key.NewBinding(key.WithKeys("o")),
	photo:     key.NewBinding(key.WithKeys("i")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
