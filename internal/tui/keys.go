// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	quit      key.Binding
	forceQuit key.Binding
	buildInfo key.Binding
	open      key.Binding
	copy      key.Binding
	whatsApp  key.Binding
	email     key.Binding
	forget    key.Binding
	yes       key.Binding
	no        key.Binding
}

// Letter bindings are only checked where no text input has focus.
var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	buildInfo: key.NewBinding(key.WithKeys("f1")),
	open:      key.NewBinding(key.WithKeys("enter", "o")),
	copy:      key.NewBinding(key.WithKeys("c")),
	whatsApp:  key.NewBinding(key.WithKeys("w")),
	email:     key.NewBinding(key.WithKeys("e")),
	forget:    key.NewBinding(key.WithKeys("d")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
