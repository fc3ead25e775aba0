// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	quit         key.Binding
	forceQuit    key.Binding
	copy         key.Binding
	refresh      key.Binding
	clearHistory key.Binding
}

var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	quit:         key.NewBinding(key.WithKeys("q")),
	forceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
	copy:         key.NewBinding(key.WithKeys("c")),
	refresh:      key.NewBinding(key.WithKeys("r")),
	clearHistory: key.NewBinding(key.WithKeys("x")),
}
