// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up   key.Binding
	down key.Binding
	quit key.Binding
}

var keys = keyMap{
	up:   key.NewBinding(key.WithKeys("up", "k")),
	down: key.NewBinding(key.WithKeys("down", "j")),
	quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}
