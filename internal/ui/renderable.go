// Package ui holds the contracts shared by the terminal rendering packages.
package ui

// Renderable is anything that can draw itself as a block of terminal text.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View calls f.
func (f RenderFunc) View() string { return f() }

// Raw wraps pre-rendered text.
type Raw string

// View returns the text unchanged.
func (r Raw) View() string { return string(r) }
