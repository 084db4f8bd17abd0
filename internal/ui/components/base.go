package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc transforms a style using values from a resolved theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy decides how a theme is applied to a component's base style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies its style functions in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// Apply runs every style function over base.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// BaseComponent carries the raw style and theme appliers shared by every
// component. Embed it to get WithStyle/WithAppliers plumbing.
type BaseComponent struct {
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewBaseComponent returns a component base with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle()}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return CompositeStrategy{funcs: b.appliers}.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// AddAppliers appends style functions after the existing ones.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	next := make([]StyleFunc, 0, len(b.appliers)+len(appliers))
	next = append(next, b.appliers...)
	b.appliers = append(next, appliers...)
}

// applyVariant layers the registered strategy for variant over style.
func applyVariant(style lipgloss.Style, theme Theme, variant Variant) lipgloss.Style {
	if strategy := theme.Variants.Get(variant); strategy != nil {
		return strategy.Apply(style, theme)
	}
	return style
}

// Spacing is padding or margin in top, right, bottom, left order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing uses size on every side.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing uses vertical for top/bottom and horizontal for left/right.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero reports whether every side is zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// RenderContext carries the theme and the width available to a component.
// A Width of zero means unconstrained.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext renders with the light theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: LightTheme()}
}

// NewContext renders with theme inside width cells.
func NewContext(theme Theme, width int) RenderContext {
	return RenderContext{Theme: theme, Width: width}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// Shrink returns a copy with n fewer cells available, never below one.
func (r RenderContext) Shrink(n int) RenderContext {
	if r.Width == 0 {
		return r
	}
	r.Width = max(r.Width-n, 1)
	return r
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws any renderable, passing the context through when the
// renderable understands it.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Alignment is the cross-axis placement of children in a layout.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
