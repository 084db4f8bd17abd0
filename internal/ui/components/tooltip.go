package components

import "github.com/charmbracelet/lipgloss"

// Placement is where a tooltip bubble sits relative to its anchor.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementBottom
	PlacementRight
)

// Tooltip draws an anchor with a small hint bubble beside it.
type Tooltip struct {
	BaseComponent
	anchor    string
	tip       string
	placement Placement
	visible   bool
}

// NewTooltip creates a visible tooltip above anchor.
func NewTooltip(anchor, tip string) *Tooltip {
	return &Tooltip{
		BaseComponent: NewBaseComponent(),
		anchor:        anchor,
		tip:           tip,
		visible:       true,
	}
}

// View renders with the default context.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the anchor, and the bubble when visible.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	anchor := t.ComputeStyle(ctx.Theme).
		Foreground(p.Primary.Base).
		Underline(true).
		Render(t.anchor)
	if !t.visible {
		return anchor
	}

	bubble := lipgloss.NewStyle().
		Background(p.Neutral.Base).
		Foreground(p.Neutral.OnBase).
		Padding(0, 1).
		Render(t.tip)
	pointer := lipgloss.NewStyle().Foreground(p.Neutral.Base)

	switch t.placement {
	case PlacementBottom:
		return lipgloss.JoinVertical(lipgloss.Left, anchor, pointer.Render(" ▲"), bubble)
	case PlacementRight:
		return lipgloss.JoinHorizontal(lipgloss.Center, anchor, pointer.Render(" ◀"), bubble)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, bubble, pointer.Render(" ▼"), anchor)
	}
}

// WithPlacement sets where the bubble goes.
func (t *Tooltip) WithPlacement(placement Placement) *Tooltip {
	t.placement = placement
	return t
}

// WithVisible shows or hides the bubble.
func (t *Tooltip) WithVisible(visible bool) *Tooltip {
	t.visible = visible
	return t
}

// WithAppliers adds theme-based style modifiers.
func (t *Tooltip) WithAppliers(appliers ...StyleFunc) *Tooltip {
	t.AddAppliers(appliers...)
	return t
}

// Tip returns the bubble text.
func (t *Tooltip) Tip() string {
	return t.tip
}
