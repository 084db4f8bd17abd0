package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider is a horizontal rule with an optional inline label.
type Divider struct {
	BaseComponent
	char  string
	label string
}

// NewDivider creates a thin rule.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders a rule spanning ctx.Width, or a fixed width when
// the context is unconstrained.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := ctx.Width
	if width <= 0 {
		width = defaultDividerWidth
	}

	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Neutral.Muted)
	if d.label == "" {
		return style.Render(strings.Repeat(d.char, width))
	}

	label := " " + d.label + " "
	rest := max(width-lipgloss.Width(label)-2, 0)
	line := strings.Repeat(d.char, 2) + label + strings.Repeat(d.char, rest)
	return style.Render(line)
}

// WithChar replaces the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithLabel places label near the left edge of the rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithAppliers adds theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
