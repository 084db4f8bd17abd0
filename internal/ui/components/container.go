package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a vertical stack of children. It carries the
// border, padding and optional title used by every showcase section.
type Container struct {
	BaseComponent
	children []ui.Renderable
	title    string
	border   BorderVariant
	slot     PaletteSlot
	padding  Spacing
	gap      int
	fill     bool
}

// NewContainer creates a borderless container.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		slot:          PaletteNeutral,
	}
}

// NewCard creates a rounded, padded container with a title.
func NewCard(title string, children ...ui.Renderable) *Container {
	return NewContainer(children...).
		WithTitle(title).
		WithBorder(BorderRounded).
		WithPadding(SymmetricSpacing(0, 1)).
		WithGap(1)
}

// View renders with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box. When fill is set the box stretches to
// ctx.Width.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)

	if c.border != BorderNone {
		style = style.Border(ctx.Theme.Border(c.border)).
			BorderForeground(c.slot(ctx.Theme.Palette).Muted)
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}

	inner := ctx.Shrink(style.GetHorizontalFrameSize())
	if c.fill && ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}

	body := c.children
	if c.title != "" {
		body = append([]ui.Renderable{TitleText(c.title)}, c.children...)
	}

	content := VStack(body...).WithGap(c.gap).ViewWithContext(inner)
	return style.Render(content)
}

// WithTitle sets the heading drawn above the children.
func (c *Container) WithTitle(title string) *Container {
	c.title = title
	return c
}

// WithBorder sets the border token.
func (c *Container) WithBorder(border BorderVariant) *Container {
	c.border = border
	return c
}

// WithBorderColour tints the border with a palette slot.
func (c *Container) WithBorderColour(slot PaletteSlot) *Container {
	if slot != nil {
		c.slot = slot
	}
	return c
}

// WithPadding sets inner spacing.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithGap sets blank lines between children.
func (c *Container) WithGap(gap int) *Container {
	c.gap = gap
	return c
}

// WithFill stretches the box to the available width.
func (c *Container) WithFill(fill bool) *Container {
	c.fill = fill
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers adds theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	return c
}
