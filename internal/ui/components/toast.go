package components

import "github.com/charmbracelet/lipgloss"

// Toast is a compact floating notice. It shares the alert variants.
type Toast struct {
	BaseComponent
	message string
	icon    string
	variant AlertVariant
	dismiss DismissMark
}

// NewToast creates a success toast.
func NewToast(message string) *Toast {
	return &Toast{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertSuccess,
	}
}

// View renders with the default context.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast on a raised surface with a coloured
// left edge.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	accent := t.variant.slot()(theme.Palette)
	surface := theme.Palette.Surface

	style := t.ComputeStyle(theme).
		Background(surface.Muted).
		Foreground(surface.OnBase).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(accent.Base).
		Padding(0, 1)

	icon := t.icon
	if icon == "" {
		icon = t.variant.Icon()
	}

	parts := []string{
		lipgloss.NewStyle().Foreground(accent.Base).Bold(true).Render(icon),
		" " + t.message,
	}
	if t.dismiss != nil {
		parts = append(parts, "  ", t.dismiss("✕"))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if ctx.Width > 0 && lipgloss.Width(content)+style.GetHorizontalFrameSize() > ctx.Width {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}
	return style.Render(content)
}

// WithVariant sets the variant.
func (t *Toast) WithVariant(variant AlertVariant) *Toast {
	t.variant = variant
	return t
}

// WithIcon overrides the variant icon.
func (t *Toast) WithIcon(icon string) *Toast {
	t.icon = icon
	return t
}

// WithDismiss shows a close control passed through mark.
func (t *Toast) WithDismiss(mark DismissMark) *Toast {
	if mark == nil {
		mark = func(s string) string { return s }
	}
	t.dismiss = mark
	return t
}

// WithAppliers adds theme-based style modifiers.
func (t *Toast) WithAppliers(appliers ...StyleFunc) *Toast {
	t.AddAppliers(appliers...)
	return t
}

// Message returns the toast message.
func (t *Toast) Message() string {
	return t.message
}
