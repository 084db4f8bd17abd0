package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colour and default icon of an Alert.
type AlertVariant int

const (
	AlertInfo AlertVariant = iota
	AlertSuccess
	AlertWarning
	AlertError
)

func (AlertVariant) variantKey() string { return "alert" }

// Icon returns the glyph drawn by default for the variant.
func (v AlertVariant) Icon() string {
	switch v {
	case AlertSuccess:
		return "✓"
	case AlertWarning:
		return "⚠"
	case AlertError:
		return "✗"
	default:
		return "ℹ"
	}
}

func (v AlertVariant) slot() PaletteSlot {
	switch v {
	case AlertSuccess:
		return PaletteSuccess
	case AlertWarning:
		return PaletteWarning
	case AlertError:
		return PaletteDanger
	default:
		return PaletteInfo
	}
}

// DismissMark decorates the rendered close control, typically to register a
// mouse hit-zone around it.
type DismissMark func(string) string

// Alert is a bordered message with an icon and an optional close control.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
	dismiss DismissMark
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// View renders with the default context.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert filling ctx.Width when set.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := applyVariant(a.ComputeStyle(theme), theme, a.variant)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}

	accent := a.variant.slot()(theme.Palette).Base
	icon := theme.Text(TypographyEmphasis).Foreground(accent).Render(a.Icon())

	closer := ""
	if a.dismiss != nil {
		closer = a.dismiss(theme.Text(TypographyCaption).Render("✕"))
	}

	textWidth := 0
	if ctx.Width > 0 {
		used := style.GetHorizontalFrameSize() + lipgloss.Width(icon) + lipgloss.Width(closer) + 2
		textWidth = max(ctx.Width-used, 1)
	}

	lines := make([]string, 0, 2)
	if a.title != "" {
		lines = append(lines, theme.Text(TypographyEmphasis).Render(a.title))
	}
	lines = append(lines, theme.Text(TypographyBody).Render(a.message))
	text := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if textWidth > 0 {
		text = lipgloss.NewStyle().Width(textWidth).Render(text)
	}

	row := []string{icon, " ", text}
	if closer != "" {
		row = append(row, " ", closer)
	}

	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, row...))
}

// Icon returns the custom icon or the variant default.
func (a *Alert) Icon() string {
	if a.icon != "" {
		return a.icon
	}
	return a.variant.Icon()
}

// WithVariant sets the variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithIcon overrides the variant icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a bold line above the message.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismiss shows a close control passed through mark. A nil mark leaves
// the control undecorated.
func (a *Alert) WithDismiss(mark DismissMark) *Alert {
	if mark == nil {
		mark = func(s string) string { return s }
	}
	a.dismiss = mark
	return a
}

// WithStyle sets the alert style.
func (a *Alert) WithStyle(style lipgloss.Style) *Alert {
	a.SetStyle(style)
	return a
}

// WithAppliers adds theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Dismissible reports whether a close control is drawn.
func (a *Alert) Dismissible() bool {
	return a.dismiss != nil
}
