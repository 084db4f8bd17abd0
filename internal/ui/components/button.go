package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour treatment of a Button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonSuccess
	ButtonDanger
	ButtonWarning
	ButtonInfo
	ButtonGhost
)

func (ButtonVariant) variantKey() string { return "button" }

// Button is a clickable-looking label. Clicks are wired by the caller.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	loading  bool
	frame    string
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonPrimary,
	}
}

// View renders with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button. A loading button shows its spinner
// frame before the label; a disabled one is drawn in neutral colours.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := applyVariant(b.ComputeStyle(ctx.Theme), ctx.Theme, b.variant)

	if b.disabled {
		neutral := ctx.Theme.Palette.Neutral
		style = style.Background(neutral.Muted).Foreground(neutral.OnBase).Faint(true)
	}

	label := b.label
	if b.loading {
		frame := b.frame
		if frame == "" {
			frame = "…"
		}
		label = frame + " " + label
	}

	return style.Render(label)
}

// WithVariant sets the variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled marks the button as unavailable.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithLoading shows frame in front of the label while loading is true.
func (b *Button) WithLoading(loading bool, frame string) *Button {
	b.loading = loading
	b.frame = frame
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsLoading reports whether the button is in its loading state.
func (b *Button) IsLoading() bool {
	return b.loading
}
