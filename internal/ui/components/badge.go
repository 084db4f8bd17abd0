package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BadgeVariant selects the colour of a Badge.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgePrimary
	BadgeSecondary
	BadgeSuccess
	BadgeWarning
	BadgeDanger
	BadgeInfo
)

func (BadgeVariant) variantKey() string { return "badge" }

// Badge is a small filled status label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
	pulse   bool
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// View renders with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge. A pulsing badge leads with a blinking dot.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := applyVariant(b.ComputeStyle(ctx.Theme), ctx.Theme, b.variant)
	if !b.pulse {
		return style.Render(b.text)
	}
	seg := style.UnsetPadding()
	pad := strings.Repeat(" ", style.GetPaddingLeft())
	return seg.Render(pad) + seg.Blink(true).Render("●") + seg.Render(" "+b.text+pad)
}

// WithVariant sets the variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithPulse marks the badge as live.
func (b *Badge) WithPulse(pulse bool) *Badge {
	b.pulse = pulse
	return b
}

// WithStyle sets the badge style.
func (b *Badge) WithStyle(style lipgloss.Style) *Badge {
	b.SetStyle(style)
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
