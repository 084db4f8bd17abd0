package components

import "github.com/charmbracelet/lipgloss"

// Tag is a lightweight label. Filled tags use the muted shade of their slot;
// outline tags draw only brackets and text.
type Tag struct {
	BaseComponent
	text    string
	slot    PaletteSlot
	outline bool
}

// NewTag creates a neutral filled tag.
func NewTag(text string) *Tag {
	return &Tag{BaseComponent: NewBaseComponent(), text: text, slot: PaletteNeutral}
}

// View renders with the default context.
func (t *Tag) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tag.
func (t *Tag) ViewWithContext(ctx RenderContext) string {
	colour := t.slot(ctx.Theme.Palette)
	style := t.ComputeStyle(ctx.Theme)

	if t.outline {
		bracket := lipgloss.NewStyle().Foreground(colour.Muted)
		return bracket.Render("[") + style.Foreground(colour.Base).Render(t.text) + bracket.Render("]")
	}
	return style.Background(colour.Muted).Foreground(colour.Contrast).Padding(0, 1).Render(t.text)
}

// WithColour sets the palette slot.
func (t *Tag) WithColour(slot PaletteSlot) *Tag {
	if slot != nil {
		t.slot = slot
	}
	return t
}

// WithOutline switches between the filled and outline forms.
func (t *Tag) WithOutline(outline bool) *Tag {
	t.outline = outline
	return t
}

// WithAppliers adds theme-based style modifiers.
func (t *Tag) WithAppliers(appliers ...StyleFunc) *Tag {
	t.AddAppliers(appliers...)
	return t
}

// Text returns the tag text.
func (t *Tag) Text() string {
	return t.text
}
