package components

import "github.com/charmbracelet/lipgloss"

// Text renders a single styled string.
type Text struct {
	BaseComponent
	content string
}

// NewText creates unstyled text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// View renders with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, wrapping at ctx.Width when set.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 && lipgloss.Width(t.content) > ctx.Width {
		style = style.Width(ctx.Width)
	}
	return style.Render(t.content)
}

// Content returns the raw text.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers adds theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText renders content in the title preset.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyTitle))
}

// SubtitleText renders content in the subtitle preset.
func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographySubtitle))
}

// EmphasisText renders content in bold body text.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyEmphasis))
}

// CaptionText renders content faint.
func CaptionText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCaption))
}

// CodeText renders content as inline code.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyCode))
}

// BodyText renders content in the body preset.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyBody))
}
