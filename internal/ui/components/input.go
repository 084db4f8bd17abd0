package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const defaultInputWidth = 24

// Input draws a labelled text field around a bubbles textinput.
type Input struct {
	BaseComponent
	label    string
	hint     string
	errMsg   string
	field    textinput.Model
	disabled bool
}

// NewInput creates an input with a fresh text field.
func NewInput(label, placeholder string) *Input {
	field := textinput.New()
	field.Placeholder = placeholder
	field.Prompt = ""
	return NewInputFrom(label, field)
}

// NewInputFrom wraps an existing text field, keeping its value and focus.
func NewInputFrom(label string, field textinput.Model) *Input {
	return &Input{BaseComponent: NewBaseComponent(), label: label, field: field}
}

// View renders with the default context.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the boxed field and the hint.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	p := theme.Palette

	field := in.field
	field.TextStyle = lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	field.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Neutral.Muted)
	field.Cursor.Style = lipgloss.NewStyle().Foreground(p.Primary.Base)

	box := in.ComputeStyle(theme).
		Border(theme.Border(BorderRounded)).
		BorderForeground(p.Neutral.Muted).
		Padding(0, 1)

	switch {
	case in.errMsg != "":
		box = box.BorderForeground(p.Danger.Base)
	case in.disabled:
		field.Blur()
		box = box.Faint(true)
		field.TextStyle = field.TextStyle.Faint(true)
	case field.Focused():
		box = box.BorderForeground(p.Primary.Base)
	}

	width := defaultInputWidth
	if ctx.Width > 0 {
		width = min(width, max(ctx.Width-box.GetHorizontalFrameSize(), 4))
	}
	field.Width = width - 1
	box = box.Width(width + box.GetHorizontalPadding())

	parts := []string{theme.Text(TypographyEmphasis).Render(in.label), box.Render(field.View())}
	switch {
	case in.errMsg != "":
		parts = append(parts, lipgloss.NewStyle().Foreground(p.Danger.Base).Render(in.errMsg))
	case in.hint != "":
		parts = append(parts, theme.Text(TypographyCaption).Render(in.hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// WithValue sets the field text.
func (in *Input) WithValue(value string) *Input {
	in.field.SetValue(value)
	return in
}

// WithFocus focuses or blurs the field.
func (in *Input) WithFocus(focused bool) *Input {
	if focused {
		in.field.Focus()
	} else {
		in.field.Blur()
	}
	return in
}

// WithDisabled draws the field inactive.
func (in *Input) WithDisabled(disabled bool) *Input {
	in.disabled = disabled
	return in
}

// WithHint sets the caption under the field.
func (in *Input) WithHint(hint string) *Input {
	in.hint = hint
	return in
}

// WithError draws the field in its error state with msg beneath it.
func (in *Input) WithError(msg string) *Input {
	in.errMsg = msg
	return in
}

// WithPassword masks the field value.
func (in *Input) WithPassword() *Input {
	in.field.EchoMode = textinput.EchoPassword
	in.field.EchoCharacter = '•'
	return in
}

// WithAppliers adds theme-based style modifiers.
func (in *Input) WithAppliers(appliers ...StyleFunc) *Input {
	in.AddAppliers(appliers...)
	return in
}

// Value returns the field text.
func (in *Input) Value() string {
	return in.field.Value()
}

// Focused reports whether the field has focus.
func (in *Input) Focused() bool {
	return in.field.Focused()
}
