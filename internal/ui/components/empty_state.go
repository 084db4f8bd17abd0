package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// EmptyState is a centred placeholder for a screen or section with nothing
// to show.
type EmptyState struct {
	BaseComponent
	icon        string
	title       string
	description string
	action      ui.Renderable
}

// NewEmptyState creates an empty state with a title.
func NewEmptyState(title string) *EmptyState {
	return &EmptyState{BaseComponent: NewBaseComponent(), icon: "∅", title: title}
}

// View renders with the default context.
func (e *EmptyState) View() string {
	return e.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every part centred within ctx.Width.
func (e *EmptyState) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	parts := []string{
		theme.Text(TypographyTitle).Foreground(theme.Palette.Neutral.Muted).Render(e.icon),
		theme.Text(TypographyTitle).Render(e.title),
	}
	if e.description != "" {
		parts = append(parts, theme.Text(TypographySubtitle).Render(e.description))
	}
	if e.action != nil {
		parts = append(parts, "", Render(e.action, ctx))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	style := e.ComputeStyle(theme).Padding(1, 2).Align(lipgloss.Center)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(content)
}

// WithIcon replaces the glyph.
func (e *EmptyState) WithIcon(icon string) *EmptyState {
	e.icon = icon
	return e
}

// WithDescription sets the line under the title.
func (e *EmptyState) WithDescription(description string) *EmptyState {
	e.description = description
	return e
}

// WithAction places r under the description.
func (e *EmptyState) WithAction(r ui.Renderable) *EmptyState {
	e.action = r
	return e
}

// WithAppliers adds theme-based style modifiers.
func (e *EmptyState) WithAppliers(appliers ...StyleFunc) *EmptyState {
	e.AddAppliers(appliers...)
	return e
}
