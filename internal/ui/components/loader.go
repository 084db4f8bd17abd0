package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Loader shows an activity indicator with a label. The animation frame is
// supplied by the caller, usually from a bubbles spinner.
type Loader struct {
	BaseComponent
	frame    string
	label    string
	skeleton int
}

// NewLoader creates a loader showing frame next to label.
func NewLoader(frame, label string) *Loader {
	return &Loader{BaseComponent: NewBaseComponent(), frame: frame, label: label}
}

// View renders with the default context.
func (l *Loader) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the frame and label, then any skeleton lines.
func (l *Loader) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	style := l.ComputeStyle(ctx.Theme)

	frame := lipgloss.NewStyle().Foreground(p.Primary.Base).Render(l.frame)
	line := frame
	if l.label != "" {
		line += " " + ctx.Theme.Text(TypographySubtitle).Render(l.label)
	}
	if l.skeleton == 0 {
		return style.Render(line)
	}

	width := 32
	if ctx.Width > 0 {
		width = min(width, ctx.Width)
	}
	bar := lipgloss.NewStyle().Foreground(p.Surface.Muted)
	lines := []string{line}
	for i := range l.skeleton {
		// Odd lines are a third shorter.
		w := width - (i%2)*(width/3)
		lines = append(lines, bar.Render(strings.Repeat("▆", max(w, 1))))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithSkeleton draws n placeholder lines under the indicator.
func (l *Loader) WithSkeleton(n int) *Loader {
	l.skeleton = max(n, 0)
	return l
}

// WithAppliers adds theme-based style modifiers.
func (l *Loader) WithAppliers(appliers ...StyleFunc) *Loader {
	l.AddAppliers(appliers...)
	return l
}
