package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 30

// Progress is a completion bar labelled with a completed/total count.
type Progress struct {
	BaseComponent
	completed int
	total     int
	label     string
}

// NewProgress creates a bar for completed out of total steps.
func NewProgress(completed, total int) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		completed:     completed,
		total:         total,
	}
}

// View renders with the default context.
func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext fills whatever width the count leaves over.
func (p *Progress) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	count := fmt.Sprintf("%d/%d", p.completed, p.total)
	if p.label != "" {
		count = p.label + " " + count
	}
	label := theme.Text(TypographyEmphasis).Render(count)

	width := defaultProgressWidth
	if ctx.Width > 0 {
		width = max(ctx.Width-lipgloss.Width(label)-1, 1)
	}

	bar := progress.New(
		progress.WithGradient(string(theme.Palette.Primary.Muted), string(theme.Palette.Primary.Base)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = string(theme.Palette.Neutral.Muted)

	return p.ComputeStyle(theme).Render(lipgloss.JoinHorizontal(lipgloss.Left, label, " ", bar.ViewAs(p.Ratio())))
}

// Ratio is the filled fraction, clamped to [0, 1].
func (p *Progress) Ratio() float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(p.completed)/float64(p.total)))
}

// WithLabel prefixes the count.
func (p *Progress) WithLabel(label string) *Progress {
	p.label = label
	return p
}

// WithAppliers adds theme style functions.
func (p *Progress) WithAppliers(appliers ...StyleFunc) *Progress {
	p.AddAppliers(appliers...)
	return p
}
