package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AccordionItem is one collapsible section.
type AccordionItem struct {
	Key   string
	Title string
	Body  string
	Open  bool
}

// HeaderMark decorates a rendered section header, keyed by AccordionItem.Key.
type HeaderMark func(key, header string) string

// Accordion renders a list of collapsible sections. Which sections are open
// is decided by the caller.
type Accordion struct {
	BaseComponent
	items []AccordionItem
	mark  HeaderMark
}

// NewAccordion creates an accordion over items.
func NewAccordion(items ...AccordionItem) *Accordion {
	return &Accordion{BaseComponent: NewBaseComponent(), items: items}
}

// View renders with the default context.
func (a *Accordion) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders each header, followed by its body when open.
func (a *Accordion) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	style := a.ComputeStyle(theme)
	inner := ctx.Shrink(style.GetHorizontalFrameSize())

	header := theme.Text(TypographyEmphasis)
	openHeader := header.Foreground(theme.Palette.Primary.Base)
	body := theme.Text(TypographyBody).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Palette.Primary.Muted).
		PaddingLeft(1).
		MarginLeft(1)
	if inner.Width > 0 {
		body = body.Width(max(inner.Width-body.GetHorizontalMargins()-body.GetHorizontalBorderSize(), 2))
	}
	rule := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)

	blocks := make([]string, 0, len(a.items)*2)
	for i, item := range a.items {
		if i > 0 {
			blocks = append(blocks, rule.Render(strings.Repeat("┈", max(min(inner.Width, 40), 8))))
		}

		chevron, hs := "▸", header
		if item.Open {
			chevron, hs = "▾", openHeader
		}
		line := hs.Render(chevron + " " + item.Title)
		if a.mark != nil {
			line = a.mark(item.Key, line)
		}
		blocks = append(blocks, line)

		if item.Open {
			blocks = append(blocks, body.Render(item.Body))
		}
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// WithHeaderMark passes each header through mark.
func (a *Accordion) WithHeaderMark(mark HeaderMark) *Accordion {
	a.mark = mark
	return a
}

// WithAppliers adds theme-based style modifiers.
func (a *Accordion) WithAppliers(appliers ...StyleFunc) *Accordion {
	a.AddAppliers(appliers...)
	return a
}

// Items returns the sections.
func (a *Accordion) Items() []AccordionItem {
	return a.items
}
