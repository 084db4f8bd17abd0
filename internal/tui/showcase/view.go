package showcase

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// View renders the current model state
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.renderFooter()))
}

// renderBody renders whichever full-screen layout the page is on.
func (m Model) renderBody() string {
	if m.page.View() == core.ViewNotFound {
		return m.renderNotFound()
	}
	return m.renderShowcase()
}

func (m Model) renderShowcase() string {
	ctx := m.context()

	page := components.VStack(
		m.navbar(),
		m.hero(),
		m.buttonsSection(),
		m.badgesSection(),
		m.inputsSection(),
		m.alertsSection(),
		m.accordionSection(),
		m.tableSection(),
		m.tooltipSection(),
		m.loaderSection(),
		m.shadowSection(),
		m.emptySection(),
	).WithGap(1)

	return pageStyle.Render(page.ViewWithContext(ctx))
}

func (m Model) renderNotFound() string {
	ctx := m.context()

	home := components.NewButton("← Back home")
	action := ui.RenderFunc(func() string {
		return m.zones.Mark(zoneHome, components.Render(home, ctx))
	})

	body := components.VStack(
		m.navbar(),
		components.NewEmptyState("Page not found").
			WithIcon("404").
			WithDescription("The page you are looking for does not exist or has been moved.").
			WithAction(action),
	).WithGap(2)

	return pageStyle.Render(body.ViewWithContext(ctx))
}

// navbar spreads the logo and the links across the content width.
func (m Model) navbar() ui.Renderable {
	return ui.RenderFunc(func() string {
		ctx := m.context()
		theme := ctx.Theme

		logo := components.TitleText("◆ UI System").ViewWithContext(ctx)

		label := "☾ Dark"
		if m.page.Theme() == core.ThemeDark {
			label = "☀ Light"
		}
		link := theme.Text(components.TypographySubtitle)
		right := strings.Join([]string{
			link.Render("Components"),
			link.Render("Documentation"),
			m.zones.Mark(zoneNotFound, link.Underline(true).Render("Missing page")),
			m.zones.Mark(zoneTheme, components.NewButton(label).WithVariant(components.ButtonGhost).ViewWithContext(ctx)),
		}, "  ")

		gap := max(ctx.Width-lipgloss.Width(logo)-lipgloss.Width(right), 1)
		bar := logo + strings.Repeat(" ", gap) + right
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.Palette.Neutral.Muted).
			Render(bar)
	})
}

func (m Model) hero() ui.Renderable {
	return components.VStack(
		components.TitleText("Design System Showcase"),
		components.SubtitleText("A lightweight, token-based design system for the terminal."),
		ui.Raw(""),
		components.HStack(
			components.NewBadge("v1.0.0 Live").WithVariant(components.BadgeSuccess).WithPulse(true),
			components.NewTag("Design Tokens").WithOutline(true).WithColour(components.PalettePrimary),
			components.NewTag("Dark Mode").WithOutline(true).WithColour(components.PalettePrimary),
		).WithGap(1),
	).WithAlign(components.AlignCenter)
}

func (m Model) buttonsSection() ui.Renderable {
	frame := m.spinner.View()

	load := components.NewButton("Click to Load")
	if m.page.IsLoading() {
		load = components.NewButton("Loading...").WithLoading(true, frame)
	}

	return components.NewCard("Buttons",
		components.HStack(
			components.NewButton("Primary Button"),
			components.NewButton("Secondary").WithVariant(components.ButtonSecondary),
			components.NewButton("Success").WithVariant(components.ButtonSuccess),
			components.NewButton("Error").WithVariant(components.ButtonDanger),
			components.NewButton("Warning").WithVariant(components.ButtonWarning),
			components.NewButton("Info").WithVariant(components.ButtonInfo),
			components.NewButton("Ghost").WithVariant(components.ButtonGhost),
			components.NewButton("Disabled").WithDisabled(true),
		).WithGap(1).WithWrap(true),
		components.SubtitleText("States"),
		components.HStack(
			m.marked(zoneLoading, load),
			components.NewButton("Ghost Loading").WithVariant(components.ButtonGhost).WithLoading(true, frame),
		).WithGap(1),
	)
}

func (m Model) badgesSection() ui.Renderable {
	return components.NewCard("Badges & Tags",
		components.HStack(
			components.NewBadge("Default"),
			components.NewBadge("Success").WithVariant(components.BadgeSuccess),
			components.NewBadge("Error").WithVariant(components.BadgeDanger),
			components.NewBadge("Warning").WithVariant(components.BadgeWarning),
		).WithGap(1).WithWrap(true),
		components.HStack(
			components.NewBadge("Online").WithVariant(components.BadgeSuccess).WithPulse(true),
			components.NewBadge("Offline").WithVariant(components.BadgeDanger).WithPulse(true),
			components.NewBadge("Connecting").WithVariant(components.BadgeWarning).WithPulse(true),
		).WithGap(1).WithWrap(true),
		components.HStack(
			components.NewTag("Neutral Tag"),
			components.NewTag("Primary Tag").WithColour(components.PalettePrimary),
			components.NewTag("Outline Tag").WithOutline(true),
		).WithGap(1).WithWrap(true),
	)
}

func (m Model) inputsSection() ui.Renderable {
	return components.NewCard("Form Inputs",
		components.NewInputFrom("Email Address", m.email),
		components.NewInput("Username", "johndoe"),
		components.NewInput("Password (Error State)", "").
			WithPassword().
			WithValue("wrongpassword").
			WithError("Incorrect password. Please try again."),
		components.NewInput("Disabled Input", "Cannot type here").WithDisabled(true),
	)
}

func (m Model) alertsSection() ui.Renderable {
	alerts := m.page.Alerts().Items()
	if len(alerts) == 0 {
		return components.NewCard("Alerts",
			components.NewEmptyState("No alerts").
				WithIcon("✓").
				WithDescription("Every alert has been dismissed."),
		)
	}

	children := make([]ui.Renderable, 0, len(alerts)+1)
	for _, n := range alerts {
		id := n.ID
		children = append(children, components.NewAlert(n.Message).
			WithVariant(alertVariant(n.Severity)).
			WithIcon(n.Icon).
			WithDismiss(func(s string) string { return m.zones.Mark(alertZone(id), s) }))
	}
	children = append(children, components.CaptionText("Press a or click ✕ to dismiss."))

	card := components.NewCard("Alerts", children...)
	return card.WithGap(0)
}

func (m Model) accordionSection() ui.Renderable {
	acc := m.page.Accordion()
	sections := acc.Sections()

	items := make([]components.AccordionItem, len(sections))
	for i, s := range sections {
		items[i] = components.AccordionItem{
			Key:   strconv.Itoa(int(s.ID)),
			Title: s.Title,
			Body:  s.Body,
			Open:  acc.IsOpen(s.ID),
		}
	}

	return components.NewCard("Accordion",
		components.NewAccordion(items...).WithHeaderMark(func(key, header string) string {
			return m.zones.Mark(sectionPrefix+key, header)
		}),
		components.CaptionText("Press 1-9 or click a heading."),
	)
}

func (m Model) tableSection() ui.Renderable {
	if len(m.table.Columns) == 0 {
		return nil
	}
	return components.NewCard("Table",
		components.NewTable(m.table.Columns...).WithRows(m.table.Rows...),
	)
}

func (m Model) tooltipSection() ui.Renderable {
	return components.NewCard("Tooltips",
		components.HStack(
			components.NewTooltip("Save", "Writes your changes"),
			components.NewTooltip("Share", "Copies a link").WithPlacement(components.PlacementBottom),
			components.NewTooltip("Help", "Opens the docs").WithPlacement(components.PlacementRight),
		).WithGap(4).WithWrap(true),
	)
}

func (m Model) loaderSection() ui.Renderable {
	frame := m.spinner.View()
	if m.page.IsLoading() {
		return components.NewCard("Loaders",
			components.NewLoader(frame, "Loading content...").WithSkeleton(3),
		)
	}
	return components.NewCard("Loaders",
		components.NewLoader(frame, "Fetching data"),
		components.NewProgress(3, 5).WithLabel("Onboarding"),
		components.CaptionText("Press l to simulate a two second load."),
	)
}

func (m Model) shadowSection() ui.Renderable {
	card := func(title, text string, border components.BorderVariant) ui.Renderable {
		return components.NewContainer(components.SubtitleText(text)).
			WithTitle(title).
			WithBorder(border).
			WithPadding(components.SymmetricSpacing(0, 1))
	}

	return components.VStack(
		components.TitleText("Shadow Depth"),
		components.HStack(
			card("Shadow SM", "Subtle depth for cards and simple surfaces.", components.BorderNormal),
			card("Shadow MD", "Standard depth for buttons and active elements.", components.BorderThick),
			card("Shadow LG", "High depth for modals, dropdowns, and hover states.", components.BorderDouble),
		).WithGap(1),
	).WithGap(1)
}

func (m Model) emptySection() ui.Renderable {
	return components.NewCard("Empty State",
		components.NewEmptyState("No projects yet").
			WithDescription("Create a project to get started.").
			WithAction(components.NewButton("New project")),
	)
}

// renderToasts stacks the toasts against the right edge.
func (m Model) renderToasts() string {
	toasts := m.page.Toasts().Items()
	if len(toasts) == 0 {
		return ""
	}

	ctx := m.context()
	views := make([]string, len(toasts))
	for i, n := range toasts {
		id := n.ID
		views[i] = components.NewToast(n.Message).
			WithVariant(alertVariant(n.Severity)).
			WithIcon(n.Icon).
			WithDismiss(func(s string) string { return m.zones.Mark(toastZone(id), s) }).
			ViewWithContext(ctx)
	}

	stack := toastStackStyle.Render(lipgloss.JoinVertical(lipgloss.Right, views...))
	return lipgloss.PlaceHorizontal(max(m.width, lipgloss.Width(stack)), lipgloss.Right, stack)
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, 2)
	if toasts := m.renderToasts(); toasts != "" {
		parts = append(parts, toasts)
	}

	h := helpFor(m.help, m.theme)
	status := m.theme.Text(components.TypographyCaption).
		Render("data-theme=" + m.page.ThemeAttribute().Value + "  view=" + m.page.View().String())
	parts = append(parts, footerFor(m.theme).Width(max(m.width, 1)).Render(
		lipgloss.JoinVertical(lipgloss.Left, h.View(m.keys), status),
	))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// marked wraps a component in a hit-zone.
func (m Model) marked(id string, r ui.Renderable) ui.Renderable {
	return markedRenderable{zones: m.zones, id: id, inner: r}
}

type markedRenderable struct {
	zones *zone.Manager
	id    string
	inner ui.Renderable
}

func (r markedRenderable) View() string {
	return r.ViewWithContext(components.DefaultContext())
}

func (r markedRenderable) ViewWithContext(ctx components.RenderContext) string {
	return r.zones.Mark(r.id, components.Render(r.inner, ctx))
}

func alertVariant(s core.Severity) components.AlertVariant {
	switch s {
	case core.SeveritySuccess:
		return components.AlertSuccess
	case core.SeverityWarning:
		return components.AlertWarning
	case core.SeverityError:
		return components.AlertError
	default:
		return components.AlertInfo
	}
}
