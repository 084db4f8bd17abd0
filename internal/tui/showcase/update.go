package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncViewport()
		return m, cmd

	case LoadingElapsedMsg:
		m.page.FinishLoading()
		m.log.WithFields(map[string]any{
			"seq":         msg.Seq,
			"outstanding": m.page.Loading().Outstanding(),
		}).Debug("loading finished")
		m.syncViewport()
		return m, nil

	case ThemeAppliedMsg:
		fields := map[string]any{
			"attribute": msg.Attribute.Name,
			"value":     msg.Attribute.Value,
		}
		// Commands run concurrently, so a quick double toggle can deliver
		// its attributes out of order. Only the page's current one applies.
		if msg.Attribute != m.page.ThemeAttribute() {
			m.log.WithFields(fields).Debug("stale theme attribute dropped")
			return m, nil
		}
		m.theme = themeFor(msg.Attribute)
		m.log.WithFields(fields).Debug("theme applied")
		m.syncViewport()
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys. Keys for catalogue controls only work on the
// showcase view since the 404 view does not draw them.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.Home):
		return m.activate(zoneHome)
	}

	if m.page.View() != core.ViewShowcase {
		return m.scroll(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Loading):
		return m.activate(zoneLoading)

	case key.Matches(msg, m.keys.NotFound):
		return m.activate(zoneNotFound)

	case key.Matches(msg, m.keys.Section):
		index := int(msg.String()[0] - '1')
		sections := m.page.Accordion().Sections()
		if index < 0 || index >= len(sections) {
			return m, nil
		}
		return m.activate(sectionZone(int(sections[index].ID)))

	case key.Matches(msg, m.keys.DismissAlert):
		if first, ok := m.page.Alerts().First(); ok {
			return m.activate(alertZone(first.ID))
		}
		return m, nil

	case key.Matches(msg, m.keys.DismissToast):
		if first, ok := m.page.Toasts().First(); ok {
			return m.activate(toastZone(first.ID))
		}
		return m, nil
	}

	return m.scroll(msg)
}

// scroll hands a key to the viewport, which ignores anything that is not
// one of its bindings.
func (m Model) scroll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleMouse dispatches left-click releases on hit-zones and hands
// everything else, wheel scrolling included, to the viewport.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if id, ok := m.zoneAt(msg); ok {
			return m.activate(id)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// zoneAt finds the hit-zone under the pointer among those drawn for the
// current view.
func (m Model) zoneAt(msg tea.MouseMsg) (string, bool) {
	for _, id := range m.zoneIDs() {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id, true
		}
	}
	return "", false
}

func (m Model) zoneIDs() []string {
	if m.page.View() == core.ViewNotFound {
		return []string{zoneTheme, zoneHome, zoneNotFound}
	}

	ids := []string{zoneTheme, zoneNotFound, zoneLoading}
	for _, n := range m.page.Alerts().Items() {
		ids = append(ids, alertZone(n.ID))
	}
	for _, s := range m.page.Accordion().Sections() {
		ids = append(ids, sectionZone(int(s.ID)))
	}
	for _, n := range m.page.Toasts().Items() {
		ids = append(ids, toastZone(n.ID))
	}
	return ids
}

// activate runs the page transition behind a control. Keys and clicks both
// end up here.
func (m Model) activate(zoneID string) (tea.Model, tea.Cmd) {
	switch zoneID {
	case zoneTheme:
		return m.toggleTheme()

	case zoneLoading:
		timer := m.page.StartLoading()
		m.log.WithFields(map[string]any{
			"seq":         timer.Seq,
			"delay":       timer.Delay.String(),
			"outstanding": m.page.Loading().Outstanding(),
		}).Debug("loading started")
		m.syncViewport()
		return m, loadingTimerCmd(timer)

	case zoneNotFound:
		m.page.ShowNotFound()
		m.log.Debug("showing not-found view")
		m.viewport.GotoTop()

	case zoneHome:
		if m.page.View() == core.ViewShowcase {
			return m, nil
		}
		m.page.ShowHome()
		m.log.Debug("showing showcase view")

	default:
		prefix, id, ok := zoneTarget(zoneID)
		if !ok {
			return m, nil
		}
		fields := map[string]any{"id": id}
		switch prefix {
		case alertPrefix:
			fields["removed"] = m.page.RemoveAlert(id)
			m.log.WithFields(fields).Debug("alert dismissed")
		case toastPrefix:
			fields["removed"] = m.page.RemoveToast(id)
			m.log.WithFields(fields).Debug("toast dismissed")
		case sectionPrefix:
			m.page.ToggleAccordion(core.SectionID(id))
			open, isOpen := m.page.Accordion().Open()
			fields["open"] = isOpen
			fields["section"] = int(open)
			m.log.WithFields(fields).Debug("accordion toggled")
		}
	}

	m.syncViewport()
	return m, nil
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	mode, attr := m.page.ToggleTheme()
	m.log.WithFields(map[string]any{"theme": mode.String()}).Debug("theme toggled")
	m.syncViewport()
	return m, applyThemeCmd(attr)
}

// syncViewport sizes the viewport to the space above the footer and
// refreshes its content.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	footer := lipgloss.Height(m.renderFooter())
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-footer, 1)
	m.viewport.SetContent(m.renderBody())
}
