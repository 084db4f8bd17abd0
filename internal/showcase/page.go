package showcase

// Seed is the initial content of a page.
type Seed struct {
	Theme       ThemeMode
	Alerts      []Notice
	Toasts      []Notice
	Sections    []Section
	OpenSection SectionID
}

// DefaultSeed returns the content the showcase ships with: four alerts, one
// toast and two accordion sections with the first one open.
func DefaultSeed() Seed {
	return Seed{
		Theme: ThemeLight,
		Alerts: []Notice{
			{ID: 1, Severity: SeverityInfo, Icon: "ℹ", Message: "A new version of the design system is available."},
			{ID: 2, Severity: SeveritySuccess, Icon: "✓", Message: "Your changes have been saved."},
			{ID: 3, Severity: SeverityWarning, Icon: "⚠", Message: "Your trial ends in three days."},
			{ID: 4, Severity: SeverityError, Icon: "✗", Message: "The upload failed. Please try again."},
		},
		Toasts: []Notice{
			{ID: 1, Severity: SeveritySuccess, Icon: "✓", Message: "Profile updated."},
		},
		Sections: []Section{
			{ID: 1, Title: "What is this design system?", Body: "A set of tokens and components shared by every screen of the product."},
			{ID: 2, Title: "Can I theme it?", Body: "Yes. Every colour is a token with a light and a dark value."},
		},
		OpenSection: 1,
	}
}

// Page is the showcase view model.
//
// The zero value is not useful; build pages with NewPage.
type Page struct {
	theme     ThemeMode
	loading   Loading
	alerts    NoticeList
	toasts    NoticeList
	accordion Accordion
	view      ViewMode
}

// NewPage builds a page in its initial state from seed.
func NewPage(seed Seed) *Page {
	return &Page{
		theme:     seed.Theme,
		alerts:    NewNoticeList(seed.Alerts...),
		toasts:    NewNoticeList(seed.Toasts...),
		accordion: NewAccordion(seed.OpenSection, seed.Sections...),
		view:      ViewShowcase,
	}
}

// Theme returns the current theme mode.
func (p *Page) Theme() ThemeMode { return p.theme }

// ThemeAttribute returns the presentation attribute for the current theme.
func (p *Page) ThemeAttribute() ThemeAttribute { return attributeFor(p.theme) }

// IsLoading reports whether a simulated action is in flight.
func (p *Page) IsLoading() bool { return p.loading.Active() }

// Loading returns the loading slice.
func (p *Page) Loading() Loading { return p.loading }

// Alerts returns the alert list.
func (p *Page) Alerts() NoticeList { return p.alerts }

// Toasts returns the toast list.
func (p *Page) Toasts() NoticeList { return p.toasts }

// Accordion returns the accordion slice.
func (p *Page) Accordion() Accordion { return p.accordion }

// View returns the current view mode.
func (p *Page) View() ViewMode { return p.view }

// ToggleTheme flips between light and dark and returns the new mode with the
// attribute the renderer must apply.
func (p *Page) ToggleTheme() (ThemeMode, ThemeAttribute) {
	p.theme = p.theme.Toggled()
	return p.theme, attributeFor(p.theme)
}

// StartLoading raises the loading flag and returns the timer to schedule.
func (p *Page) StartLoading() LoadingTimer {
	return p.loading.start()
}

// FinishLoading is called each time a scheduled loading timer fires. It
// clears the flag even when later timers are still pending.
func (p *Page) FinishLoading() {
	p.loading.finish()
}

// RemoveAlert dismisses the alert with id.
func (p *Page) RemoveAlert(id int) bool { return p.alerts.Remove(id) }

// RemoveToast dismisses the toast with id.
func (p *Page) RemoveToast(id int) bool { return p.toasts.Remove(id) }

// ToggleAccordion expands or collapses section id.
func (p *Page) ToggleAccordion(id SectionID) { p.accordion.Toggle(id) }

// ShowNotFound switches to the 404 layout.
func (p *Page) ShowNotFound() { p.view = ViewNotFound }

// ShowHome switches back to the showcase layout.
func (p *Page) ShowHome() { p.view = ViewShowcase }
