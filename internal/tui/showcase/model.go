package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/alexisbeaulieu97/showcase/internal/logger"
	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// Table is the sample data shown in the table section.
type Table struct {
	Columns []components.TableColumn
	Rows    [][]string
}

// Options configures a Model.
type Options struct {
	// Logger receives a debug entry for every page transition. Nil discards.
	Logger *logger.Logger
	// Table is the sample data for the table section.
	Table Table
	// Zones tracks mouse hit-zones. A fresh manager is created when nil.
	Zones *zone.Manager
}

// Model is the bubbletea model driving a showcase page.
type Model struct {
	page  *core.Page
	theme components.Theme
	table Table

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	spinner  spinner.Model
	email    textinput.Model
	zones    *zone.Manager
	log      *logger.Logger

	width  int
	height int
	ready  bool
}

// NewModel creates a model rendering page.
func NewModel(page *core.Page, opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = ""

	zones := opts.Zones
	if zones == nil {
		zones = zone.New()
	}

	keys := defaultKeyMap()
	vp := viewport.New(0, 0)
	vp.KeyMap = keys.viewportKeys()
	vp.MouseWheelEnabled = true

	return Model{
		page:     page,
		theme:    themeFor(page.ThemeAttribute()),
		table:    opts.Table,
		keys:     keys,
		help:     help.New(),
		viewport: vp,
		spinner:  s,
		email:    email,
		zones:    zones,
		log:      opts.Logger,
	}
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Page returns the page the model renders.
func (m Model) Page() *core.Page {
	return m.page
}

// Theme returns the component theme currently applied.
func (m Model) Theme() components.Theme {
	return m.theme
}

// Close releases the hit-zone manager.
func (m Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

// themeFor maps the data-theme attribute onto a component theme.
func themeFor(attr core.ThemeAttribute) components.Theme {
	if attr.Value == core.ThemeDark.String() {
		return components.ThemeForMode(components.ModeDark)
	}
	return components.ThemeForMode(components.ModeLight)
}

func (m Model) context() components.RenderContext {
	return components.NewContext(m.theme, m.contentWidth())
}

// contentWidth is the width available inside the page margins.
func (m Model) contentWidth() int {
	const maxWidth = 100
	return max(min(m.width, maxWidth)-pageStyle.GetHorizontalFrameSize(), 20)
}
