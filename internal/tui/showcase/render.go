package showcase

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

// Render draws page once at width cells: the current view followed by any
// toasts, without the key help or hit-zones.
func Render(page *core.Page, opts Options, width int) string {
	zones := zone.New()
	zones.SetEnabled(false)
	defer zones.Close()

	opts.Zones = zones
	m := NewModel(page, opts)
	m.width = width

	parts := []string{m.renderBody()}
	if toasts := m.renderToasts(); toasts != "" {
		parts = append(parts, "", toasts)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
