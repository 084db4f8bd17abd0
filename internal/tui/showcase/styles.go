package showcase

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

var (
	// Outer margin of the page body.
	pageStyle = lipgloss.NewStyle().Padding(1, 2, 0, 2)

	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			PaddingLeft(2)

	toastStackStyle = lipgloss.NewStyle().PaddingRight(2)
)

// footerFor tints the footer rule for theme.
func footerFor(theme components.Theme) lipgloss.Style {
	return footerStyle.BorderForeground(theme.Palette.Neutral.Muted)
}

// helpFor colours the key help for theme.
func helpFor(h help.Model, theme components.Theme) help.Model {
	p := theme.Palette
	keyStyle := lipgloss.NewStyle().Foreground(p.Primary.Base).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(p.Neutral.Muted)

	h.Styles.ShortKey = keyStyle
	h.Styles.FullKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.FullDesc = descStyle
	h.Styles.ShortSeparator = descStyle
	h.Styles.FullSeparator = descStyle
	return h
}
