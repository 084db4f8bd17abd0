package showcase

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

// loadingTimerCmd fires LoadingElapsedMsg once the timer's delay has passed.
// It is never cancelled.
func loadingTimerCmd(timer core.LoadingTimer) tea.Cmd {
	return tea.Tick(timer.Delay, func(time.Time) tea.Msg {
		return LoadingElapsedMsg{Seq: timer.Seq}
	})
}

// applyThemeCmd delivers a theme attribute back into the update loop.
func applyThemeCmd(attr core.ThemeAttribute) tea.Cmd {
	return func() tea.Msg {
		return ThemeAppliedMsg{Attribute: attr}
	}
}
