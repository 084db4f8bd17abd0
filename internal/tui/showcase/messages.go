package showcase

import (
	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

// LoadingElapsedMsg reports that a loading timer scheduled by StartLoading
// has fired.
type LoadingElapsedMsg struct {
	Seq int
}

// ThemeAppliedMsg carries the theme attribute produced by a toggle so the
// renderer can switch component themes.
type ThemeAppliedMsg struct {
	Attribute core.ThemeAttribute
}
