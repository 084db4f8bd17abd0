package showcase

// ThemeMode is the colour scheme the page is rendered with.
type ThemeMode int

const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

// ThemeAttributeName is the presentation attribute kept in sync with the theme.
const ThemeAttributeName = "data-theme"

// String returns the attribute value for the mode.
func (m ThemeMode) String() string {
	if m == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggled returns the opposite mode.
func (m ThemeMode) Toggled() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseThemeMode maps "light" or "dark" to a mode. Anything else reports false.
func ParseThemeMode(value string) (ThemeMode, bool) {
	switch value {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	default:
		return ThemeLight, false
	}
}

// ThemeAttribute is the signal a renderer applies after a theme change.
type ThemeAttribute struct {
	Name  string
	Value string
}

func attributeFor(mode ThemeMode) ThemeAttribute {
	return ThemeAttribute{Name: ThemeAttributeName, Value: mode.String()}
}
