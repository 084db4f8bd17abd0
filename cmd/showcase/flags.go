package main

import (
	"strconv"
	"strings"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func parseTheme(value string) (core.ThemeMode, error) {
	mode, ok := core.ParseThemeMode(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return core.ThemeLight, showcaseerrors.NewOptionError("theme", value, "light", "dark")
	}
	return mode, nil
}

func parseView(value string) (core.ViewMode, error) {
	view, ok := core.ParseViewMode(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return core.ViewShowcase, showcaseerrors.NewOptionError("view", value, "showcase", "not-found")
	}
	return view, nil
}

// validateWidth accepts zero, meaning "detect", or anything wide enough to
// lay out a card.
func validateWidth(width int) error {
	const minWidth = 20
	if width != 0 && width < minWidth {
		return showcaseerrors.NewOptionError("width", strconv.Itoa(width))
	}
	return nil
}
