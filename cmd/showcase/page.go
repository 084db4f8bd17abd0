package main

import (
	"fmt"

	"github.com/alexisbeaulieu97/showcase/internal/catalogue"
	"github.com/alexisbeaulieu97/showcase/internal/logger"
	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
	tuishowcase "github.com/alexisbeaulieu97/showcase/internal/tui/showcase"
	"github.com/alexisbeaulieu97/showcase/internal/ui/components"
)

// loadPage seeds a fresh page from the configured catalogue.
func loadPage(flags *rootFlags, log *logger.Logger) (*core.Page, tuishowcase.Table, error) {
	theme, err := parseTheme(flags.theme)
	if err != nil {
		return nil, tuishowcase.Table{}, err
	}

	cat, err := catalogue.Load(flags.catalogue, log)
	if err != nil {
		return nil, tuishowcase.Table{}, fmt.Errorf("failed to load catalogue: %w", err)
	}

	log.WithFields(map[string]any{
		"alerts":   len(cat.Alerts),
		"toasts":   len(cat.Toasts),
		"sections": len(cat.Sections),
		"theme":    theme.String(),
	}).Debug("catalogue loaded")

	return core.NewPage(cat.Seed(theme)), tableFrom(cat.Table), nil
}

func tableFrom(spec catalogue.TableSpec) tuishowcase.Table {
	columns := make([]components.TableColumn, len(spec.Columns))
	for i, c := range spec.Columns {
		columns[i] = components.TableColumn{Title: c.Title, Width: c.Width}
	}
	return tuishowcase.Table{Columns: columns, Rows: spec.Rows}
}
