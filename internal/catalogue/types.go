package catalogue

import "github.com/alexisbeaulieu97/showcase/internal/showcase"

// Catalogue is the seed content of the showcase page.
type Catalogue struct {
	Alerts      []NoticeSpec  `yaml:"alerts" toml:"alerts" validate:"unique=ID,dive"`
	Toasts      []NoticeSpec  `yaml:"toasts" toml:"toasts" validate:"unique=ID,dive"`
	Sections    []SectionSpec `yaml:"sections" toml:"sections" validate:"required,min=1,unique=ID,dive"`
	OpenSection int           `yaml:"open_section" toml:"open_section" validate:"gte=0"`
	Table       TableSpec     `yaml:"table" toml:"table"`
}

// NoticeSpec describes one alert or toast.
type NoticeSpec struct {
	ID       int    `yaml:"id" toml:"id" validate:"required,gte=1"`
	Severity string `yaml:"severity" toml:"severity" validate:"required,severity"`
	Icon     string `yaml:"icon,omitempty" toml:"icon,omitempty"`
	Message  string `yaml:"message" toml:"message" validate:"required"`
}

// SectionSpec describes one accordion section.
type SectionSpec struct {
	ID    int    `yaml:"id" toml:"id" validate:"required,gte=1"`
	Title string `yaml:"title" toml:"title" validate:"required"`
	Body  string `yaml:"body" toml:"body" validate:"required"`
}

// TableSpec is the sample data shown by the table component.
type TableSpec struct {
	Columns []ColumnSpec `yaml:"columns" toml:"columns" validate:"dive"`
	Rows    [][]string   `yaml:"rows" toml:"rows"`
}

// ColumnSpec is a table column header.
type ColumnSpec struct {
	Title string `yaml:"title" toml:"title" validate:"required"`
	Width int    `yaml:"width" toml:"width" validate:"gte=1"`
}

// Seed converts the catalogue into the initial state of a page.
func (c *Catalogue) Seed(theme showcase.ThemeMode) showcase.Seed {
	seed := showcase.Seed{
		Theme:       theme,
		Alerts:      notices(c.Alerts),
		Toasts:      notices(c.Toasts),
		OpenSection: showcase.SectionID(c.OpenSection),
	}
	for _, s := range c.Sections {
		seed.Sections = append(seed.Sections, showcase.Section{
			ID:    showcase.SectionID(s.ID),
			Title: s.Title,
			Body:  s.Body,
		})
	}
	return seed
}

func notices(specs []NoticeSpec) []showcase.Notice {
	out := make([]showcase.Notice, 0, len(specs))
	for _, spec := range specs {
		sev, _ := showcase.ParseSeverity(spec.Severity)
		icon := spec.Icon
		if icon == "" {
			icon = sev.DefaultIcon()
		}
		out = append(out, showcase.Notice{
			ID:       spec.ID,
			Severity: sev,
			Icon:     icon,
			Message:  spec.Message,
		})
	}
	return out
}
