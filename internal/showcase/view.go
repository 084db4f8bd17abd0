package showcase

// ViewMode selects the full-page layout.
type ViewMode int

const (
	ViewShowcase ViewMode = iota
	ViewNotFound
)

func (v ViewMode) String() string {
	if v == ViewNotFound {
		return "not-found"
	}
	return "showcase"
}

// ParseViewMode maps "showcase" or "not-found" to a mode.
func ParseViewMode(value string) (ViewMode, bool) {
	switch value {
	case "showcase":
		return ViewShowcase, true
	case "not-found":
		return ViewNotFound, true
	default:
		return ViewShowcase, false
	}
}
