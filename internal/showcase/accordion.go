package showcase

// SectionID identifies an accordion section. Ids start at 1.
type SectionID int

// NoSection means every section is collapsed.
const NoSection SectionID = 0

// Section is a collapsible block of content.
type Section struct {
	ID    SectionID
	Title string
	Body  string
}

// Accordion tracks the single open section, if any.
type Accordion struct {
	sections []Section
	open     SectionID
}

// NewAccordion builds an accordion with the given section initially open.
// Pass NoSection to start collapsed.
func NewAccordion(open SectionID, sections ...Section) Accordion {
	a := Accordion{sections: append([]Section(nil), sections...)}
	if a.has(open) {
		a.open = open
	}
	return a
}

// Open returns the expanded section id and whether one is expanded.
func (a Accordion) Open() (SectionID, bool) {
	return a.open, a.open != NoSection
}

// IsOpen reports whether id is the expanded section.
func (a Accordion) IsOpen(id SectionID) bool {
	return id != NoSection && a.open == id
}

// Sections returns the sections in display order.
func (a Accordion) Sections() []Section {
	return append([]Section(nil), a.sections...)
}

// Toggle collapses id when it is open and otherwise opens it, collapsing
// whichever section was open before. Unknown ids are ignored.
func (a *Accordion) Toggle(id SectionID) {
	if !a.has(id) {
		return
	}
	if a.open == id {
		a.open = NoSection
		return
	}
	a.open = id
}

func (a Accordion) has(id SectionID) bool {
	if id == NoSection {
		return false
	}
	for _, s := range a.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
