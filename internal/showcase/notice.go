package showcase

// Severity classifies an alert or toast.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityInfo:    "info",
	SeveritySuccess: "success",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "info"
}

// ParseSeverity maps a severity name to its value.
func ParseSeverity(name string) (Severity, bool) {
	for sev, n := range severityNames {
		if n == name {
			return sev, true
		}
	}
	return SeverityInfo, false
}

// DefaultIcon returns the glyph shown for a severity when none is configured.
func (s Severity) DefaultIcon() string {
	switch s {
	case SeveritySuccess:
		return "✓"
	case SeverityWarning:
		return "⚠"
	case SeverityError:
		return "✗"
	default:
		return "ℹ"
	}
}

// Notice is a dismissible alert or toast.
type Notice struct {
	ID       int
	Severity Severity
	Icon     string
	Message  string
}

// NoticeList is an ordered collection of notices keyed by unique id.
// It only ever shrinks.
type NoticeList struct {
	items []Notice
}

// NewNoticeList builds a list from seed notices. Later duplicates of an id
// are dropped so ids stay unique.
func NewNoticeList(seed ...Notice) NoticeList {
	seen := make(map[int]struct{}, len(seed))
	items := make([]Notice, 0, len(seed))
	for _, n := range seed {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		items = append(items, n)
	}
	return NoticeList{items: items}
}

// Items returns a copy of the notices in display order.
func (l NoticeList) Items() []Notice {
	out := make([]Notice, len(l.items))
	copy(out, l.items)
	return out
}

// IDs returns the notice ids in display order.
func (l NoticeList) IDs() []int {
	ids := make([]int, len(l.items))
	for i, n := range l.items {
		ids[i] = n.ID
	}
	return ids
}

// Len returns the number of notices.
func (l NoticeList) Len() int {
	return len(l.items)
}

// First returns the notice at the top of the list.
func (l NoticeList) First() (Notice, bool) {
	if len(l.items) == 0 {
		return Notice{}, false
	}
	return l.items[0], true
}

// Contains reports whether a notice with id is present.
func (l NoticeList) Contains(id int) bool {
	for _, n := range l.items {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Remove drops the notice with id. Absent ids are a no-op and report false.
func (l *NoticeList) Remove(id int) bool {
	kept := l.items[:0:0]
	for _, n := range l.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	removed := len(kept) != len(l.items)
	l.items = kept
	return removed
}
