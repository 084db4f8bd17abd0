package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage_InitialState(t *testing.T) {
	p := NewPage(DefaultSeed())

	assert.Equal(t, ThemeLight, p.Theme())
	assert.False(t, p.IsLoading())
	assert.Equal(t, []int{1, 2, 3, 4}, p.Alerts().IDs())
	assert.Equal(t, []int{1}, p.Toasts().IDs())
	assert.Equal(t, ViewShowcase, p.View())

	open, ok := p.Accordion().Open()
	require.True(t, ok)
	assert.Equal(t, SectionID(1), open)
}

func TestToggleTheme_IsInvolution(t *testing.T) {
	p := NewPage(DefaultSeed())

	mode, attr := p.ToggleTheme()
	assert.Equal(t, ThemeDark, mode)
	assert.Equal(t, ThemeAttribute{Name: "data-theme", Value: "dark"}, attr)

	mode, attr = p.ToggleTheme()
	assert.Equal(t, ThemeLight, mode)
	assert.Equal(t, "light", attr.Value)
	assert.Equal(t, attr, p.ThemeAttribute())
}

func TestStartLoading_SingleInvocation(t *testing.T) {
	p := NewPage(DefaultSeed())

	timer := p.StartLoading()
	assert.True(t, p.IsLoading())
	assert.Equal(t, LoadingDelay, timer.Delay)
	assert.Equal(t, 1, p.Loading().Outstanding())

	p.FinishLoading()
	assert.False(t, p.IsLoading())
	assert.Equal(t, 0, p.Loading().Outstanding())
}

func TestStartLoading_RetriggerClearsOnFirstTimer(t *testing.T) {
	p := NewPage(DefaultSeed())

	first := p.StartLoading()
	second := p.StartLoading()
	assert.NotEqual(t, first.Seq, second.Seq)
	assert.Equal(t, 2, p.Loading().Outstanding())

	// the first timer clears the flag even though the second is pending
	p.FinishLoading()
	assert.False(t, p.IsLoading())
	assert.Equal(t, 1, p.Loading().Outstanding())

	p.FinishLoading()
	assert.False(t, p.IsLoading())
	assert.Equal(t, 0, p.Loading().Outstanding())
}

func TestRemoveAlert_KeepsOrder(t *testing.T) {
	p := NewPage(DefaultSeed())

	require.True(t, p.RemoveAlert(2))
	assert.Equal(t, []int{1, 3, 4}, p.Alerts().IDs())
	assert.False(t, p.Alerts().Contains(2))
}

func TestRemoveAlert_Idempotent(t *testing.T) {
	p := NewPage(DefaultSeed())

	require.True(t, p.RemoveAlert(3))
	before := p.Alerts().IDs()

	assert.False(t, p.RemoveAlert(3))
	assert.Equal(t, before, p.Alerts().IDs())
	assert.False(t, p.RemoveAlert(99))
	assert.Len(t, p.Alerts().IDs(), 3)
}

func TestRemoveAlert_CanEmptyList(t *testing.T) {
	p := NewPage(DefaultSeed())

	for _, id := range []int{4, 1, 3, 2} {
		require.True(t, p.RemoveAlert(id))
	}
	assert.Equal(t, 0, p.Alerts().Len())
	_, ok := p.Alerts().First()
	assert.False(t, ok)
}

func TestRemoveToast(t *testing.T) {
	p := NewPage(DefaultSeed())

	require.True(t, p.RemoveToast(1))
	assert.Equal(t, 0, p.Toasts().Len())
	assert.False(t, p.RemoveToast(1))
	assert.Equal(t, 4, p.Alerts().Len(), "alerts are independent of toasts")
}

func TestToggleAccordion(t *testing.T) {
	tests := []struct {
		name     string
		start    SectionID
		toggle   SectionID
		wantOpen SectionID
	}{
		{name: "collapse open section", start: 1, toggle: 1, wantOpen: NoSection},
		{name: "open from none", start: NoSection, toggle: 2, wantOpen: 2},
		{name: "switch sections", start: 1, toggle: 2, wantOpen: 2},
		{name: "unknown id ignored", start: 1, toggle: 7, wantOpen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := DefaultSeed()
			seed.OpenSection = tt.start
			p := NewPage(seed)

			p.ToggleAccordion(tt.toggle)

			open, _ := p.Accordion().Open()
			assert.Equal(t, tt.wantOpen, open)
			for _, s := range p.Accordion().Sections() {
				assert.Equal(t, s.ID == tt.wantOpen, p.Accordion().IsOpen(s.ID))
			}
		})
	}
}

func TestViewSwitch_RoundTripPreservesState(t *testing.T) {
	p := NewPage(DefaultSeed())
	p.ToggleTheme()
	p.RemoveAlert(1)
	p.ToggleAccordion(2)
	p.StartLoading()

	themeBefore := p.Theme()
	alertsBefore := p.Alerts().IDs()
	toastsBefore := p.Toasts().IDs()
	accordionBefore := p.Accordion()
	loadingBefore := p.IsLoading()

	p.ShowNotFound()
	assert.Equal(t, ViewNotFound, p.View())
	p.ShowHome()
	assert.Equal(t, ViewShowcase, p.View())

	assert.Equal(t, themeBefore, p.Theme())
	assert.Equal(t, alertsBefore, p.Alerts().IDs())
	assert.Equal(t, toastsBefore, p.Toasts().IDs())
	assert.Equal(t, accordionBefore, p.Accordion())
	assert.Equal(t, loadingBefore, p.IsLoading())
}

func TestNewNoticeList_DropsDuplicateIDs(t *testing.T) {
	l := NewNoticeList(
		Notice{ID: 1, Message: "first"},
		Notice{ID: 1, Message: "again"},
		Notice{ID: 2, Message: "second"},
	)

	assert.Equal(t, []int{1, 2}, l.IDs())
	first, ok := l.First()
	require.True(t, ok)
	assert.Equal(t, "first", first.Message)
}

func TestNoticeList_ItemsIsACopy(t *testing.T) {
	l := NewNoticeList(Notice{ID: 1, Message: "a"})

	items := l.Items()
	items[0].Message = "changed"

	first, _ := l.First()
	assert.Equal(t, "a", first.Message)
}

func TestParseHelpers(t *testing.T) {
	sev, ok := ParseSeverity("warning")
	assert.True(t, ok)
	assert.Equal(t, SeverityWarning, sev)
	_, ok = ParseSeverity("fatal")
	assert.False(t, ok)

	mode, ok := ParseThemeMode("dark")
	assert.True(t, ok)
	assert.Equal(t, ThemeDark, mode)
	_, ok = ParseThemeMode("sepia")
	assert.False(t, ok)

	view, ok := ParseViewMode("not-found")
	assert.True(t, ok)
	assert.Equal(t, ViewNotFound, view)
	assert.Equal(t, "not-found", view.String())
}
