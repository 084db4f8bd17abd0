package showcase

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

// body renders the whole scrollable page, not just the visible window.
func body(m Model) string {
	return ansi.Strip(m.renderBody())
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := NewModel(core.NewPage(core.DefaultSeed()), Options{})
	t.Cleanup(m.Close)

	assert.Equal(t, "Initializing...", m.View())
}

func TestView_ShowcaseSections(t *testing.T) {
	m := newTestModel(t)
	out := body(m)

	for _, want := range []string{
		"UI System",
		"Design System Showcase",
		"Buttons",
		"Click to Load",
		"Badges & Tags",
		"Form Inputs",
		"Incorrect password. Please try again.",
		"Alerts",
		"A new version of the design system is available.",
		"The upload failed. Please try again.",
		"What is this design system?",
		"A set of tokens and components shared by every screen of the product.",
		"Can I theme it?",
		"Ada Lovelace",
		"Tooltips",
		"Loaders",
		"Onboarding 3/5",
		"Shadow Depth",
		"Empty State",
	} {
		assert.Contains(t, out, want)
	}

	assert.NotContains(t, out, "Every colour is a token", "closed sections hide their body")
	assert.Contains(t, ansi.Strip(m.View()), "Profile updated.")
}

func TestView_DismissedAlertDisappears(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.activate(alertZone(4))
	m = updated.(Model)
	assert.NotContains(t, body(m), "The upload failed")

	for _, id := range []int{1, 2, 3} {
		updated, _ = m.activate(alertZone(id))
		m = updated.(Model)
	}
	assert.Contains(t, body(m), "No alerts")
}

func TestView_LoadingButton(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, runeKey('l'))
	out := body(m)
	assert.Contains(t, out, "Loading...")
	assert.Contains(t, out, "Loading content...")
	assert.NotContains(t, out, "Click to Load")

	m, _ = press(t, m, LoadingElapsedMsg{Seq: 1})
	assert.Contains(t, body(m), "Click to Load")
}

func TestView_NotFoundHidesCatalogue(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, runeKey('n'))

	out := body(m)
	assert.Contains(t, out, "404")
	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, "Back home")
	assert.NotContains(t, out, "Badges & Tags")
	assert.NotContains(t, out, "Form Inputs")
	assert.Contains(t, ansi.Strip(m.View()), "view=not-found")
}

func TestView_DarkThemeChangesOutput(t *testing.T) {
	m := newTestModel(t)
	light := m.renderBody()

	m, cmd := press(t, m, runeKey('t'))
	m, _ = press(t, m, cmd())
	dark := m.renderBody()

	assert.NotEqual(t, light, dark)
	assert.Contains(t, ansi.Strip(light), "☾ Dark")
	assert.Contains(t, ansi.Strip(dark), "☀ Light", "the theme button offers the other mode")
}

func TestView_FooterShowsThemeAttribute(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, ansi.Strip(m.View()), "data-theme=light")

	m, _ = press(t, m, runeKey('t'))
	assert.Contains(t, ansi.Strip(m.View()), "data-theme=dark")
}

func TestRender_Static(t *testing.T) {
	page := core.NewPage(core.DefaultSeed())
	out := Render(page, Options{Table: sampleTable()}, 80)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "Design System Showcase")
	assert.Contains(t, plain, "Profile updated.")
	assert.NotContains(t, plain, "data-theme=", "static output has no footer")
	for _, line := range strings.Split(plain, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 80, line)
	}

	page.ShowNotFound()
	assert.Contains(t, ansi.Strip(Render(page, Options{}, 80)), "Page not found")
}
