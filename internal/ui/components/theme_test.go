package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestThemeForModeResolvesTokens(t *testing.T) {
	light := ThemeForMode(ModeLight)
	dark := ThemeForMode(ModeDark)

	assert.Equal(t, ModeLight, light.Mode)
	assert.Equal(t, lipgloss.Color("#3b82f6"), light.Palette.Primary.Base)
	assert.Equal(t, lipgloss.Color("#60a5fa"), dark.Palette.Primary.Base)
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base, "surface should invert between modes")
	assert.NotEqual(t, light.Typography.Body.GetForeground(), dark.Typography.Body.GetForeground())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "light", ModeLight.String())
	assert.Equal(t, "dark", ModeDark.String())
}

func TestThemeBorder(t *testing.T) {
	theme := LightTheme()
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Border(BorderRounded))
	assert.Equal(t, lipgloss.DoubleBorder(), theme.Border(BorderDouble))
	assert.Equal(t, lipgloss.HiddenBorder(), theme.Border(BorderNone))
}

func TestThemeSpace(t *testing.T) {
	theme := LightTheme()
	assert.Equal(t, 0, theme.Space(SpacingNone))
	assert.Equal(t, 2, theme.Space(SpacingMedium))
	assert.Equal(t, 1, theme.Space(SpacingSize(42)), "unknown sizes fall back to small")
}

func TestThemeText(t *testing.T) {
	theme := DarkTheme()
	assert.True(t, theme.Text(TypographyTitle).GetBold())
	assert.True(t, theme.Text(TypographyCaption).GetFaint())
	assert.Equal(t, theme.Typography.Body, theme.Text(TypographyVariant(99)))
}

func TestVariantRegistryKeysByType(t *testing.T) {
	theme := LightTheme()

	// ButtonPrimary and BadgeDefault share the same integer value.
	button := theme.Variants.Get(ButtonPrimary).Apply(lipgloss.NewStyle(), theme)
	badge := theme.Variants.Get(BadgeDefault).Apply(lipgloss.NewStyle(), theme)

	assert.Equal(t, theme.Palette.Primary.Base, button.GetBackground())
	assert.Equal(t, theme.Palette.Neutral.Base, badge.GetBackground())
}

func TestVariantRegistryNil(t *testing.T) {
	var registry *VariantRegistry
	assert.Nil(t, registry.Get(ButtonPrimary))
}

func TestStyleFuncs(t *testing.T) {
	theme := LightTheme()

	bg := Background(PaletteDanger)(lipgloss.NewStyle(), theme)
	assert.Equal(t, theme.Palette.Danger.Base, bg.GetBackground())
	assert.Equal(t, theme.Palette.Danger.OnBase, bg.GetForeground())

	fg := Foreground(PaletteInfo)(lipgloss.NewStyle(), theme)
	assert.Equal(t, theme.Palette.Info.Base, fg.GetForeground())

	padded := PaddingX(SpacingLarge)(lipgloss.NewStyle(), theme)
	assert.Equal(t, 3, padded.GetPaddingLeft())
	assert.Equal(t, 3, padded.GetPaddingRight())

	boxed := Padding(SpacingMedium)(lipgloss.NewStyle(), theme)
	assert.Equal(t, 1, boxed.GetPaddingTop())
	assert.Equal(t, 2, boxed.GetPaddingLeft())
}

func TestCompositeStrategyOrder(t *testing.T) {
	theme := LightTheme()
	strategy := NewCompositeStrategy(Foreground(PalettePrimary), Foreground(PaletteDanger))

	style := strategy.Apply(lipgloss.NewStyle(), theme)
	assert.Equal(t, theme.Palette.Danger.Base, style.GetForeground(), "later appliers win")
}
