package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Mode selects which value of every colour token a theme resolves to.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Token is a design token holding one colour per mode.
type Token struct {
	Light string
	Dark  string
}

// Resolve returns the colour for mode.
func (t Token) Resolve(mode Mode) lipgloss.Color {
	if mode == ModeDark {
		return lipgloss.Color(t.Dark)
	}
	return lipgloss.Color(t.Light)
}

// ColourSet is a resolved group of colours that work together:
//
//   - Base: background or brand colour
//   - OnBase: text drawn on top of Base
//   - Muted: softer variant used for borders and subtle fills
//   - Contrast: accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// TokenSet is the unresolved form of a ColourSet.
type TokenSet struct {
	Base     Token
	OnBase   Token
	Muted    Token
	Contrast Token
}

func (ts TokenSet) resolve(mode Mode) ColourSet {
	return ColourSet{
		Base:     ts.Base.Resolve(mode),
		OnBase:   ts.OnBase.Resolve(mode),
		Muted:    ts.Muted.Resolve(mode),
		Contrast: ts.Contrast.Resolve(mode),
	}
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// PaletteTokens is the full token table a palette is resolved from.
type PaletteTokens struct {
	Primary   TokenSet
	Secondary TokenSet
	Surface   TokenSet
	Success   TokenSet
	Warning   TokenSet
	Danger    TokenSet
	Info      TokenSet
	Neutral   TokenSet
}

// Resolve builds the palette for mode.
func (pt PaletteTokens) Resolve(mode Mode) Palette {
	return Palette{
		Primary:   pt.Primary.resolve(mode),
		Secondary: pt.Secondary.resolve(mode),
		Surface:   pt.Surface.resolve(mode),
		Success:   pt.Success.resolve(mode),
		Warning:   pt.Warning.resolve(mode),
		Danger:    pt.Danger.resolve(mode),
		Info:      pt.Info.resolve(mode),
		Neutral:   pt.Neutral.resolve(mode),
	}
}

// DefaultTokens returns the colour tokens of the design system.
func DefaultTokens() PaletteTokens {
	tk := func(light, dark string) Token { return Token{Light: light, Dark: dark} }

	return PaletteTokens{
		Primary: TokenSet{
			Base:     tk("#3b82f6", "#60a5fa"),
			OnBase:   tk("#f8fafc", "#0b1120"),
			Muted:    tk("#2563eb", "#1d4ed8"),
			Contrast: tk("#facc15", "#ca8a04"),
		},
		Secondary: TokenSet{
			Base:     tk("#a855f7", "#c084fc"),
			OnBase:   tk("#f8fafc", "#1f2937"),
			Muted:    tk("#7c3aed", "#6b21a8"),
			Contrast: tk("#f472b6", "#f472b6"),
		},
		Surface: TokenSet{
			Base:     tk("#f9fafb", "#0b1120"),
			OnBase:   tk("#111827", "#e5e7eb"),
			Muted:    tk("#e2e8f0", "#1f2937"),
			Contrast: tk("#3b82f6", "#60a5fa"),
		},
		Success: TokenSet{
			Base:     tk("#22c55e", "#4ade80"),
			OnBase:   tk("#052e16", "#022c22"),
			Muted:    tk("#16a34a", "#15803d"),
			Contrast: tk("#f8fafc", "#f8fafc"),
		},
		Warning: TokenSet{
			Base:     tk("#eab308", "#facc15"),
			OnBase:   tk("#422006", "#422006"),
			Muted:    tk("#ca8a04", "#a16207"),
			Contrast: tk("#111827", "#111827"),
		},
		Danger: TokenSet{
			Base:     tk("#ef4444", "#f87171"),
			OnBase:   tk("#fef2f2", "#450a0a"),
			Muted:    tk("#dc2626", "#b91c1c"),
			Contrast: tk("#f8fafc", "#f8fafc"),
		},
		Info: TokenSet{
			Base:     tk("#06b6d4", "#22d3ee"),
			OnBase:   tk("#083344", "#04121a"),
			Muted:    tk("#0891b2", "#0e7490"),
			Contrast: tk("#f8fafc", "#f8fafc"),
		},
		Neutral: TokenSet{
			Base:     tk("#64748b", "#334155"),
			OnBase:   tk("#f1f5f9", "#cbd5f5"),
			Muted:    tk("#94a3b8", "#475569"),
			Contrast: tk("#f8fafc", "#f8fafc"),
		},
	}
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for use with Background and Foreground.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// SpacingSize enumerates spacing tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingSmall
	SpacingMedium
	SpacingLarge
)

// BorderVariant enumerates border tokens.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

// TypographyVariant enumerates typography presets.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyCaption
	TypographyCode
	TypographyEmphasis
)

// TypographyScale holds resolved typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// Variant identifies a component variant in the registry. Each component
// declares its own variant type so keys never collide.
type Variant interface {
	variantKey() string
}

// VariantRegistry maps component variants to their styling strategies, so a
// theme drives variant styling through data rather than switches.
type VariantRegistry struct {
	strategies map[Variant]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[Variant]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant Variant, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if none is registered.
func (vr *VariantRegistry) Get(variant Variant) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable, fully resolved styling theme.
type Theme struct {
	Mode       Mode
	Palette    Palette
	Typography TypographyScale
	Variants   *VariantRegistry
	spacing    [4]int
}

// ThemeForMode resolves the default tokens for mode.
func ThemeForMode(mode Mode) Theme {
	return NewTheme(mode, DefaultTokens())
}

// LightTheme returns the light theme.
func LightTheme() Theme { return ThemeForMode(ModeLight) }

// DarkTheme returns the dark theme.
func DarkTheme() Theme { return ThemeForMode(ModeDark) }

// NewTheme resolves tokens for mode and registers the component variants
// against the resulting palette.
func NewTheme(mode Mode, tokens PaletteTokens) Theme {
	palette := tokens.Resolve(mode)

	theme := Theme{
		Mode:       mode,
		Palette:    palette,
		Typography: typographyFor(palette),
		Variants:   NewVariantRegistry(),
		spacing:    [4]int{0, 1, 2, 3},
	}

	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	registerAlertVariants(theme.Variants)

	return theme
}

func typographyFor(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Muted),
		Caption:  base.Faint(true),
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
	}
}

// Space returns the cell count for a spacing token.
func (t Theme) Space(size SpacingSize) int {
	if size < 0 || int(size) >= len(t.spacing) {
		return t.spacing[SpacingSmall]
	}
	return t.spacing[size]
}

// Border returns the lipgloss border for a border token.
func (t Theme) Border(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Text returns the typography preset for variant.
func (t Theme) Text(variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyTitle:
		return t.Typography.Title
	case TypographySubtitle:
		return t.Typography.Subtitle
	case TypographyCaption:
		return t.Typography.Caption
	case TypographyCode:
		return t.Typography.Code
	case TypographyEmphasis:
		return t.Typography.Emphasis
	default:
		return t.Typography.Body
	}
}

// Background applies a semantic background colour with its matching foreground.
//
//	badge := NewBadge("new").WithAppliers(Background(PaletteSecondary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic text colour without touching the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour draws a border token tinted with a palette slot.
func BorderColour(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Border(variant)).BorderForeground(slot(theme.Palette).Base)
	}
}

// Border applies a border token.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(theme.Border(variant))
	}
}

// PaddingX pads left and right.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.Space(size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// Padding pads every side, vertical padding at half the horizontal value
// since terminal cells are tall.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := theme.Space(size)
		return base.Padding(v/2, v)
	}
}

// Typography layers a typography preset under the current style.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Text(variant))
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonPrimary:   PalettePrimary,
		ButtonSecondary: PaletteSecondary,
		ButtonSuccess:   PaletteSuccess,
		ButtonDanger:    PaletteDanger,
		ButtonWarning:   PaletteWarning,
		ButtonInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(Background(slot), PaddingX(SpacingMedium)))
	}
	registry.Register(ButtonGhost, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(SpacingMedium),
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeDefault:   PaletteNeutral,
		BadgePrimary:   PalettePrimary,
		BadgeSecondary: PaletteSecondary,
		BadgeSuccess:   PaletteSuccess,
		BadgeWarning:   PaletteWarning,
		BadgeDanger:    PaletteDanger,
		BadgeInfo:      PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(Background(slot), PaddingX(SpacingSmall)))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	slots := map[AlertVariant]PaletteSlot{
		AlertInfo:    PaletteInfo,
		AlertSuccess: PaletteSuccess,
		AlertWarning: PaletteWarning,
		AlertError:   PaletteDanger,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(BorderColour(BorderRounded, slot), Padding(SpacingMedium)))
	}
}
