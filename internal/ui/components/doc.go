// Package components is the design system: colour tokens with a light and a
// dark value, and the lipgloss components the showcase renders with them.
//
// A Theme is resolved once per mode and passed down explicitly:
//
//	ctx := components.NewContext(components.ThemeForMode(components.ModeDark), 80)
//	out := components.NewAlert("Saved.").WithVariant(components.AlertSuccess).ViewWithContext(ctx)
//
// View() renders with the light theme and no width limit.
//
// Layout: Stack, Container (and NewCard), Divider, Text.
// Controls: Button, Badge, Tag, Input, Tooltip.
// Feedback: Alert, Toast, Loader, EmptyState.
// Data: Accordion, Table.
//
// Components accept StyleFunc modifiers through WithAppliers. Variant
// styling for buttons, badges and alerts lives in the theme's
// VariantRegistry.
//
// Components never handle input. Interactive parts (close controls,
// accordion headers) take a mark function so the caller can wrap them in
// mouse hit-zones.
package components
