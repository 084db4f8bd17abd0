// Package showcase holds the state of the design system showcase page.
//
// A Page owns six independent slices of local UI state: the colour theme,
// the simulated loading flag, the alert and toast lists, the accordion and
// the current view. Each slice is changed only through its own transition
// method. Transitions never fail and never touch the terminal; side effects
// the renderer has to perform (the theme attribute, the loading timer) are
// returned to the caller as values.
package showcase
