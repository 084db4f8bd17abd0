// Package showcase is the terminal front end of the design-system showcase.
// Model renders a showcase.Page with the component library, maps keys and
// mouse clicks onto the page's transitions and applies the theme attribute
// each toggle returns.
package showcase
