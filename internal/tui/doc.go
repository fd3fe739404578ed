// Package tui implements the countdown terminal dashboard.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles libraries.
// The model owns an in-memory display surface for the countdown
// renderers and an in-memory tab document for the tab controller; the
// view only reads them.
//
// Component architecture:
//
//	model.go    : root model, tick scheduling, Init/Update/View
//	document.go : tab buttons and panels driven by tabs.Controller
//	keys.go     : key bindings and their mapping to tab keys
//	theme.go    : centralized color + style definitions
//	header.go   : tab bar, hit testing, footer
//	panels.go   : Home, CR-V and About panel bodies
//	helpers.go  : small layout helpers
package tui
