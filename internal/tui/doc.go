// Package tui implements the xanalytics terminal dashboard.
//
// The dashboard is built with Charmbracelet's BubbleTea, Lipgloss and
// Bubbles libraries. One root model owns every piece of state; the view
// fragments are pure render functions of that state and the time elapsed
// since results were shown.
//
// Component architecture:
//
//	model.go        root model, scan state machine, Init/Update/View
//	theme.go        centralized color + style definitions
//	header.go       top bar and footer status line
//	input.go        handle form, loading bar and empty state
//	profilecard.go  identity card (avatar, name, counters)
//	gauge.go        engagement arc gauge, band and metrics
//	timeline.go     today's posts with staggered reveal
//	helpers.go      color, layout and string helpers
package tui
