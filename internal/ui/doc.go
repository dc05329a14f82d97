// Package ui implements the petpad terminal interface with Bubble Tea.
//
// The screen is a single column: header, likes controls, the live clock, the
// add-pet form, the pet list and the footer. Model owns no domain state of
// its own; every intent goes through state.Session, which writes through to
// the key-value store before the view is refreshed from a new snapshot.
//
// # Files
//
//   - model.go: Model, Update loop, key dispatch and Run
//   - form.go: the three-field add-pet form
//   - render.go: layout of each section
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go: lipgloss themes, cycled with T and saved to prefs
//
// # Key Bindings
//
//   - + / -: like or unlike
//   - tab / shift+tab: move between form fields
//   - enter: add the pet and clear the form
//   - esc: toggle focus between the form and the list
//   - j / k, g / G: move the list selection
//   - d / x: delete the selected pet
//   - T: next theme
//   - ?: help
//   - ctrl+c: quit (q also quits from the list)
package ui
