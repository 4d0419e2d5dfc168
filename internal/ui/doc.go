// Package ui provides the terminal user interface for hansard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the presentation state and
// delegates everything else:
//
//   - nav.Controller decides which view is shown and loads profiles
//   - search.Form tracks the search box and its notice
//   - state.Store supplies the statistics banner, read on a timer
//
// All network work runs in tea.Cmd closures; results come back as messages
// and are applied in Update, so no state is shared with goroutines.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key routing and Run
//   - header.go: statistics banner, tabs and footer hints
//   - search.go: the home view with search box and notices
//   - profile.go: member card and sector-grouped interests
//   - pages.go: research and about pages
//   - help.go: keyboard shortcut overlay
//   - theme.go, style_helpers.go: colours and lipgloss helpers
//
// # Keys
//
//   - 1/2/3: Home, Research, About
//   - /: focus the search box; enter submits, esc leaves
//   - [ and ]: back and forward through history
//   - esc: dismiss the current notice
//   - T: cycle theme (saved to prefs)
//   - ?: help
//   - q: quit, remembering the current location
package ui
