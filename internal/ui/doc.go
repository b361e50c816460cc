// Package ui provides the terminal front end for FamilyBoard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program driven like a TV remote: arrow keys move
// focus between controls, Enter activates the focused control, and Esc is
// the remote's back button. All session
// changes go through the nav.Navigator; the UI never edits the session
// directly.
//
// # Package Structure
//
//   - app.go: root Model, key dispatch, focus bookkeeping and Run
//   - focus.go: the focusable controls of each screen and the focus grid
//   - user_select.go, board_view.go, composer_view.go: screen renderers
//   - header.go: the status bar
//   - help.go, modal.go: the help overlay
//   - overlay.go: compositing the composer on top of its base screen
//   - theme.go, keys.go, layout.go: palettes, bindings and dimensions
//
// # Screens
//
// Each screen is a pure render of navigator state plus the focused control
// ID. The composer is drawn over the base screen it was opened from. The
// base stays visible but shows no focus and receives no input.
//
// # Text Entry
//
// In on-screen mode the composer shows an A–Z key grid with SPACE and
// DELETE. In native mode a text field replaces the grid. Either way, typed
// letters reach the draft while the draft field is focused.
//
// # Key Bindings
//
//   - Arrows / Tab / Shift+Tab: move focus
//   - Enter: activate (select identity, post, delete focused note)
//   - Esc: cancel the composer, or Back on the board (grid layout)
//   - ?: help
//   - T: cycle theme
//   - Ctrl+C: quit
package ui
