// Package app is the composition root for FamilyBoard.
//
// # Overview
//
// Run wires configuration, logging and the domain packages to the UI and
// blocks until the user quits or the context is cancelled:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()      config.toml + CLI overrides
//	       ├─────> logging.Open()     tint logger on a file
//	       ├─────> prefs.Load()       theme preference
//	       ├─────> board.Session{}    in-memory session
//	       ├─────> nav.New()          navigator for the board layout
//	       ├─────> composer.New()     draft rules for the board layout
//	       └─────> ui.Run()           TUI (blocks)
//
// # Board Layouts
//
// The grid layout is the default. The strip layout drops the Back control and
// clears the draft on every submit attempt, including rejected ones.
//
// # Keyboard Modes
//
// "native" uses a text field, "onscreen" uses the A–Z key grid, and "auto"
// picks native input only when stdin is a terminal.
//
// # Error Handling
//
// Only startup problems are returned: a malformed config file or a log file
// that cannot be opened. A broken prefs file is logged and replaced by
// defaults. Nothing in the session can fail once the UI is running.
package app
