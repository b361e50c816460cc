// Package config loads FamilyBoard's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/familyboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, empty or unknown, use defaults
//
// # TOML Format
//
//	keyboard = "auto"          # auto | onscreen | native
//	board_layout = "grid"      # grid | strip
//	log_file = "~/.local/state/familyboard/familyboard.log"
//	log_level = "info"         # debug | info | warn | error
//
// keyboard picks the note entry surface. "onscreen" always shows the A-Z key
// grid, which is what a remote-only screen needs. "native" takes typed input
// in a text field. "auto" chooses native when stdin is a terminal.
//
// board_layout picks one of the two board behaviours. "grid" wraps notes in
// five columns colored by author and has a Back control. "strip" lays notes
// out in one row with alternating colors, has no Back control, and clears the
// draft on every submit attempt.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and malformed TOML. Missing files are not an error.
package config
