// Package nav implements the FamilyBoard screen navigator.
//
// The navigator tracks a base screen (UserSelect or Board) and whether the
// composer overlay is showing on top of it. While the overlay is up the base
// screen stays mounted but rejects every action, so a hidden screen can never
// change the session.
package nav

import (
	"log/slog"

	"github.com/five82/familyboard/internal/board"
)

// Screen is a base screen.
type Screen int

const (
	ScreenUserSelect Screen = iota
	ScreenBoard
	// ScreenComposer is the overlay. It is never a base screen.
	ScreenComposer
)

func (s Screen) String() string {
	switch s {
	case ScreenUserSelect:
		return "user_select"
	case ScreenBoard:
		return "board"
	case ScreenComposer:
		return "composer"
	default:
		return "unknown"
	}
}

// Variant selects between the two observed board behaviours.
type Variant int

const (
	// VariantGrid has a Back control that reopens the composer.
	VariantGrid Variant = iota
	// VariantStrip has no Back control.
	VariantStrip
)

// State is the visible navigation state.
type State struct {
	Base    Screen
	Overlay bool
}

// Active returns the screen currently receiving input.
func (s State) Active() Screen {
	if s.Overlay {
		return ScreenComposer
	}
	return s.Base
}

// Navigator owns the session and funnels every mutation through the screen
// state machine.
type Navigator struct {
	session *board.Session
	state   State
	variant Variant
	logger  *slog.Logger
}

// New returns a navigator at the initial state: UserSelect, no overlay.
// A nil session starts an empty one; a nil logger uses slog.Default.
func New(session *board.Session, variant Variant, logger *slog.Logger) *Navigator {
	if session == nil {
		session = &board.Session{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{
		session: session,
		state:   State{Base: ScreenUserSelect},
		variant: variant,
		logger:  logger,
	}
}

// State returns the current navigation state.
func (n *Navigator) State() State {
	return n.state
}

// Variant returns the board variant in use.
func (n *Navigator) Variant() Variant {
	return n.variant
}

// Snapshot returns a copy of the session for rendering.
func (n *Navigator) Snapshot() board.Snapshot {
	return n.session.Snapshot()
}

// Interactive reports whether screen accepts input right now.
func (n *Navigator) Interactive(screen Screen) bool {
	return n.state.Active() == screen
}

// HasBack reports whether the board shows a Back control.
func (n *Navigator) HasBack() bool {
	return n.variant == VariantGrid
}

// PickIdentity records id and opens the composer over the user picker.
func (n *Navigator) PickIdentity(id board.Identity) bool {
	if !n.Interactive(ScreenUserSelect) || !id.Valid() {
		return false
	}
	n.session.SelectUser(id)
	n.transition(State{Base: ScreenUserSelect, Overlay: true}, "pick_identity", slog.String("identity", id.Label()))
	return true
}

// OpenComposer opens the composer over the board.
func (n *Navigator) OpenComposer() bool {
	if !n.Interactive(ScreenBoard) {
		return false
	}
	n.transition(State{Base: ScreenBoard, Overlay: true}, "open_composer")
	return true
}

// Back handles the board's Back control. Only the grid variant has one.
func (n *Navigator) Back() bool {
	if !n.HasBack() || !n.Interactive(ScreenBoard) {
		return false
	}
	n.transition(State{Base: ScreenBoard, Overlay: true}, "back")
	return true
}

// Cancel closes the composer and returns to its base screen unchanged.
func (n *Navigator) Cancel() bool {
	if !n.state.Overlay {
		return false
	}
	n.transition(State{Base: n.state.Base}, "cancel")
	return true
}

// Submit posts text as a note by the current identity and shows the board.
// text must already be trimmed and non-empty. Without a selected identity
// nothing happens.
func (n *Navigator) Submit(text string) (board.Note, bool) {
	if !n.state.Overlay {
		return board.Note{}, false
	}
	current := n.session.Current()
	if !current.Valid() {
		return board.Note{}, false
	}
	note := n.session.AddNote(text, current.Label())
	n.logger.Info("note added",
		slog.String("note_id", note.ID),
		slog.String("author", note.Author),
		slog.Int("notes", n.session.Len()),
	)
	n.transition(State{Base: ScreenBoard}, "submit")
	return note, true
}

// DeleteNote removes the note at index from the board. Out of range indices
// and calls while the board is covered are ignored.
func (n *Navigator) DeleteNote(index int) bool {
	if !n.Interactive(ScreenBoard) {
		return false
	}
	note, ok := n.session.Note(index)
	if !ok {
		return false
	}
	n.session.DeleteNote(index)
	n.logger.Info("note deleted",
		slog.String("note_id", note.ID),
		slog.Int("index", index),
		slog.Int("notes", n.session.Len()),
	)
	return true
}

func (n *Navigator) transition(next State, event string, attrs ...any) {
	prev := n.state
	n.state = next
	args := append([]any{
		slog.String("event", event),
		slog.String("from", prev.Active().String()),
		slog.String("to", next.Active().String()),
	}, attrs...)
	n.logger.Debug("navigate", args...)
}
