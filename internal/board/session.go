package board

import (
	"github.com/google/uuid"
)

// Note is a posted sticky note. Notes are never edited after creation.
type Note struct {
	ID     string
	Text   string
	Author string
}

// Snapshot is a copy of the session suitable for rendering.
type Snapshot struct {
	Current Identity
	Notes   []Note
}

// HasIdentity reports whether someone has picked an identity card.
func (s Snapshot) HasIdentity() bool {
	return s.Current.Valid()
}

// Session holds who is using the board and what notes exist. It is owned by
// the navigator and only mutated through its methods. The zero value is an
// empty session with no identity selected.
//
// Session is not safe for concurrent use; the UI drives it from a single
// update loop.
type Session struct {
	current Identity
	notes   []Note
}

// SelectUser records the active identity, replacing any earlier selection.
func (s *Session) SelectUser(id Identity) {
	if !id.Valid() {
		return
	}
	s.current = id
}

// Current returns the selected identity, or NoIdentity.
func (s *Session) Current() Identity {
	return s.current
}

// AddNote appends a note. The caller is responsible for trimming text and
// rejecting blanks.
func (s *Session) AddNote(text, author string) Note {
	note := Note{
		ID:     uuid.NewString(),
		Text:   text,
		Author: author,
	}
	s.notes = append(s.notes, note)
	return note
}

// DeleteNote removes the note at index. Out of range indices are ignored; the
// return value reports whether a note was removed.
func (s *Session) DeleteNote(index int) bool {
	if index < 0 || index >= len(s.notes) {
		return false
	}
	s.notes = append(s.notes[:index], s.notes[index+1:]...)
	return true
}

// Len returns the number of posted notes.
func (s *Session) Len() int {
	return len(s.notes)
}

// Note returns the note at index.
func (s *Session) Note(index int) (Note, bool) {
	if index < 0 || index >= len(s.notes) {
		return Note{}, false
	}
	return s.notes[index], true
}

// Snapshot returns a copy of the current session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Current: s.current,
		Notes:   cloneNotes(s.notes),
	}
}

func cloneNotes(notes []Note) []Note {
	if len(notes) == 0 {
		return nil
	}
	dup := make([]Note, len(notes))
	copy(dup, notes)
	return dup
}
