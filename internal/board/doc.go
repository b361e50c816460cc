// Package board holds the session state for FamilyBoard.
//
// # Overview
//
// A session answers two questions: who is using the board right now, and
// which notes have been posted. Both live in memory for the lifetime of the
// process and are lost when it exits.
//
// # Core Types
//
// Identity:
//   - Closed enumeration of the family members (Dad, Mom, Kid)
//   - NoIdentity is the zero value and means nothing is selected
//
// Note:
//   - Text plus the label of the identity that posted it
//   - ID is a random UUID used as a stable render key
//
// Session:
//   - Current identity and the ordered note collection
//   - Insertion order is display order
//
// # Operation Semantics
//
// All operations are total. Nothing returns an error:
//
//	session.SelectUser(board.Kid)        // overwrite selection
//	session.AddNote("CALL ME", "Kid")    // append, no validation
//	session.DeleteNote(7)                // out of range: no-op, returns false
//
// AddNote trusts its caller. Trimming and blank rejection belong to the
// composer, and the navigator guarantees an identity is selected first.
//
// # Snapshots
//
// Snapshot copies the note slice so renderers can hold on to it while the
// session keeps changing.
package board
