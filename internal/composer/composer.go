// Package composer implements note entry for FamilyBoard: a free-text draft
// edited one key at a time, and a fixed catalog of canned notes.
//
// The on-screen key set exists because the target screens are driven by a
// remote with no keyboard attached. Where a keyboard is available the UI
// may use native text input instead, but every edit still funnels through
// the draft operations here.
package composer

import "strings"

// Options tune draft behaviour.
type Options struct {
	// ClearOnReject empties the draft even when a blank submission is
	// rejected.
	ClearOnReject bool
}

// Composer holds the transient draft for one composer session.
type Composer struct {
	draft []rune
	opts  Options
}

// New returns an empty composer.
func New(opts Options) *Composer {
	return &Composer{opts: opts}
}

// Draft returns the current draft text.
func (c *Composer) Draft() string {
	return string(c.draft)
}

// SetDraft replaces the draft, used when a native text field owns editing.
func (c *Composer) SetDraft(text string) {
	c.draft = []rune(text)
}

// Reset clears the draft. The UI calls it each time the composer opens.
func (c *Composer) Reset() {
	c.draft = c.draft[:0]
}

// AppendCharacter adds r to the end of the draft.
func (c *Composer) AppendCharacter(r rune) {
	c.draft = append(c.draft, r)
}

// AppendSpace adds a single space.
func (c *Composer) AppendSpace() {
	c.AppendCharacter(' ')
}

// DeleteLastCharacter removes the final character, if any.
func (c *Composer) DeleteLastCharacter() {
	if len(c.draft) == 0 {
		return
	}
	c.draft = c.draft[:len(c.draft)-1]
}

// SubmitDraft returns the trimmed draft and clears it. A blank draft is
// rejected: ok is false and the draft is left alone unless ClearOnReject is
// set.
func (c *Composer) SubmitDraft() (text string, ok bool) {
	trimmed := strings.TrimSpace(string(c.draft))
	if trimmed == "" {
		if c.opts.ClearOnReject {
			c.Reset()
		}
		return "", false
	}
	c.Reset()
	return trimmed, true
}

// SelectCanned returns the catalog text for title unchanged. The draft is not
// touched. Titles outside the catalog are rejected.
func (c *Composer) SelectCanned(title string) (string, bool) {
	entry, ok := lookupCanned(title)
	if !ok {
		return "", false
	}
	return entry.Title, true
}
