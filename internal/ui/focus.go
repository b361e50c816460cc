package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/familyboard/internal/board"
	"github.com/five82/familyboard/internal/composer"
)

// focusable is a control that can hold focus and be activated with Enter.
type focusable interface {
	ID() string
	activate(m *Model) tea.Cmd
}

// focusGrid is the spatial arrangement of a screen's controls. Rows may have
// different lengths.
type focusGrid [][]focusable

// locate returns the row and column of the control with id.
func (g focusGrid) locate(id string) (int, int, bool) {
	for r, row := range g {
		for c, ctl := range row {
			if ctl.ID() == id {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (g focusGrid) at(row, col int) focusable {
	if row < 0 || row >= len(g) || len(g[row]) == 0 {
		return nil
	}
	col = clamp(col, 0, len(g[row])-1)
	return g[row][col]
}

func (g focusGrid) flat() []focusable {
	var out []focusable
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// move steps from id by (dr, dc). Vertical moves keep the column where
// possible and skip empty rows; horizontal moves stop at the row ends.
func (g focusGrid) move(id string, dr, dc int) string {
	r, c, ok := g.locate(id)
	if !ok {
		return id
	}
	if dc != 0 {
		if next := g.at(r, c+dc); next != nil {
			return next.ID()
		}
		return id
	}
	for row := r + dr; row >= 0 && row < len(g); row += dr {
		if len(g[row]) == 0 {
			continue
		}
		// Map the column proportionally so a wide row lands near the
		// control visually above or below.
		col := c
		if width := len(g[r]); width > 1 && len(g[row]) != width {
			col = c * (len(g[row]) - 1) / (width - 1)
		}
		return g.at(row, col).ID()
	}
	return id
}

// step moves through controls in reading order, wrapping at either end.
func (g focusGrid) step(id string, delta int) string {
	all := g.flat()
	if len(all) == 0 {
		return id
	}
	for i, ctl := range all {
		if ctl.ID() == id {
			return all[(i+delta+len(all))%len(all)].ID()
		}
	}
	return all[0].ID()
}

func (g focusGrid) find(id string) focusable {
	if r, c, ok := g.locate(id); ok {
		return g[r][c]
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Control IDs that are not derived from data.
const (
	idBack   = "back"
	idPlus   = "plus"
	idDraft  = "draft"
	idAdd    = "add"
	idCancel = "cancel"
)

// User select controls

type identityCard struct{ identity board.Identity }

func (c identityCard) ID() string { return "identity:" + c.identity.Label() }

func (c identityCard) activate(m *Model) tea.Cmd {
	return m.apply(func() bool { return m.nav.PickIdentity(c.identity) })
}

// Board controls

type noteCard struct {
	index int
	note  board.Note
}

func (c noteCard) ID() string { return noteID(c.note) }

func noteID(n board.Note) string { return "note:" + n.ID }

// activate deletes the note, the same as tapping a focused sticky note.
func (c noteCard) activate(m *Model) tea.Cmd {
	if !m.nav.DeleteNote(c.index) {
		return nil
	}
	m.refocusAfterDelete(c.index)
	return nil
}

type plusButton struct{}

func (plusButton) ID() string { return idPlus }

func (plusButton) activate(m *Model) tea.Cmd {
	return m.apply(m.nav.OpenComposer)
}

type backButton struct{}

func (backButton) ID() string { return idBack }

func (backButton) activate(m *Model) tea.Cmd {
	return m.apply(m.nav.Back)
}

// Composer controls

type cannedButton struct{ entry composer.Canned }

func (b cannedButton) ID() string { return "canned:" + b.entry.Title }

func (b cannedButton) activate(m *Model) tea.Cmd {
	text, ok := m.composer.SelectCanned(b.entry.Title)
	if !ok {
		return nil
	}
	return m.submit(text)
}

type keyButton struct{ label string }

func (k keyButton) ID() string { return "key:" + k.label }

func (k keyButton) activate(m *Model) tea.Cmd {
	m.composer.PressKey(k.label)
	m.syncDraftInput()
	return nil
}

// draftField submits on Enter, like the return key of a TV keyboard.
type draftField struct{}

func (draftField) ID() string { return idDraft }

func (draftField) activate(m *Model) tea.Cmd { return m.submitDraft() }

type addButton struct{}

func (addButton) ID() string { return idAdd }

func (addButton) activate(m *Model) tea.Cmd { return m.submitDraft() }

type cancelButton struct{}

func (cancelButton) ID() string { return idCancel }

func (cancelButton) activate(m *Model) tea.Cmd {
	return m.apply(m.nav.Cancel)
}
