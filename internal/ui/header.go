package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/familyboard/internal/board"
)

// renderStatus renders the bottom status bar: who is posting, how many notes
// exist, and the short key hints.
func (m Model) renderStatus(snap board.Snapshot) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	who := "no one"
	if snap.HasIdentity() {
		who = snap.Current.Label()
	}

	parts := []string{
		bg.Render("FamilyBoard", styles.AccentText.Bold(true)),
		bg.Render("user "+who, styles.Text),
		bg.Render(fmt.Sprintf("notes %d", len(snap.Notes)), styles.MutedText),
	}
	left := bg.Space() + bg.Join(parts, "  ")
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		return bg.FillLine(truncate(left, m.width), m.width)
	}
	return bg.FillLine(left+bg.Spaces(gap)+right, m.width)
}
