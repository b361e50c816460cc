package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/familyboard/internal/board"
	"github.com/five82/familyboard/internal/nav"
)

// renderBoard renders the sticky note board: header, notes and the plus
// control.
func (m Model) renderBoard(notes []board.Note, interactive bool) string {
	focus := ""
	if interactive {
		focus = m.focus
	}

	var content string
	switch {
	case len(notes) == 0:
		content = m.renderEmptyBoard()
	case m.nav.Variant() == nav.VariantStrip:
		content = m.renderStrip(notes, focus)
	default:
		content = m.renderGrid(notes, focus)
	}
	content = lipgloss.NewStyle().
		Height(m.boardContentHeight()).
		MaxHeight(m.boardContentHeight()).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderBoardHeader(focus, len(notes)),
		content,
		m.renderBoardFooter(focus),
	)
}

func (m Model) renderBoardHeader(focus string, count int) string {
	styles := m.theme.Styles()

	var parts []string
	if m.nav.HasBack() {
		parts = append(parts, m.theme.Pill("", focus == idBack).Render("‹ Back"), "  ")
	}
	parts = append(parts, styles.Title.Render("Family Board"))

	noun := "notes"
	if count == 1 {
		noun = "note"
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	right := styles.MutedText.Render(fmt.Sprintf("%d %s", count, noun))
	gap := maxInt(1, m.width-2-lipgloss.Width(left)-lipgloss.Width(right))
	line := " " + left + strings.Repeat(" ", gap) + right

	rule := styles.FaintText.Render(strings.Repeat("─", maxInt(0, m.width)))
	return lipgloss.JoinVertical(lipgloss.Left, line, rule, "")
}

func (m Model) renderBoardFooter(focus string) string {
	plus := m.theme.Button("", focus == idPlus).
		Foreground(lipgloss.Color(m.theme.PlusButton)).
		Render("+ Add note")
	return lipgloss.PlaceHorizontal(m.width-1, lipgloss.Right, plus)
}

func (m Model) renderEmptyBoard() string {
	msg := m.theme.Styles().MutedText.Render("No notes yet. Select + Add note to post one.")
	return lipgloss.Place(m.width, m.boardContentHeight(), lipgloss.Center, lipgloss.Center, msg)
}

// renderGrid lays notes out in wrapping rows inside the board viewport.
func (m Model) renderGrid(notes []board.Note, focus string) string {
	cols := m.gridColumns()
	gap := strings.Repeat(" ", noteGap)

	var rows []string
	for start := 0; start < len(notes); start += cols {
		end := minInt(start+cols, len(notes))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}
			fill := m.theme.AuthorNoteColor(notes[i].Author)
			cells = append(cells, m.renderNote(notes[i], fill, focus == noteID(notes[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := strings.Join(rows, "\n\n")
	grid = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, grid)

	vp := m.boardViewport
	vp.Width = m.width
	vp.Height = m.boardContentHeight()
	vp.SetContent(grid)
	vp.SetYOffset(m.boardTop * (noteHeight + 1))
	return vp.View()
}

// renderStrip lays notes out in one horizontal row, scrolled to keep the
// focused note in view.
func (m Model) renderStrip(notes []board.Note, focus string) string {
	styles := m.theme.Styles()
	visible := m.stripVisible()
	start := clamp(m.stripStart, 0, maxInt(0, len(notes)-1))
	end := minInt(start+visible, len(notes))

	gap := strings.Repeat(" ", noteGap)
	cells := make([]string, 0, 2*(end-start))
	for i := start; i < end; i++ {
		if i > start {
			cells = append(cells, gap)
		}
		fill := m.theme.StripNoteColor(i)
		cells = append(cells, m.renderNote(notes[i], fill, focus == noteID(notes[i])))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	var more []string
	if start > 0 {
		more = append(more, fmt.Sprintf("‹ %d more", start))
	}
	if end < len(notes) {
		more = append(more, fmt.Sprintf("%d more ›", len(notes)-end))
	}
	indicator := styles.MutedText.Render(strings.Join(more, "    "))

	block := lipgloss.JoinVertical(lipgloss.Center, strip, "", indicator)
	return lipgloss.Place(m.width, m.boardContentHeight(), lipgloss.Center, lipgloss.Center, block)
}

// renderNote draws one sticky note. The focused note shows the delete hint.
func (m Model) renderNote(note board.Note, fill string, focused bool) string {
	inner := noteWidth - 4

	text := clampLines(ansi.Wrap(note.Text, inner, ""), inner, noteTextLines)
	lines := splitLines(text)
	for len(lines) < noteTextLines {
		lines = append(lines, "")
	}

	ink := lipgloss.NewStyle().
		Background(lipgloss.Color(fill)).
		Foreground(lipgloss.Color(m.theme.OnFill()))
	lines = append(lines, "", ink.Italic(true).Render("from "+note.Author))
	if focused {
		lines = append(lines, ink.Foreground(lipgloss.Color(m.theme.Danger)).Render("enter: delete"))
	}

	style := ink.
		Width(noteWidth-2).
		Height(noteHeight-2).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border))
	if focused {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(m.theme.BorderFocus))
	}
	return style.Render(strings.Join(lines, "\n"))
}
