package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/familyboard/internal/board"
	"github.com/five82/familyboard/internal/composer"
)

const (
	cannedWidth        = 18
	cannedWidthCompact = 14
	draftFieldWidth    = 30
)

func (m Model) cannedWidth() int {
	if m.width > 0 && m.width < LayoutCompactWidth {
		return cannedWidthCompact
	}
	return cannedWidth
}

func (m Model) draftWidth() int {
	return m.cannedWidth()*2 - 6
}

// renderComposer renders the quick note panel drawn over the base screen.
func (m Model) renderComposer(author board.Identity) string {
	styles := m.theme.Styles()

	title := styles.Title.Render("Quick Note")
	byline := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.IdentityColor(author).Accent)).
		Render("posting as " + author.Label())

	sections := []string{title, byline, ""}
	sections = append(sections, m.renderCannedRows()...)
	sections = append(sections, "", m.renderDraftRow())
	if !m.native {
		sections = append(sections, "")
		sections = append(sections, m.renderKeyRows()...)
	}
	sections = append(sections, "", m.theme.Pill("", m.focus == idCancel).Width(12).Render("CANCEL"))

	return styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// renderCannedRows pairs the left and right catalog columns.
func (m Model) renderCannedRows() []string {
	left, right := composer.LeftColumn(), composer.RightColumn()
	width := m.cannedWidth()

	pill := func(entry composer.Canned) string {
		focused := m.focus == (cannedButton{entry: entry}).ID()
		return m.theme.Pill(m.theme.TintColor(entry.Tint), focused).
			Width(width).
			Render(truncate(entry.Title, width-2))
	}

	var rows []string
	for i := 0; i < maxInt(len(left), len(right)); i++ {
		var cells []string
		if i < len(left) {
			cells = append(cells, pill(left[i]))
		}
		if i < len(right) {
			cells = append(cells, "  ", pill(right[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return rows
}

// renderDraftRow renders the draft field and the ADD control.
func (m Model) renderDraftRow() string {
	width := m.draftWidth()
	focused := m.focus == idDraft

	var field string
	if m.native {
		field = m.draftInput.View()
	} else {
		field = m.renderOnscreenDraft(width-2, focused)
	}

	fieldStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.DraftField)).
		Foreground(lipgloss.Color(m.theme.OnFill())).
		Width(width).
		Padding(0, 1)
	if focused {
		fieldStyle = fieldStyle.Underline(true)
		field = lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.BorderFocus)).
			Render("▶") + fieldStyle.Render(field)
	} else {
		field = " " + fieldStyle.Render(field)
	}

	add := m.theme.Pill(m.theme.AddButton, m.focus == idAdd).Render("ADD")
	return lipgloss.JoinHorizontal(lipgloss.Top, field, "  ", add)
}

// renderOnscreenDraft shows the end of the draft so the latest key press is
// always visible.
func (m Model) renderOnscreenDraft(width int, focused bool) string {
	draft := m.composer.Draft()
	if draft == "" && !focused {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5B5570")).
			Render("Type a note")
	}
	cursor := ""
	if focused {
		cursor = "▏"
	}
	visible := draft + cursor
	if over := ansi.StringWidth(visible) - width; over > 0 {
		visible = ansi.TruncateLeft(visible, over+1, "…")
	}
	return visible
}

// renderKeyRows renders the on-screen keyboard.
func (m Model) renderKeyRows() []string {
	rows := composer.KeyRows()
	out := make([]string, 0, len(rows))
	for _, labels := range rows {
		keys := make([]string, 0, len(labels))
		for _, label := range labels {
			focused := m.focus == (keyButton{label: label}).ID()
			style := m.theme.Pill("", focused)
			if len([]rune(label)) > 1 {
				style = style.Width(10)
			}
			keys = append(keys, style.Render(label))
		}
		out = append(out, strings.Join(keys, " "))
	}
	return out
}
