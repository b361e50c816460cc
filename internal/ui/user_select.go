package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/familyboard/internal/board"
)

// renderUserSelect renders the identity picker. Focus is only drawn while
// the screen is interactive.
func (m Model) renderUserSelect(current board.Identity, interactive bool) string {
	styles := m.theme.Styles()

	cards := make([]string, 0, len(board.Identities)*2)
	for i, id := range board.Identities {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		focused := interactive && m.focus == (identityCard{identity: id}).ID()
		cards = append(cards, m.renderIdentityCard(id, id == current, focused))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	title := styles.Title.Render("Who's posting?")
	hint := styles.MutedText.Render("←/→ choose  •  enter select")

	content := lipgloss.JoinVertical(lipgloss.Center, title, "", row, "", hint)
	return lipgloss.Place(
		m.width,
		maxInt(1, m.height-statusLines),
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func (m Model) renderIdentityCard(id board.Identity, selected, focused bool) string {
	colors := m.theme.IdentityColor(id)
	inner := cardWidth - 2

	bar := lipgloss.NewStyle().
		Background(lipgloss.Color(colors.Accent)).
		Width(inner).
		Render("")
	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		Render(strings.ToUpper(id.Label()))

	marker := ""
	if selected {
		marker = m.theme.Styles().MutedText.Render("● selected")
	}

	body := lipgloss.JoinVertical(lipgloss.Center, bar, "", "", label, "", marker)

	style := lipgloss.NewStyle().
		Width(inner).
		Height(cardHeight-2).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border))
	if focused {
		style = style.
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(m.theme.BorderFocus))
	}
	return style.Render(body)
}
