package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Modal is the interface for full-screen dialogs such as the help overlay.
// Update returns the updated modal, a command, and whether the modal should
// close. Unlike the composer, a modal is not part of navigation state.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}
