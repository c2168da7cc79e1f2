package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel guards destructive commands behind a y/n prompt. The
// command to run on confirmation is captured when the prompt is shown.
type ConfirmationModel struct {
	active    bool
	message   string
	onConfirm func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the prompt with the given message and confirm action.
func (m *ConfirmationModel) Show(message string, onConfirm func() tea.Cmd) {
	m.active = true
	m.message = message
	m.onConfirm = onConfirm
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles the prompt's keys. Anything but an explicit yes cancels.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}
	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
	}
	return nil
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	yes := MenuDangerStyle.Bold(true).Render("y")
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true).Render("n")
	body := fmt.Sprintf("%s\n\n%s", m.message, DimStyle.Render(fmt.Sprintf("confirm: %s / cancel: %s", yes, no)))
	return ActiveBorderStyle.
		Width(44).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(body)
}
