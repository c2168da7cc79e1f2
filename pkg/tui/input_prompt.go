package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputPromptModel collects one line of text for naming commands (new
// group, rename group, add note). The submit action is captured at Show
// time; empty submissions are passed through so the backend can refuse
// them with its own message.
type InputPromptModel struct {
	active   bool
	title    string
	input    textinput.Model
	onSubmit func(string) tea.Cmd
}

func NewInputPrompt() *InputPromptModel {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 36
	return &InputPromptModel{input: ti}
}

func (m *InputPromptModel) Show(title, placeholder, initial string, onSubmit func(string) tea.Cmd) tea.Cmd {
	m.active = true
	m.title = title
	m.onSubmit = onSubmit
	m.input.Placeholder = placeholder
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *InputPromptModel) Active() bool {
	return m.active
}

func (m *InputPromptModel) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.active = false
			m.input.Blur()
			return nil
		case "enter":
			m.active = false
			m.input.Blur()
			if m.onSubmit != nil {
				return m.onSubmit(strings.TrimSpace(m.input.Value()))
			}
			return nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *InputPromptModel) View() string {
	if !m.active {
		return ""
	}
	return ActiveBorderStyle.
		Width(44).
		Padding(0, 1).
		Render(DimStyle.Render(m.title) + "\n" + m.input.View() + "\n" + DimStyle.Render("enter confirm · esc cancel"))
}
