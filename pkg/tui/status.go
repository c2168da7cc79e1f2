package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	statusInfoTTL  = 3 * time.Second
	statusErrorTTL = 10 * time.Second
)

// StatusBar shows one transient message at a time. Every Set supersedes
// the previous message and restarts the expiry clock; a stale expiry is
// recognized by its sequence number and dropped.
type StatusBar struct {
	text  string
	isErr bool
	seq   int
	width int
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// Set installs a message and returns the command that will expire it.
// Messages mentioning failure hold the line longer.
func (s *StatusBar) Set(text string) tea.Cmd {
	s.seq++
	s.text = text
	s.isErr = looksLikeError(text)

	ttl := statusInfoTTL
	if s.isErr {
		ttl = statusErrorTTL
	}
	return scheduleStatusExpiry(s.seq, ttl)
}

// Expire clears the message if seq still identifies it.
func (s *StatusBar) Expire(seq int) {
	if seq == s.seq {
		s.text = ""
	}
}

func (s *StatusBar) Message() string {
	return s.text
}

func (s *StatusBar) View() string {
	line := lipgloss.NewStyle().Width(s.width).PaddingLeft(1)
	if s.text == "" {
		return line.Render("")
	}
	if s.isErr {
		return line.Render(StatusErrorStyle.Render(s.text))
	}
	return line.Render(StatusInfoStyle.Render(s.text))
}

// looksLikeError classifies backend status text. The backend reports
// failures as plain messages, so the split is lexical.
func looksLikeError(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "fail") ||
		strings.Contains(lower, "invalid") ||
		strings.Contains(lower, "cannot")
}
