package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// SearchState owns the filter inputs (text, regex and case toggles, type
// selector, pin cycle) and turns their rapid edits into infrequent backend
// queries. Every edit restarts one debounce window; the window's expiry
// message carries a sequence number so a superseded window is ignored when
// it finally arrives. Only the field values present at expiry are
// dispatched, as one query.
type SearchState struct {
	input textinput.Model

	isRegex       bool
	caseSensitive bool
	typeFilter    models.TypeFilter
	pinFilter     models.PinFilter

	seq      int
	debounce time.Duration
}

func NewSearchState(settings *models.Settings) *SearchState {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	ti := textinput.New()
	ti.Placeholder = "Search clips..."
	ti.CharLimit = 200
	ti.Width = 40

	return &SearchState{
		input:    ti,
		debounce: time.Duration(settings.Search.DebounceMS) * time.Millisecond,
	}
}

func (s *SearchState) Focus() tea.Cmd {
	return s.input.Focus()
}

func (s *SearchState) Blur() {
	s.input.Blur()
}

func (s *SearchState) Focused() bool {
	return s.input.Focused()
}

func (s *SearchState) SetWidth(width int) {
	s.input.Width = width
}

func (s *SearchState) Value() string {
	return s.input.Value()
}

// Update feeds a message to the text input; an edit that changed the text
// restarts the debounce window.
func (s *SearchState) Update(msg tea.Msg) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		return tea.Batch(cmd, s.bump())
	}
	return cmd
}

func (s *SearchState) ToggleRegex() tea.Cmd {
	s.isRegex = !s.isRegex
	return s.bump()
}

func (s *SearchState) ToggleCase() tea.Cmd {
	s.caseSensitive = !s.caseSensitive
	return s.bump()
}

// CycleType advances the content-type selector through its fixed order,
// wrapping after the last entry.
func (s *SearchState) CycleType() tea.Cmd {
	s.typeFilter++
	if s.typeFilter > models.FilterVector {
		s.typeFilter = models.FilterAll
	}
	return s.bump()
}

func (s *SearchState) CyclePin() tea.Cmd {
	s.pinFilter = s.pinFilter.Next()
	return s.bump()
}

// Clear resets every filter field and dispatches the resulting unfiltered
// query immediately: an empty filter must reach the backend so a
// match-nothing query can actually be cleared.
func (s *SearchState) Clear() tea.Cmd {
	s.input.SetValue("")
	s.isRegex = false
	s.caseSensitive = false
	s.typeFilter = models.FilterAll
	s.pinFilter = models.PinAll

	s.seq++
	seq := s.seq
	return func() tea.Msg {
		return searchDebounceMsg{seq: seq}
	}
}

// Resolve checks a debounce expiry against the current sequence. A stale
// expiry yields ok=false and must be dropped without a dispatch.
func (s *SearchState) Resolve(seq int) (models.SearchQuery, bool) {
	if seq != s.seq {
		return models.SearchQuery{}, false
	}
	return s.Query(), true
}

// Query snapshots the current field values.
func (s *SearchState) Query() models.SearchQuery {
	return models.SearchQuery{
		Text:            s.input.Value(),
		IsRegex:         s.isRegex,
		CaseInsensitive: !s.caseSensitive,
		TypeFilter:      s.typeFilter,
		PinFilter:       s.pinFilter,
	}
}

// Active reports whether any filter field diverges from the resting state.
func (s *SearchState) Active() bool {
	return !s.Query().IsEmpty()
}

func (s *SearchState) bump() tea.Cmd {
	s.seq++
	return scheduleDebounce(s.seq, s.debounce)
}
