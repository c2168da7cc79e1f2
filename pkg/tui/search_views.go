package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

var typeFilterLabels = map[models.TypeFilter]string{
	models.FilterAll:    "all",
	models.FilterText:   "text",
	models.FilterHTML:   "html",
	models.FilterURL:    "url",
	models.FilterColor:  "color",
	models.FilterImage:  "image",
	models.FilterVector: "vector",
}

// View renders the bordered search bar with its filter chips. The border
// tracks focus the way every other pane border does.
func (s *SearchState) View(width int) string {
	var icon string
	if s.Focused() {
		icon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Render(" ⌕ ")
	} else {
		icon = DimStyle.Bold(true).Render(" ⌕ ")
	}

	chips := s.filterChips()
	inner := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", s.input.View())
	if chips != "" {
		inner = lipgloss.JoinHorizontal(lipgloss.Center, inner, "  ", chips)
	}

	return GetActiveBorderStyle(s.Focused()).
		Width(width - 2).
		Padding(0, 1).
		Render(inner)
}

// filterChips shows only the filters that diverge from the resting state,
// so an untouched bar stays quiet.
func (s *SearchState) filterChips() string {
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorWarning)).
		Padding(0, 1)

	var parts []string
	if s.isRegex {
		parts = append(parts, chip.Render("re"))
	}
	if s.caseSensitive {
		parts = append(parts, chip.Render("Aa"))
	}
	if s.typeFilter != models.FilterAll {
		parts = append(parts, chip.Render(typeFilterLabels[s.typeFilter]))
	}
	if s.pinFilter != models.PinAll {
		parts = append(parts, chip.Render(s.pinFilter.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
