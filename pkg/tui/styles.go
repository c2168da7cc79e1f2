package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255" // White
	ColorDark     = "235" // Dark for contrast
	ColorPrimary  = "33"  // Blue for primary actions
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	PinnedMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)

	EmptyListStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Italic(true)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger)).
				Bold(true)

	MenuDangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	MenuSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorInactive))
)

// Type badge colors, one per content type.
var typeBadgeColors = map[models.ContentType]string{
	models.ContentText:   ColorPrimary,
	models.ContentHTML:   "135", // violet
	models.ContentImage:  "71",  // green
	models.ContentSVG:    "79",  // teal
	models.ContentDrawio: "73",  // cyan
	models.ContentColor:  "213", // pink
	models.ContentPlugin: "103", // slate
}

// GetTypeBadgeStyle returns the chip style for a content type badge.
func GetTypeBadgeStyle(ct models.ContentType) lipgloss.Style {
	color, ok := typeBadgeColors[ct]
	if !ok {
		color = ColorInactive
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ColorDark)).
		Padding(0, 1).
		Bold(true)
}

// GetTagChipStyle renders subitem tag chips; the color comes from the
// stable tag palette so the same tag always shows the same hue.
func GetTagChipStyle(tag string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(models.TagColor(tag))).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1)
}

// GetGroupTabStyle styles one group tab. Plugin groups tint with their
// declared base color; the current group inverts.
func GetGroupTabStyle(g models.Group, current, destination bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	switch {
	case current:
		s = s.Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true)
	case g.IsPlugin && g.BaseColor != "":
		s = s.Foreground(lipgloss.Color(g.BaseColor))
	case g.IsSpecial:
		s = s.Foreground(lipgloss.Color(ColorDim))
	default:
		s = s.Foreground(lipgloss.Color(ColorNormal))
	}
	if destination && !current {
		s = s.Underline(true)
	}
	return s
}

// GetSwatchStyle paints a color sample block with the clip's own color.
func GetSwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}

func GetActiveBorderStyle(active bool) lipgloss.Style {
	if active {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}
