package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

const menuWidth = 38

// View renders the menu overlay for its current mode.
func (m *ContextMenuModel) View() string {
	if !m.open {
		return ""
	}
	switch m.mode {
	case menuMove:
		return m.viewMove()
	case menuSubitems:
		return m.viewSubitems()
	default:
		return m.viewMain()
	}
}

func (m *ContextMenuModel) viewMain() string {
	var b strings.Builder
	title := truncate.StringWithTail(m.item.Label(), menuWidth-4, "…")
	b.WriteString(DimStyle.Render(title))
	b.WriteString("\n\n")

	for i, a := range m.actions {
		if a.Separator {
			b.WriteString(MenuSeparatorStyle.Render(strings.Repeat("─", menuWidth-4)))
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.actionLine(a, i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("↑/↓ move · enter run · esc close"))

	return menuFrame(b.String())
}

func (m *ContextMenuModel) actionLine(a MenuAction, selected bool) string {
	style := NormalStyle
	if a.Danger {
		style = MenuDangerStyle
	}
	if selected {
		style = SelectedStyle
	}
	marker := "  "
	if selected {
		marker = "> "
	}
	return marker + style.Render(truncate.StringWithTail(a.Label, menuWidth-6, "…"))
}

func (m *ContextMenuModel) viewMove() string {
	var b strings.Builder
	b.WriteString(DimStyle.Render("Move to group"))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(EmptyListStyle.Render("no matching groups"))
		b.WriteString("\n")
	}
	for pos, idx := range m.filtered {
		t := m.targets[idx]
		style := NormalStyle
		marker := "  "
		if pos == m.pickCursor {
			style = SelectedStyle
			marker = "> "
		}
		line := marker + style.Render(t.Name)
		for _, tag := range t.Tags {
			label := tag
			if tag == models.MoveTargetTagCurrent {
				label = "current"
			}
			line += " " + GetTagChipStyle(tag).Render(label)
		}
		b.WriteString(truncate.String(line, menuWidth-2))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("type to filter · enter move · esc back"))

	return menuFrame(b.String())
}

func (m *ContextMenuModel) viewSubitems() string {
	var b strings.Builder
	b.WriteString(DimStyle.Render("Subitems"))
	b.WriteString("\n\n")

	for i, sub := range m.item.Subitems {
		style := NormalStyle
		marker := "  "
		if i == m.pickCursor {
			style = SelectedStyle
			marker = "> "
		}
		chip := GetTagChipStyle(sub.Tag).Render(sub.Tag)
		text := truncate.StringWithTail(sub.Text, uint(menuWidth-8-lipgloss.Width(chip)), "…")
		b.WriteString(marker + chip + " " + style.Render(text))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("enter copy · p promote · d delete · esc back"))

	return menuFrame(b.String())
}

func menuFrame(content string) string {
	return ActiveBorderStyle.
		Width(menuWidth).
		Padding(0, 1).
		Render(content)
}
