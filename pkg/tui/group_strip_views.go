package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// View renders the tab row and records each tab's span for hit testing
// and drop projection. Spans reflect the resting layout; the drag offset
// is applied at projection time, not here.
func (m *GroupStripModel) View(width int) string {
	var b strings.Builder
	m.spans = m.spans[:0]

	dragging := m.drag.Dragging()
	target := -1
	if dragging {
		target = m.DropTarget()
	}

	x := 0
	for i, g := range m.groups {
		style := GetGroupTabStyle(g, g.ID == m.currentID, g.ID == m.destinationID)

		// Drag feedback is styling only: tab widths must not change
		// mid-gesture or the drop projection would drift.
		if dragging && i == m.drag.Source() {
			style = style.Bold(true).Underline(true)
		}
		if dragging && i == target && i != m.drag.Source() {
			style = style.Background(lipgloss.Color(ColorSelected))
		}

		tab := style.Render(g.Name)
		w := lipgloss.Width(tab)
		if x+w > width {
			break
		}
		m.spans = append(m.spans, tabSpan{start: x, end: x + w})
		b.WriteString(tab)
		x += w
	}

	return truncate.String(b.String(), uint(width))
}
