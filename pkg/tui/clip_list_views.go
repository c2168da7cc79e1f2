package tui

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/utils"
)

const bodyIndent = "  "

// rowKey identifies one cached row rendering. Any input that changes the
// rendered lines is part of the key; revs bump on every item mutation.
type rowKey struct {
	id       int
	rev      int
	width    int
	expanded bool
	selected bool
}

type rowCache map[rowKey][]string

// RowHeight is the rendered height of a row plus its separator line.
// Heights come from the same renderer the view uses, so scroll math and
// drawing can never disagree.
func (m *ClipListModel) RowHeight(row int) int {
	return len(m.renderRow(row)) + 1
}

// View renders the visible window of the list, virtualized: only rows
// intersecting the viewport are rendered (cached by content revision).
func (m *ClipListModel) View() string {
	if len(m.items) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			EmptyListStyle.Render("Nothing here. Copy something."))
	}

	lines := make([]string, 0, m.height)
	y := 0
	for i := 0; i < len(m.items) && len(lines) < m.height; i++ {
		rendered := m.renderRow(i)
		h := len(rendered) + 1
		if y+h <= m.yOffset {
			y += h
			continue
		}
		start := 0
		if y < m.yOffset {
			start = m.yOffset - y
		}
		for j := start; j < h && len(lines) < m.height; j++ {
			if j < len(rendered) {
				lines = append(lines, rendered[j])
			} else {
				lines = append(lines, "")
			}
		}
		y += h
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *ClipListModel) renderRow(row int) []string {
	item := m.items[row]
	width := m.width
	if width <= 0 {
		width = 80
	}
	expanded := m.expansion.IsExpanded(item.ID)
	selected := item.ID == m.selectedID

	peekedID, peeking := m.expansion.Peeking()
	cacheable := !(peeking && peekedID == item.ID)

	key := rowKey{id: item.ID, rev: m.revs[item.ID], width: width, expanded: expanded, selected: selected}
	if cacheable {
		if lines, ok := m.cache[key]; ok {
			return lines
		}
	}

	lines := []string{m.renderHeader(item, width, selected)}
	lines = append(lines, m.renderBody(item, width, expanded)...)
	if cacheable {
		m.cache[key] = lines
	}
	return lines
}

func (m *ClipListModel) renderHeader(item models.ClipItem, width int, selected bool) string {
	badge := GetTypeBadgeStyle(item.ContentType).Render(typeCode(item))

	pin := "  "
	if item.Pinned {
		pin = PinnedMarkStyle.Render("★ ")
	}

	meta := humanize.Time(item.CreatedAt)
	if n := len(item.Subitems); n > 0 {
		meta = fmt.Sprintf("+%d  %s", n, meta)
	}
	metaRendered := DimStyle.Render(meta)

	labelStyle := NormalStyle
	if selected {
		labelStyle = SelectedStyle
	}

	used := lipgloss.Width(badge) + lipgloss.Width(pin) + lipgloss.Width(metaRendered) + 3
	labelWidth := width - used
	if labelWidth < 8 {
		labelWidth = 8
	}
	label := labelStyle.Render(truncate.StringWithTail(item.Label(), uint(labelWidth), "…"))

	gap := width - lipgloss.Width(badge) - lipgloss.Width(pin) - lipgloss.Width(label) - lipgloss.Width(metaRendered) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + badge + " " + pin + label + strings.Repeat(" ", gap) + metaRendered
}

func (m *ClipListModel) renderBody(item models.ClipItem, width int, expanded bool) []string {
	bodyWidth := width - len(bodyIndent) - 1
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	var lines []string
	switch item.ContentType {
	case models.ContentText, models.ContentPlugin:
		lines = m.textBody(item, bodyWidth, expanded)
	case models.ContentHTML:
		lines = m.htmlBody(item, bodyWidth, expanded)
	case models.ContentColor:
		lines = m.colorBody(item, bodyWidth, expanded)
	case models.ContentImage:
		lines = m.pictureBody(item, bodyWidth, expanded, fmt.Sprintf("%d×%d", item.ImageWidth, item.ImageHeight))
	case models.ContentSVG:
		lines = m.pictureBody(item, bodyWidth, expanded, vectorLabel("svg", item))
	case models.ContentDrawio:
		lines = m.pictureBody(item, bodyWidth, expanded, vectorLabel("drawio", item))
	}

	if expanded && len(item.Subitems) > 0 {
		for _, sub := range item.Subitems {
			chip := GetTagChipStyle(sub.Tag).Render(sub.Tag)
			text := truncate.StringWithTail(utils.CollapseWhitespace(sub.Text), uint(bodyWidth-lipgloss.Width(chip)-1), "…")
			lines = append(lines, chip+" "+NormalStyle.Render(text))
		}
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = bodyIndent + truncate.String(l, uint(width-len(bodyIndent)))
	}
	return out
}

func (m *ClipListModel) textBody(item models.ClipItem, width int, expanded bool) []string {
	text := item.ContentText
	if text == "" {
		text = item.PreviewText
	}
	if text == "" {
		return nil
	}

	wrapped := strings.Split(wordwrap.String(text, width), "\n")
	limit := m.settings.UI.CollapsedRows
	if expanded {
		limit = m.settings.UI.ExpandedRowsMax
	}
	return m.window(item, wrapped, limit, expanded)
}

func (m *ClipListModel) htmlBody(item models.ClipItem, width int, expanded bool) []string {
	source := item.ContentText
	if source == "" {
		source = item.PreviewText
	}
	if source == "" {
		return nil
	}

	if !expanded {
		wrapped := strings.Split(wordwrap.String(utils.CollapseWhitespace(source), width), "\n")
		return m.window(item, wrapped, m.settings.UI.CollapsedRows, false)
	}

	rendered := renderHTML(source, width)
	lines := strings.Split(rendered, "\n")
	return m.window(item, lines, m.settings.UI.ExpandedRowsMax, true)
}

func (m *ClipListModel) colorBody(item models.ClipItem, width int, expanded bool) []string {
	literal := item.ContentText
	forms, ok := utils.ParseColorForms(literal)
	hex := item.BaseColor
	if hex == "" && ok {
		hex = forms.Hex
	}

	swatch := GetSwatchStyle(hex).Render(strings.Repeat(" ", 10))
	if !expanded {
		return []string{swatch + " " + NormalStyle.Render(literal)}
	}

	wide := GetSwatchStyle(hex).Render(strings.Repeat(" ", min(width, 24)))
	lines := []string{wide, wide, wide}
	if ok {
		lines = append(lines,
			DimStyle.Render("hex ")+NormalStyle.Render(forms.Hex),
			DimStyle.Render("rgb ")+NormalStyle.Render(forms.RGB),
			DimStyle.Render("hsl ")+NormalStyle.Render(forms.HSL),
		)
	} else {
		lines = append(lines, DimStyle.Render(literal))
	}
	return lines
}

// pictureBody renders a placeholder frame for raster and vector content;
// expanded frames derive their height from the image aspect ratio and the
// available width.
func (m *ClipListModel) pictureBody(item models.ClipItem, width int, expanded bool, label string) []string {
	if !expanded {
		return []string{DimStyle.Render(label)}
	}

	inner := min(width-2, 48)
	rows := pictureRows(item, inner, m.settings.UI.ExpandedRowsMax)
	box := InactiveBorderStyle.
		Width(inner).
		Height(rows).
		Align(lipgloss.Center, lipgloss.Center).
		Render(DimStyle.Render(label))
	return strings.Split(box, "\n")
}

// pictureRows converts the image aspect ratio into terminal rows, cells
// being roughly twice as tall as wide.
func pictureRows(item models.ClipItem, innerWidth, maxRows int) int {
	if item.ImageWidth <= 0 || item.ImageHeight <= 0 {
		return 4
	}
	rows := innerWidth * item.ImageHeight / item.ImageWidth / 2
	if rows < 3 {
		rows = 3
	}
	if rows > maxRows-2 {
		rows = maxRows - 2
	}
	return rows
}

// window caps body lines and applies the peek pan offset, re-clamping the
// pan against the real line count.
func (m *ClipListModel) window(item models.ClipItem, lines []string, limit int, expanded bool) []string {
	if len(lines) <= limit {
		return lines
	}
	pan := 0
	if expanded {
		pan = m.expansion.PanOffset(item.ID)
		if pan > len(lines)-limit {
			pan = len(lines) - limit
		}
	}
	out := append([]string{}, lines[pan:pan+limit]...)
	if pan+limit < len(lines) {
		out[limit-1] = DimStyle.Render(fmt.Sprintf("… %d more lines", len(lines)-pan-limit+1))
	}
	return out
}

func typeCode(item models.ClipItem) string {
	switch item.ContentType {
	case models.ContentText:
		return "TXT"
	case models.ContentHTML:
		return "HTM"
	case models.ContentImage:
		return "IMG"
	case models.ContentSVG:
		return "SVG"
	case models.ContentDrawio:
		return "DRW"
	case models.ContentColor:
		return "CLR"
	case models.ContentPlugin:
		if item.PluginID != "" {
			return strings.ToUpper(truncate.String(item.PluginID, 6))
		}
		return "PLG"
	}
	return "???"
}

func vectorLabel(kind string, item models.ClipItem) string {
	if item.ImageWidth > 0 {
		return fmt.Sprintf("%s %d×%d", kind, item.ImageWidth, item.ImageHeight)
	}
	return kind
}

// renderHTML converts markup to markdown and styles it for the terminal.
// Conversion failures fall back to progressively rawer forms.
func renderHTML(source string, width int) string {
	conv := md.NewConverter("", true, nil)
	markdown, err := conv.ConvertString(source)
	if err != nil {
		return source
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(out, "\n")
}
