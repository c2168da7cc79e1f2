package tui

import (
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// ClipListModel is the list-state core: the visible projection of clip
// items, a stable id→row index rebuilt on every mutation, the selection,
// and the virtualized scroll position. It is mutated only from backend
// events and explicit user commands; views read it.
type ClipListModel struct {
	settings *models.Settings

	items      []models.ClipItem
	rowByID    map[int]int
	revs       map[int]int
	selectedID int

	yOffset int
	width   int
	height  int

	expansion *ExpansionTracker
	anchor    ScrollAnchor
	cache     rowCache
}

func NewClipList(settings *models.Settings) *ClipListModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &ClipListModel{
		settings:  settings,
		rowByID:   make(map[int]int),
		revs:      make(map[int]int),
		expansion: NewExpansionTracker(settings),
		cache:     make(rowCache),
	}
}

func (m *ClipListModel) SetSize(width, height int) {
	if width != m.width {
		m.cache = make(rowCache)
	}
	m.width = width
	m.height = height
	m.clampScroll()
}

func (m *ClipListModel) Len() int {
	return len(m.items)
}

func (m *ClipListModel) Expansion() *ExpansionTracker {
	return m.expansion
}

func (m *ClipListModel) Anchor() *ScrollAnchor {
	return &m.anchor
}

// RowByID resolves an item id to its current row.
func (m *ClipListModel) RowByID(id int) (int, bool) {
	row, ok := m.rowByID[id]
	return row, ok
}

func (m *ClipListModel) ItemAt(row int) (models.ClipItem, bool) {
	if row < 0 || row >= len(m.items) {
		return models.ClipItem{}, false
	}
	return m.items[row], true
}

// Selected returns the selected item, if the selection still resolves.
func (m *ClipListModel) Selected() (models.ClipItem, bool) {
	row, ok := m.rowByID[m.selectedID]
	if !ok {
		return models.ClipItem{}, false
	}
	return m.items[row], true
}

func (m *ClipListModel) SelectedRow() int {
	row, ok := m.rowByID[m.selectedID]
	if !ok {
		return -1
	}
	return row
}

// Reset replaces the projection wholesale. The selection follows its item
// id when the item survives the reset and clears otherwise.
func (m *ClipListModel) Reset(items []models.ClipItem) {
	m.items = items
	m.rebuildIndex()
	m.cache = make(rowCache)
	m.expansion.PruneTo(m.rowByID)
	if _, ok := m.rowByID[m.selectedID]; !ok {
		m.selectedID = 0
	}
	m.clampScroll()
}

// Insert places one announced item at the backend-computed row.
func (m *ClipListModel) Insert(item models.ClipItem, row int) {
	if row < 0 {
		row = 0
	}
	if row > len(m.items) {
		row = len(m.items)
	}
	m.items = append(m.items, models.ClipItem{})
	copy(m.items[row+1:], m.items[row:])
	m.items[row] = item
	m.rebuildIndex()
	m.bumpRev(item.ID)
	m.clampScroll()
}

// Patch applies an in-place item mutation. A content-type change drops
// the item's expansion state; fresh content re-arms its load gate.
func (m *ClipListModel) Patch(item models.ClipItem) bool {
	row, ok := m.rowByID[item.ID]
	if !ok {
		return false
	}
	if m.items[row].ContentType != item.ContentType {
		m.expansion.Forget(item.ID)
	}
	if item.HasFullContent {
		m.expansion.ContentArrived(item.ID)
	}
	m.items[row] = item
	m.bumpRev(item.ID)
	m.clampScroll()
	return true
}

// MoveCursor shifts the selection by delta rows, entering the list at the
// nearest end when nothing is selected yet.
func (m *ClipListModel) MoveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	row, ok := m.rowByID[m.selectedID]
	if !ok {
		if delta >= 0 {
			row = 0
		} else {
			row = len(m.items) - 1
		}
	} else {
		row += delta
		if row < 0 {
			row = 0
		}
		if row > len(m.items)-1 {
			row = len(m.items) - 1
		}
	}
	m.selectedID = m.items[row].ID
	m.scrollCursorIntoView()
}

func (m *ClipListModel) SelectRow(row int) {
	if row < 0 || row >= len(m.items) {
		return
	}
	m.selectedID = m.items[row].ID
	m.scrollCursorIntoView()
}

// SelectRowByID moves the selection to the item with the given id, if it
// is still in the projection.
func (m *ClipListModel) SelectRowByID(id int) {
	if _, ok := m.rowByID[id]; ok {
		m.selectedID = id
		m.scrollCursorIntoView()
	}
}

func (m *ClipListModel) SelectFirst() {
	if len(m.items) > 0 {
		m.selectedID = m.items[0].ID
		m.yOffset = 0
	}
}

func (m *ClipListModel) SelectLast() {
	if len(m.items) > 0 {
		m.selectedID = m.items[len(m.items)-1].ID
		m.scrollCursorIntoView()
	}
}

// EnsureSelectedVisible re-scrolls after a height change (expansion,
// content arrival) so the selected row stays on screen.
func (m *ClipListModel) EnsureSelectedVisible() {
	m.scrollCursorIntoView()
}

// ScrollBy moves the viewport without touching the selection.
func (m *ClipListModel) ScrollBy(lines int) {
	m.yOffset += lines
	m.clampScroll()
}

func (m *ClipListModel) YOffset() int {
	return m.yOffset
}

func (m *ClipListModel) SetYOffset(y int) {
	m.yOffset = y
	m.clampScroll()
}

// PageBy scrolls by whole viewports and drags the selection along so it
// stays on screen.
func (m *ClipListModel) PageBy(direction int) {
	m.ScrollBy(direction * m.height)
	row, _, ok := m.TopVisible()
	if ok {
		m.selectedID = m.items[row].ID
	}
}

// TopVisible returns the first row intersecting the viewport and its top
// line, the anchor candidate for mutation snapshots.
func (m *ClipListModel) TopVisible() (row, top int, ok bool) {
	y := 0
	for i := range m.items {
		h := m.RowHeight(i)
		if y+h > m.yOffset {
			return i, y, true
		}
		y += h
	}
	return 0, 0, false
}

// SnapshotAnchor records the current reading position ahead of a layout
// mutation. A viewport pinned to the very top is not anchored: the newest
// entry is expected to push content down there.
func (m *ClipListModel) SnapshotAnchor() {
	if m.yOffset == 0 {
		m.anchor.Cancel()
		return
	}
	row, top, ok := m.TopVisible()
	if !ok {
		m.anchor.Cancel()
		return
	}
	m.anchor.Snapshot(m.items[row].ID, top, m.yOffset)
}

// RestoreAnchor walks the viewport back to the anchored position and
// reports whether another settle pass should be scheduled.
func (m *ClipListModel) RestoreAnchor() bool {
	y, again := m.anchor.Reanchor(m.topOfID, m.MaxScroll(), m.yOffset)
	m.yOffset = y
	return again
}

// HitTest maps a viewport-relative line to the row rendered there.
func (m *ClipListModel) HitTest(line int) (int, bool) {
	if line < 0 || line >= m.height {
		return 0, false
	}
	target := m.yOffset + line
	y := 0
	for i := range m.items {
		h := m.RowHeight(i)
		if target < y+h {
			return i, true
		}
		y += h
	}
	return 0, false
}

// ContentHeight is the total rendered height of all rows.
func (m *ClipListModel) ContentHeight() int {
	total := 0
	for i := range m.items {
		total += m.RowHeight(i)
	}
	return total
}

func (m *ClipListModel) MaxScroll() int {
	max := m.ContentHeight() - m.height
	if max < 0 {
		max = 0
	}
	return max
}

func (m *ClipListModel) rebuildIndex() {
	m.rowByID = make(map[int]int, len(m.items))
	for i := range m.items {
		m.rowByID[m.items[i].ID] = i
	}
}

func (m *ClipListModel) bumpRev(id int) {
	m.revs[id]++
}

func (m *ClipListModel) rowTop(row int) int {
	y := 0
	for i := 0; i < row && i < len(m.items); i++ {
		y += m.RowHeight(i)
	}
	return y
}

func (m *ClipListModel) topOfID(id int) (int, bool) {
	row, ok := m.rowByID[id]
	if !ok {
		return 0, false
	}
	return m.rowTop(row), true
}

func (m *ClipListModel) clampScroll() {
	if m.yOffset > m.MaxScroll() {
		m.yOffset = m.MaxScroll()
	}
	if m.yOffset < 0 {
		m.yOffset = 0
	}
}

// scrollCursorIntoView nudges the viewport the minimal distance that puts
// the selected row fully on screen; rows taller than the viewport align
// their top edge.
func (m *ClipListModel) scrollCursorIntoView() {
	row, ok := m.rowByID[m.selectedID]
	if !ok {
		return
	}
	top := m.rowTop(row)
	h := m.RowHeight(row)
	if top < m.yOffset || h >= m.height {
		m.yOffset = top
	} else if top+h > m.yOffset+m.height {
		m.yOffset = top + h - m.height
	}
	m.clampScroll()
}
