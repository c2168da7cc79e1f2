package tui

import (
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// tabSpan is one tab's horizontal extent in the strip row, [start, end).
type tabSpan struct {
	start int
	end   int
}

// GroupStripModel holds the group tab row: the groups in strip order, the
// current and destination markers, the tab layout measured at render
// time, and the drag gesture state.
type GroupStripModel struct {
	groups        []models.Group
	currentID     int
	destinationID int
	spans         []tabSpan
	drag          DragState
}

func NewGroupStrip() *GroupStripModel {
	return &GroupStripModel{currentID: models.AllClipsGroupID}
}

// SetGroups replaces the strip. An in-flight drag survives only if its
// source index still exists.
func (m *GroupStripModel) SetGroups(groups []models.Group, currentID, destinationID int) {
	m.groups = groups
	m.currentID = currentID
	m.destinationID = destinationID
	if m.drag.Active() && m.drag.Source() >= len(groups) {
		m.drag.Cancel()
	}
}

func (m *GroupStripModel) Groups() []models.Group {
	return m.groups
}

func (m *GroupStripModel) CurrentID() int {
	return m.currentID
}

func (m *GroupStripModel) Current() (models.Group, bool) {
	for _, g := range m.groups {
		if g.ID == m.currentID {
			return g, true
		}
	}
	return models.Group{}, false
}

func (m *GroupStripModel) GroupAt(index int) (models.Group, bool) {
	if index < 0 || index >= len(m.groups) {
		return models.Group{}, false
	}
	return m.groups[index], true
}

func (m *GroupStripModel) IndexOf(id int) int {
	for i, g := range m.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// SelectNext and SelectPrev cycle the current group by strip position.
func (m *GroupStripModel) SelectNext() (int, bool) {
	return m.selectByOffset(1)
}

func (m *GroupStripModel) SelectPrev() (int, bool) {
	return m.selectByOffset(-1)
}

func (m *GroupStripModel) selectByOffset(delta int) (int, bool) {
	if len(m.groups) == 0 {
		return 0, false
	}
	idx := m.IndexOf(m.currentID)
	if idx < 0 {
		idx = 0
	}
	idx = (idx + delta + len(m.groups)) % len(m.groups)
	return m.groups[idx].ID, true
}

// HitTab resolves a strip-row x coordinate to the tab index under it.
func (m *GroupStripModel) HitTab(x int) (int, bool) {
	for i, sp := range m.spans {
		if x >= sp.start && x < sp.end {
			return i, true
		}
	}
	return 0, false
}

// Drag exposes the gesture state to the app's mouse routing.
func (m *GroupStripModel) Drag() *DragState {
	return &m.drag
}

// DragStartable reports whether the tab at index may be dragged at all:
// reserved leading groups and trailing plugin groups stay put.
func (m *GroupStripModel) DragStartable(index int) bool {
	lo, hi := models.UserGroupSpan(m.groups)
	return index >= lo && index < hi
}

// DropTarget projects the dragged tab's center (resting center plus the
// cumulative drag offset) onto the strip and clamps the hit to the
// reorderable span. A point left of the first tab or right of the last
// clamps to the nearest valid boundary rather than invalidating the
// gesture.
func (m *GroupStripModel) DropTarget() int {
	src := m.drag.Source()
	if src < 0 || src >= len(m.spans) {
		return src
	}
	lo, hi := models.UserGroupSpan(m.groups)
	if hi <= lo {
		return src
	}

	center := (m.spans[src].start+m.spans[src].end)/2 + m.drag.Offset()
	idx := -1
	for i, sp := range m.spans {
		if center >= sp.start && center < sp.end {
			idx = i
			break
		}
	}
	if idx < 0 {
		if len(m.spans) > 0 && center < m.spans[0].start {
			idx = 0
		} else {
			idx = len(m.spans) - 1
		}
	}

	if idx < lo {
		idx = lo
	}
	if idx > hi-1 {
		idx = hi - 1
	}
	return idx
}
