package tui

import (
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// ExpansionTracker keeps per-item expansion state: the explicit
// collapsed/expanded flag the user toggled, the transient peek overlay a
// long press creates, and which items already have a content load in
// flight. State is keyed by item id so it survives projection rebuilds.
type ExpansionTracker struct {
	settings  *models.Settings
	expanded  map[int]bool
	requested map[int]bool
	peek      *peekState
}

type peekState struct {
	itemID      int
	wasExpanded bool
	pan         int
}

func NewExpansionTracker(settings *models.Settings) *ExpansionTracker {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &ExpansionTracker{
		settings:  settings,
		expanded:  make(map[int]bool),
		requested: make(map[int]bool),
	}
}

// IsExpanded reports the effective state: an active peek forces its item
// expanded regardless of the explicit flag.
func (t *ExpansionTracker) IsExpanded(id int) bool {
	if t.peek != nil && t.peek.itemID == id {
		return true
	}
	return t.expanded[id]
}

// Toggle flips the explicit flag and reports whether a content load is
// due. At most one load is issued per item until fresh content arrives.
func (t *ExpansionTracker) Toggle(item models.ClipItem) (needLoad bool) {
	now := !t.expanded[item.ID]
	t.expanded[item.ID] = now
	if !now {
		return false
	}
	return t.markLoad(item)
}

// BeginPeek force-expands the item for the duration of a press-and-hold.
// Only peekable content reacts; the return values are whether the peek
// started and whether a load is due.
func (t *ExpansionTracker) BeginPeek(item models.ClipItem) (started, needLoad bool) {
	if !t.Peekable(item) {
		return false, false
	}
	t.peek = &peekState{itemID: item.ID, wasExpanded: t.expanded[item.ID]}
	return true, t.markLoad(item)
}

// EndPeek restores whichever explicit state preceded the hold.
func (t *ExpansionTracker) EndPeek() {
	if t.peek == nil {
		return
	}
	t.expanded[t.peek.itemID] = t.peek.wasExpanded
	t.peek = nil
}

// Peeking reports the peeked item id, or false when no peek is active.
func (t *ExpansionTracker) Peeking() (int, bool) {
	if t.peek == nil {
		return 0, false
	}
	return t.peek.itemID, true
}

// Pan adjusts the peek's vertical pan offset; the view clamps it against
// the body it renders.
func (t *ExpansionTracker) Pan(delta int) {
	if t.peek == nil {
		return
	}
	t.peek.pan += delta
	if t.peek.pan < 0 {
		t.peek.pan = 0
	}
}

func (t *ExpansionTracker) PanOffset(id int) int {
	if t.peek == nil || t.peek.itemID != id {
		return 0
	}
	return t.peek.pan
}

// ContentArrived clears the in-flight mark so a later re-staging of the
// same item can load again.
func (t *ExpansionTracker) ContentArrived(id int) {
	delete(t.requested, id)
}

// Forget drops all state for an item, used when it is deleted or its
// content type changed under us.
func (t *ExpansionTracker) Forget(id int) {
	delete(t.expanded, id)
	delete(t.requested, id)
	if t.peek != nil && t.peek.itemID == id {
		t.peek = nil
	}
}

// PruneTo drops state for items no longer present.
func (t *ExpansionTracker) PruneTo(present map[int]int) {
	for id := range t.expanded {
		if _, ok := present[id]; !ok {
			t.Forget(id)
		}
	}
	for id := range t.requested {
		if _, ok := present[id]; !ok {
			delete(t.requested, id)
		}
	}
}

func (t *ExpansionTracker) markLoad(item models.ClipItem) bool {
	if item.HasFullContent || t.requested[item.ID] {
		return false
	}
	t.requested[item.ID] = true
	return true
}

// Peekable reports whether press-and-hold expands the item: images and
// vectors always, text only when it is long.
func (t *ExpansionTracker) Peekable(item models.ClipItem) bool {
	switch item.ContentType {
	case models.ContentImage, models.ContentSVG, models.ContentDrawio:
		return true
	case models.ContentText, models.ContentHTML:
		return t.LongText(item)
	}
	return false
}

// Expandable reports whether the expand action applies at all. Colors
// expand to their swatch and forms; short plain text has nothing more to
// show.
func (t *ExpansionTracker) Expandable(item models.ClipItem) bool {
	switch item.ContentType {
	case models.ContentImage, models.ContentSVG, models.ContentDrawio,
		models.ContentColor, models.ContentHTML:
		return true
	case models.ContentText, models.ContentPlugin:
		return t.LongText(item) || len(item.Subitems) > 0
	}
	return false
}

// LongText reports whether a text-bearing item overflows its collapsed
// cap: either by stored length or by line count.
func (t *ExpansionTracker) LongText(item models.ClipItem) bool {
	if item.Length > t.settings.UI.LongTextThreshold {
		return true
	}
	lines := 1
	text := item.ContentText
	if text == "" {
		text = item.PreviewText
	}
	for _, r := range text {
		if r == '\n' {
			lines++
		}
	}
	return lines > t.settings.UI.CollapsedRows
}
