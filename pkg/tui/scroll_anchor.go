package tui

// anchorRetryCeiling bounds how many settle passes a single restoration
// may consume before it is abandoned.
const anchorRetryCeiling = 6

// ScrollAnchor preserves the reading position across list mutations that
// reflow content above the viewport. Before a mutation is applied the app
// snapshots the topmost visible item and its offset from the viewport top;
// after the mutation the anchor walks the offset back, re-checking on
// settle signals until the position is stable or the retry budget runs
// out. An anchor whose item vanished is dropped without complaint.
type ScrollAnchor struct {
	itemID  int
	offset  int
	retries int
	pending bool
}

// Snapshot records the anchor item and its distance from the viewport
// top. A snapshot taken while a restoration is pending supersedes it.
func (a *ScrollAnchor) Snapshot(itemID, rowTop, viewTop int) {
	a.itemID = itemID
	a.offset = rowTop - viewTop
	a.retries = 0
	a.pending = true
}

func (a *ScrollAnchor) Pending() bool {
	return a.pending
}

// Cancel drops any pending restoration.
func (a *ScrollAnchor) Cancel() {
	a.pending = false
}

// Reanchor computes where the viewport should sit so the anchor item
// returns to its snapshotted offset. It returns the clamped target offset
// and whether the caller should schedule another settle pass. Stale
// anchors and exhausted budgets finish the restoration in place.
func (a *ScrollAnchor) Reanchor(topOf func(int) (int, bool), maxScroll, currentY int) (int, bool) {
	if !a.pending {
		return currentY, false
	}

	top, ok := topOf(a.itemID)
	if !ok {
		a.pending = false
		return currentY, false
	}

	a.retries++
	if a.retries > anchorRetryCeiling {
		a.pending = false
		return currentY, false
	}

	want := top - a.offset
	if want < 0 {
		want = 0
	}
	if want > maxScroll {
		want = maxScroll
	}
	if want == currentY {
		a.pending = false
		return currentY, false
	}
	return want, true
}
