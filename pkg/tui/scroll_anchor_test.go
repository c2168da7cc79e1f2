package tui

import (
	"testing"

	"github.com/clipdeck/clipdeck-terminal/pkg/tui/testhelpers"
)

// Single-line text clips render to two content lines plus a separator, so
// row geometry in these tests is a fixed three lines per row.

func TestAnchorRestoresPositionAfterInsertAbove(t *testing.T) {
	list := NewClipList(nil)
	list.SetSize(80, 9)
	list.Reset(testhelpers.MakeTextClips(10))
	list.SetYOffset(6)

	list.SnapshotAnchor()
	list.Insert(testhelpers.MakeTextClip(99, "new arrival"), 0)

	if !list.RestoreAnchor() {
		t.Fatal("expected a settle pass after the first restore")
	}
	if got := list.YOffset(); got != 9 {
		t.Errorf("yOffset after restore = %d, want 9", got)
	}

	// The anchor item's top edge sits where it sat before the insert.
	row, ok := list.RowByID(3)
	if !ok {
		t.Fatal("anchor item vanished from the index")
	}
	if delta := list.rowTop(row) - list.YOffset(); delta != 0 {
		t.Errorf("anchor top offset after restore = %d, want 0", delta)
	}

	if list.RestoreAnchor() {
		t.Error("expected restoration to finish once the layout is stable")
	}
}

func TestAnchorSkippedWhenViewPinnedToTop(t *testing.T) {
	list := NewClipList(nil)
	list.SetSize(80, 9)
	list.Reset(testhelpers.MakeTextClips(10))

	list.SnapshotAnchor()
	list.Insert(testhelpers.MakeTextClip(99, "new arrival"), 0)

	if list.RestoreAnchor() {
		t.Error("a top-pinned view should not schedule restoration")
	}
	if got := list.YOffset(); got != 0 {
		t.Errorf("yOffset = %d, want 0", got)
	}
}

func TestAnchorAbandonedWhenItemRemoved(t *testing.T) {
	list := NewClipList(nil)
	list.SetSize(80, 9)
	list.Reset(testhelpers.MakeTextClips(10))
	list.SetYOffset(6)

	list.SnapshotAnchor()
	list.Reset(testhelpers.MakeTextClips(10)[5:])

	if list.RestoreAnchor() {
		t.Error("restoration should abandon silently when the anchor item is gone")
	}
	if list.Anchor().Pending() {
		t.Error("anchor still pending after abandonment")
	}
}

func TestAnchorRetryCeiling(t *testing.T) {
	var a ScrollAnchor
	a.Snapshot(7, 30, 10)

	// A layout that never settles: the item's top shifts on every pass.
	moving := 30
	topOf := func(int) (int, bool) {
		moving += 10
		return moving, true
	}

	y := 10
	passes := 0
	for {
		ny, again := a.Reanchor(topOf, 10000, y)
		passes++
		if !again {
			break
		}
		y = ny
		if passes > 20 {
			t.Fatal("restoration never gave up")
		}
	}

	if want := anchorRetryCeiling + 1; passes != want {
		t.Errorf("settle passes = %d, want %d", passes, want)
	}
	if a.Pending() {
		t.Error("anchor still pending after exhausting retries")
	}
}

func TestAnchorClampsToScrollableRange(t *testing.T) {
	var a ScrollAnchor
	a.Snapshot(1, 0, 50) // offset -50 forces an out-of-range target

	topOf := func(int) (int, bool) { return 0, true }

	y, again := a.Reanchor(topOf, 20, 0)
	if !again {
		t.Fatal("expected a settle pass")
	}
	if y != 20 {
		t.Errorf("clamped offset = %d, want 20", y)
	}

	y, again = a.Reanchor(topOf, 20, y)
	if again {
		t.Error("expected restoration to finish at the clamped position")
	}
	if y != 20 {
		t.Errorf("offset moved to %d after settling, want 20", y)
	}
}

func TestSnapshotSupersedesPendingRestoration(t *testing.T) {
	var a ScrollAnchor
	a.Snapshot(1, 10, 4)
	for i := 0; i < 4; i++ {
		a.Reanchor(func(int) (int, bool) { return 10 + i, true }, 100, 0)
	}

	a.Snapshot(2, 30, 12)
	topOf := func(id int) (int, bool) {
		if id != 2 {
			t.Fatalf("restoring stale anchor id %d", id)
		}
		return 60, true
	}
	y, again := a.Reanchor(topOf, 100, 12)
	if !again {
		t.Fatal("fresh snapshot should restore")
	}
	if want := 60 - (30 - 12); y != want {
		t.Errorf("restored offset = %d, want %d", y, want)
	}
}
