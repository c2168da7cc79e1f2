package tui

import (
	"testing"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/tui/testhelpers"
)

// makeList builds a sized list holding n single-line text clips. Each row
// renders as header, one body line and a separator, three lines total.
func makeList(t *testing.T, n, height int) *ClipListModel {
	t.Helper()
	list := NewClipList(nil)
	list.SetSize(80, height)
	list.Reset(testhelpers.MakeTextClips(n))
	if list.Len() != n {
		t.Fatalf("list holds %d items, want %d", list.Len(), n)
	}
	return list
}

func TestResetFollowsSelectionByID(t *testing.T) {
	list := makeList(t, 5, 15)
	list.SelectRowByID(3)

	// The item survives at a different row: the selection tracks it.
	list.Reset([]models.ClipItem{
		testhelpers.MakeTextClip(4, "clip 4"),
		testhelpers.MakeTextClip(3, "clip 3"),
		testhelpers.MakeTextClip(2, "clip 2"),
	})
	sel, ok := list.Selected()
	if !ok || sel.ID != 3 {
		t.Fatalf("selection after reset = (%v, %v), want item 3", sel.ID, ok)
	}
	if list.SelectedRow() != 1 {
		t.Errorf("selected row = %d, want 1", list.SelectedRow())
	}

	// The item vanishes: the selection clears rather than jumping.
	list.Reset(testhelpers.MakeTextClips(2))
	if _, ok := list.Selected(); ok {
		t.Error("selection should clear when its item leaves the projection")
	}
	if list.SelectedRow() != -1 {
		t.Errorf("selected row = %d, want -1", list.SelectedRow())
	}
}

func TestInsertShiftsFollowingRows(t *testing.T) {
	list := makeList(t, 3, 15)
	list.Insert(testhelpers.MakeTextClip(9, "newest"), 0)

	if row, _ := list.RowByID(9); row != 0 {
		t.Errorf("inserted item at row %d, want 0", row)
	}
	for id := 1; id <= 3; id++ {
		if row, _ := list.RowByID(id); row != id {
			t.Errorf("item %d at row %d after insert, want %d", id, row, id)
		}
	}
	if list.Len() != 4 {
		t.Errorf("list length = %d, want 4", list.Len())
	}

	// Out-of-range rows clamp instead of panicking.
	list.Insert(testhelpers.MakeTextClip(10, "tail"), 99)
	if row, _ := list.RowByID(10); row != 4 {
		t.Errorf("clamped insert landed at row %d, want 4", row)
	}
}

func TestPatchReplacesInPlace(t *testing.T) {
	list := makeList(t, 3, 15)

	patched := testhelpers.MakeTextClip(2, "clip 2")
	patched.Pinned = true
	if !list.Patch(patched) {
		t.Fatal("patch of a present item reported no match")
	}
	item, _ := list.ItemAt(1)
	if !item.Pinned {
		t.Error("patch did not replace the stored item")
	}

	if list.Patch(testhelpers.MakeTextClip(42, "ghost")) {
		t.Error("patch of an absent item reported a match")
	}
}

func TestPatchTypeChangeDropsExpansionState(t *testing.T) {
	list := NewClipList(nil)
	list.SetSize(80, 15)
	long := testhelpers.MakeLongTextClip(1)
	list.Reset([]models.ClipItem{long})

	list.Expansion().Toggle(long)
	if !list.Expansion().IsExpanded(1) {
		t.Fatal("toggle did not expand the item")
	}

	recycled := testhelpers.MakeColorClip(1, "#FF8800")
	list.Patch(recycled)
	if list.Expansion().IsExpanded(1) {
		t.Error("expansion state survived a content-type change")
	}
}

func TestPatchContentArrivalReArmsLoad(t *testing.T) {
	list := NewClipList(nil)
	list.SetSize(80, 15)
	long := testhelpers.MakeLongTextClip(1)
	list.Reset([]models.ClipItem{long})

	if !list.Expansion().Toggle(long) {
		t.Fatal("first expand of staged content should request a load")
	}

	long.ContentText = "the full text"
	long.HasFullContent = true
	list.Patch(long)

	// Collapse and re-expand: content is local now, nothing to load.
	list.Expansion().Toggle(long)
	if list.Expansion().Toggle(long) {
		t.Error("expand after content arrival should not request a load")
	}
}

func TestMoveCursorClampsAtEnds(t *testing.T) {
	list := makeList(t, 4, 15)

	// No selection yet: moving down enters at the top, moving up at the
	// bottom.
	list.MoveCursor(1)
	if list.SelectedRow() != 0 {
		t.Fatalf("first move down selected row %d, want 0", list.SelectedRow())
	}
	fresh := makeList(t, 4, 15)
	fresh.MoveCursor(-1)
	if fresh.SelectedRow() != 3 {
		t.Fatalf("first move up selected row %d, want 3", fresh.SelectedRow())
	}

	list.MoveCursor(5)
	if list.SelectedRow() != 3 {
		t.Errorf("move past the end selected row %d, want 3", list.SelectedRow())
	}
	list.SelectFirst()
	list.MoveCursor(-5)
	if list.SelectedRow() != 0 {
		t.Errorf("move past the top selected row %d, want 0", list.SelectedRow())
	}
}

func TestCursorFollowScrollsViewport(t *testing.T) {
	// Two three-line rows fit the six-line viewport.
	list := makeList(t, 10, 6)

	list.SelectRow(0)
	if list.YOffset() != 0 {
		t.Fatalf("selecting the first row moved the viewport to %d", list.YOffset())
	}

	// Row 3 spans lines 9 to 11; the viewport must end at line 12.
	list.SelectRow(3)
	if list.YOffset() != 6 {
		t.Errorf("yOffset after selecting row 3 = %d, want 6", list.YOffset())
	}

	// Moving back up scrolls the minimal distance.
	list.SelectRow(1)
	if list.YOffset() != 3 {
		t.Errorf("yOffset after selecting row 1 = %d, want 3", list.YOffset())
	}
}

func TestHitTestResolvesViewportLines(t *testing.T) {
	list := makeList(t, 5, 9)

	tests := []struct {
		line    int
		wantRow int
		wantOK  bool
	}{
		{0, 0, true},
		{2, 0, true}, // separator line belongs to its row
		{3, 1, true},
		{8, 2, true},
		{-1, 0, false},
		{9, 0, false}, // below the viewport
	}
	for _, tt := range tests {
		row, ok := list.HitTest(tt.line)
		if ok != tt.wantOK || (ok && row != tt.wantRow) {
			t.Errorf("HitTest(%d) = (%d, %v), want (%d, %v)", tt.line, row, ok, tt.wantRow, tt.wantOK)
		}
	}

	// Scrolled by one full row, line zero lands on row 1.
	list.SetYOffset(3)
	if row, ok := list.HitTest(0); !ok || row != 1 {
		t.Errorf("HitTest(0) scrolled = (%d, %v), want (1, true)", row, ok)
	}
}

func TestScrollClampsToContent(t *testing.T) {
	list := makeList(t, 10, 12)

	if got := list.ContentHeight(); got != 30 {
		t.Fatalf("content height = %d, want 30", got)
	}
	if got := list.MaxScroll(); got != 18 {
		t.Fatalf("max scroll = %d, want 18", got)
	}

	list.ScrollBy(100)
	if list.YOffset() != 18 {
		t.Errorf("yOffset after overscroll = %d, want 18", list.YOffset())
	}
	list.ScrollBy(-100)
	if list.YOffset() != 0 {
		t.Errorf("yOffset after underscroll = %d, want 0", list.YOffset())
	}
}

func TestPageByDragsSelectionAlong(t *testing.T) {
	list := makeList(t, 10, 6)
	list.SelectRow(0)

	list.PageBy(1)
	if list.YOffset() != 6 {
		t.Fatalf("yOffset after page down = %d, want 6", list.YOffset())
	}
	if list.SelectedRow() != 2 {
		t.Errorf("selection after page down = row %d, want 2", list.SelectedRow())
	}

	list.PageBy(-1)
	if list.YOffset() != 0 || list.SelectedRow() != 0 {
		t.Errorf("page up landed at (offset %d, row %d), want (0, 0)",
			list.YOffset(), list.SelectedRow())
	}
}

func TestWidthChangeInvalidatesRenderCache(t *testing.T) {
	list := makeList(t, 3, 15)
	list.View()
	if len(list.cache) == 0 {
		t.Fatal("rendering populated no cache entries")
	}

	list.SetSize(80, 20)
	if len(list.cache) == 0 {
		t.Error("height-only resize should keep cached rows")
	}

	list.SetSize(60, 20)
	if len(list.cache) != 0 {
		t.Error("width change must drop every cached row")
	}
}

func TestTopVisibleTracksScroll(t *testing.T) {
	list := makeList(t, 5, 9)

	row, top, ok := list.TopVisible()
	if !ok || row != 0 || top != 0 {
		t.Fatalf("TopVisible at rest = (%d, %d, %v), want (0, 0, true)", row, top, ok)
	}

	// One line into row 1: it is the first intersecting row.
	list.SetYOffset(4)
	row, top, ok = list.TopVisible()
	if !ok || row != 1 || top != 3 {
		t.Errorf("TopVisible scrolled = (%d, %d, %v), want (1, 3, true)", row, top, ok)
	}
}
