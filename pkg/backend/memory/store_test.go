package memory

import (
	"strings"
	"testing"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

func newTestStore() *Store {
	s := New(models.DefaultSettings())
	s.SetCopier(func(string) error { return nil })
	return s
}

// drain empties the event channel. Commands emit synchronously, so after a
// command returns its events are all buffered.
func drain(s *Store) []backend.Event {
	var evs []backend.Event
	for {
		select {
		case ev := <-s.Events():
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func statuses(evs []backend.Event) []string {
	var out []string
	for _, ev := range evs {
		if sm, ok := ev.(backend.StatusMessage); ok {
			out = append(out, sm.Text)
		}
	}
	return out
}

func lastReset(evs []backend.Event) (backend.ItemsReset, bool) {
	var reset backend.ItemsReset
	found := false
	for _, ev := range evs {
		if r, ok := ev.(backend.ItemsReset); ok {
			reset = r
			found = true
		}
	}
	return reset, found
}

func firstAdded(evs []backend.Event) (backend.ItemAdded, bool) {
	for _, ev := range evs {
		if a, ok := ev.(backend.ItemAdded); ok {
			return a, true
		}
	}
	return backend.ItemAdded{}, false
}

func seedStrip(s *Store) {
	s.SeedGroup(models.Group{ID: 1, Name: "Work"})
	s.SeedGroup(models.Group{ID: 2, Name: "Snippets"})
	s.SeedGroup(models.Group{ID: 3, Name: "Links"})
}

func TestAddClipAnnouncesAtTop(t *testing.T) {
	s := newTestStore()
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "older"})

	s.AddClip(models.ClipItem{ContentType: models.ContentText, ContentText: "newest"})

	added, ok := firstAdded(drain(s))
	if !ok {
		t.Fatal("no ItemAdded event")
	}
	if added.Row != 0 {
		t.Errorf("inserted row = %d, want 0", added.Row)
	}
	if added.Item.ContentText != "newest" {
		t.Errorf("announced item = %q, want the new clip", added.Item.ContentText)
	}
}

func TestAddClipSuppressedByActiveFilter(t *testing.T) {
	s := newTestStore()
	s.SetSearch(models.SearchQuery{PinFilter: models.PinPinnedOnly})
	drain(s)

	s.AddClip(models.ClipItem{ContentType: models.ContentText, ContentText: "unpinned capture"})

	if _, ok := firstAdded(drain(s)); ok {
		t.Error("ItemAdded emitted for a clip the active filter excludes")
	}
}

func TestAddClipLandsInDestinationGroup(t *testing.T) {
	s := newTestStore()
	seedStrip(s)
	s.SetDestinationGroup(2)
	drain(s)

	id := s.AddClip(models.ClipItem{ContentType: models.ContentText, ContentText: "captured"})

	s.SelectGroup(2)
	reset, _ := lastReset(drain(s))
	if len(reset.Items) != 1 || reset.Items[0].ID != id {
		t.Errorf("destination group projection = %v, want the captured clip", reset.Items)
	}
}

func TestSetSearchFiltersProjection(t *testing.T) {
	s := newTestStore()
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "alpha needle"})
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "bravo"})
	s.SeedClip(models.ClipItem{ContentType: models.ContentColor, ContentText: "#FF8800"})

	s.SetSearch(models.SearchQuery{Text: "needle"})

	reset, ok := lastReset(drain(s))
	if !ok {
		t.Fatal("no ItemsReset after SetSearch")
	}
	if len(reset.Items) != 1 || !strings.Contains(reset.Items[0].ContentText, "needle") {
		t.Errorf("projection = %v, want only the needle clip", reset.Items)
	}
}

func TestSetSearchEmptyQueryStillResets(t *testing.T) {
	s := newTestStore()
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "kept"})
	s.SetSearch(models.SearchQuery{Text: "kept"})
	drain(s)

	s.SetSearch(models.SearchQuery{})

	reset, ok := lastReset(drain(s))
	if !ok {
		t.Fatal("clearing filters must dispatch an explicit reset")
	}
	if len(reset.Items) != 1 {
		t.Errorf("unfiltered projection has %d items, want 1", len(reset.Items))
	}
}

func TestSetSearchInvalidRegex(t *testing.T) {
	s := newTestStore()
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "anything"})

	s.SetSearch(models.SearchQuery{Text: "([", IsRegex: true})

	evs := drain(s)
	msgs := statuses(evs)
	if len(msgs) != 1 || msgs[0] != "Invalid search pattern." {
		t.Errorf("statuses = %v, want invalid-pattern message", msgs)
	}
	reset, ok := lastReset(evs)
	if !ok || len(reset.Items) != 0 {
		t.Errorf("projection after invalid pattern = %v, want empty", reset.Items)
	}
}

func TestReorderGroups(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantOrder []string
	}{
		{"valid move right", 2, 4, []string{"All", "Default", "Snippets", "Links", "Work"}},
		{"valid move left", 4, 2, []string{"All", "Default", "Links", "Work", "Snippets"}},
		{"into reserved clamp zone", 2, 1, nil},
		{"from reserved", 0, 3, nil},
		{"same index", 3, 3, nil},
		{"out of bounds", 2, 9, nil},
		{"negative", -1, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			seedStrip(s)

			s.ReorderGroups(tt.from, tt.to)

			evs := drain(s)
			if tt.wantOrder == nil {
				if len(evs) != 0 {
					t.Fatalf("expected silent no-op, got events %v", evs)
				}
				return
			}
			var gc backend.GroupsChanged
			ok := false
			for _, ev := range evs {
				if g, isGC := ev.(backend.GroupsChanged); isGC {
					gc, ok = g, true
				}
			}
			if !ok {
				t.Fatal("no GroupsChanged event")
			}
			for i, want := range tt.wantOrder {
				if gc.Groups[i].Name != want {
					t.Errorf("group[%d] = %s, want %s", i, gc.Groups[i].Name, want)
				}
			}
		})
	}
}

func TestDeleteGroupDefaultRefused(t *testing.T) {
	s := newTestStore()

	s.DeleteGroup(models.DefaultGroupID)

	msgs := statuses(drain(s))
	if len(msgs) != 1 || msgs[0] != "Default group cannot be deleted." {
		t.Errorf("statuses = %v, want the refusal message", msgs)
	}
	if g := s.groupLocked(models.DefaultGroupID); g == nil {
		t.Error("default group was deleted")
	}
}

func TestDeleteGroupReassignsItems(t *testing.T) {
	s := newTestStore()
	seedStrip(s)
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "homeless soon", GroupID: 2})
	s.SelectGroup(2)
	drain(s)

	s.DeleteGroup(2)

	evs := drain(s)
	var current *backend.CurrentGroupChanged
	for _, ev := range evs {
		if c, ok := ev.(backend.CurrentGroupChanged); ok {
			current = &c
		}
	}
	if current == nil || current.GroupID != models.AllClipsGroupID {
		t.Errorf("current group after deleting the selected group = %v, want all-clips", current)
	}
	it := s.itemLocked(id)
	if it == nil || it.GroupID != models.DefaultGroupID {
		t.Errorf("orphaned item group = %v, want default", it)
	}
}

func TestLoadItemContentExactlyOnce(t *testing.T) {
	s := newTestStore()
	long := strings.Repeat("x", models.DefaultSettings().UI.PreviewTextLimit+50)
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: long})

	if it := s.itemLocked(id); it.HasFullContent || it.ContentText != "" {
		t.Fatal("long clip should stage its content behind a preview")
	}

	s.LoadItemContent(id)
	evs := drain(s)
	var changed *backend.ItemChanged
	for _, ev := range evs {
		if c, ok := ev.(backend.ItemChanged); ok {
			changed = &c
		}
	}
	if changed == nil {
		t.Fatal("no ItemChanged after load")
	}
	if !changed.Item.HasFullContent || changed.Item.ContentText != long {
		t.Error("loaded item should carry full content")
	}

	s.LoadItemContent(id)
	if evs := drain(s); len(evs) != 0 {
		t.Errorf("second load emitted %v, want nothing", evs)
	}
}

func TestTogglePinFallsOutOfFilteredProjection(t *testing.T) {
	s := newTestStore()
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "loose"})
	s.SetSearch(models.SearchQuery{PinFilter: models.PinUnpinnedOnly})
	drain(s)

	s.TogglePin(id)

	evs := drain(s)
	if _, ok := lastReset(evs); !ok {
		t.Error("pinning an item out of the projection should reset, not patch")
	}
	for _, ev := range evs {
		if _, ok := ev.(backend.ItemChanged); ok {
			t.Error("ItemChanged emitted for an item leaving the projection")
		}
	}
}

func TestMoveTargetsForItem(t *testing.T) {
	s := newTestStore()
	seedStrip(s)
	s.SeedGroup(models.Group{ID: models.PluginGroupIDCeiling, Name: "Dictionary", IsPlugin: true})
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "x", GroupID: 2})

	targets := s.MoveTargetsForItem(id)

	names := make([]string, len(targets))
	for i, tg := range targets {
		names[i] = tg.Name
	}
	want := []string{"Default", "Work", "Snippets", "Links"}
	if len(names) != len(want) {
		t.Fatalf("targets = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("target[%d] = %s, want %s", i, names[i], want[i])
		}
	}
	for _, tg := range targets {
		if tg.ID == 2 {
			if !tg.IsCurrent || len(tg.Tags) != 1 || tg.Tags[0] != models.MoveTargetTagCurrent {
				t.Errorf("current group target not tagged: %+v", tg)
			}
		} else if tg.IsCurrent {
			t.Errorf("non-current target tagged current: %+v", tg)
		}
	}

	if got := s.MoveTargetsForItem(9999); got != nil {
		t.Errorf("stale item targets = %v, want nil", got)
	}
}

func TestPromoteSubitem(t *testing.T) {
	s := newTestStore()
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "parent"})
	s.AddNoteSubitem(id, "promote me")
	drain(s)

	s.PromoteSubitem(id, "promote me")

	evs := drain(s)
	added, ok := firstAdded(evs)
	if !ok {
		t.Fatal("promotion should announce the new clip")
	}
	if added.Item.ContentText != "promote me" || added.Item.ContentType != models.ContentText {
		t.Errorf("promoted clip = %+v", added.Item)
	}
	parent := s.itemLocked(id)
	if len(parent.Subitems) != 0 {
		t.Errorf("subitem not removed after promotion: %v", parent.Subitems)
	}
}

func TestDeleteSubitem(t *testing.T) {
	s := newTestStore()
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "parent"})
	s.AddNoteSubitem(id, "first")
	s.AddNoteSubitem(id, "second")
	drain(s)

	subID := s.itemLocked(id).Subitems[0].ID
	s.DeleteSubitem(id, subID)

	parent := s.itemLocked(id)
	if len(parent.Subitems) != 1 || parent.Subitems[0].Text != "second" {
		t.Errorf("subitems after delete = %v", parent.Subitems)
	}
}

func TestActivateItemCopies(t *testing.T) {
	s := newTestStore()
	var copied string
	s.SetCopier(func(text string) error { copied = text; return nil })
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "payload"})

	s.ActivateItem(id, false)

	if copied != "payload" {
		t.Errorf("copied = %q, want item text", copied)
	}
	msgs := statuses(drain(s))
	if len(msgs) != 1 || msgs[0] != "Copied to clipboard." {
		t.Errorf("statuses = %v", msgs)
	}
	if s.itemLocked(id).LastUsedAt.IsZero() {
		t.Error("activation should bump LastUsedAt")
	}
}

func TestPasteAsColorForm(t *testing.T) {
	s := newTestStore()
	var copied string
	s.SetCopier(func(text string) error { copied = text; return nil })
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentColor, ContentText: "#ff8800"})

	s.PasteAs(id, "rgb")

	if copied != "rgb(255, 136, 0)" {
		t.Errorf("copied = %q, want rgb form", copied)
	}
	msgs := statuses(drain(s))
	if len(msgs) != 1 || msgs[0] != "Pasted." {
		t.Errorf("statuses = %v", msgs)
	}
}

func TestURLExtractionOnInsert(t *testing.T) {
	s := newTestStore()
	id := s.SeedClip(models.ClipItem{
		ContentType: models.ContentText,
		ContentText: "read https://example.com/a and https://example.com/a plus www.other.org",
	})

	it := s.itemLocked(id)
	var urls []string
	for _, sub := range it.Subitems {
		if sub.Tag == models.TagURL {
			urls = append(urls, sub.Text)
		}
	}
	want := []string{"https://example.com/a", "http://www.other.org"}
	if len(urls) != len(want) {
		t.Fatalf("url subitems = %v, want %v", urls, want)
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("url[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}

func TestColorClipGetsBaseColor(t *testing.T) {
	s := newTestStore()
	id := s.SeedClip(models.ClipItem{ContentType: models.ContentColor, ContentText: "rgb(255, 136, 0)"})

	if got := s.itemLocked(id).BaseColor; got != "#FF8800" {
		t.Errorf("BaseColor = %q, want normalized hex", got)
	}
}

func TestSelectGroupProjectsOnlyItsItems(t *testing.T) {
	s := newTestStore()
	seedStrip(s)
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "in work", GroupID: 1})
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "in links", GroupID: 3})

	s.SelectGroup(1)

	reset, ok := lastReset(drain(s))
	if !ok {
		t.Fatal("no ItemsReset after SelectGroup")
	}
	if len(reset.Items) != 1 || reset.Items[0].ContentText != "in work" {
		t.Errorf("projection = %v, want only the Work clip", reset.Items)
	}
}

func TestPluginItemsExcludedFromAllClips(t *testing.T) {
	s := newTestStore()
	s.SeedGroup(models.Group{ID: models.PluginGroupIDCeiling, Name: "Dictionary", IsPlugin: true})
	s.SeedClip(models.ClipItem{ContentType: models.ContentText, ContentText: "ordinary"})
	s.SeedClip(models.ClipItem{
		ContentType: models.ContentPlugin,
		PreviewText: "lexeme",
		PluginID:    "dictionary",
		GroupID:     models.PluginGroupIDCeiling,
	})

	s.Refresh()
	reset, _ := lastReset(drain(s))
	if len(reset.Items) != 1 || reset.Items[0].ContentText != "ordinary" {
		t.Errorf("all-clips projection = %v, want plugin items hidden", reset.Items)
	}

	s.SelectGroup(models.PluginGroupIDCeiling)
	reset, _ = lastReset(drain(s))
	if len(reset.Items) != 1 || reset.Items[0].PreviewText != "lexeme" {
		t.Errorf("plugin group projection = %v, want the plugin item", reset.Items)
	}
}
