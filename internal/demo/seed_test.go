package demo

import (
	"testing"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend"
	"github.com/clipdeck/clipdeck-terminal/pkg/backend/memory"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

func TestSeedCoversEveryContentType(t *testing.T) {
	settings := models.DefaultSettings()
	store := memory.New(settings)
	Seed(store, settings)

	items := projection(store)
	if len(items) == 0 {
		t.Fatal("expected a non-empty projection after seeding")
	}

	seen := map[models.ContentType]bool{}
	for _, it := range items {
		seen[it.ContentType] = true
	}
	// Plugin items live in the plugin group, so they are absent from the
	// all-clips projection on purpose.
	for _, ct := range []models.ContentType{
		models.ContentText,
		models.ContentHTML,
		models.ContentImage,
		models.ContentSVG,
		models.ContentDrawio,
		models.ContentColor,
	} {
		if !seen[ct] {
			t.Errorf("content type %q missing from seeded corpus", ct)
		}
	}
	if seen[models.ContentPlugin] {
		t.Error("plugin items should not appear in the all-clips projection")
	}
}

func TestSeedInstallsPluginGroup(t *testing.T) {
	settings := models.DefaultSettings()
	store := memory.New(settings)
	Seed(store, settings)

	store.Refresh()
	var groups []models.Group
	drain(store, func(ev backend.Event) {
		if gc, ok := ev.(backend.GroupsChanged); ok {
			groups = gc.Groups
		}
	})

	var plugin *models.Group
	for i := range groups {
		if groups[i].ID == DictionaryGroupID {
			plugin = &groups[i]
		}
	}
	if plugin == nil {
		t.Fatalf("plugin group %d not present in %d groups", DictionaryGroupID, len(groups))
	}
	if !plugin.IsPlugin {
		t.Error("dictionary group should be flagged as a plugin group")
	}
	if plugin.BaseColor == "" {
		t.Error("dictionary group should carry a base color")
	}
	if groups[len(groups)-1].ID != DictionaryGroupID {
		t.Errorf("plugin group should sort to the tail, strip ends with id %d", groups[len(groups)-1].ID)
	}
}

func TestSeedHonorsDemoItemCount(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Demo.Items = 60
	store := memory.New(settings)
	Seed(store, settings)

	// Two showcase clips are plugin entries outside the all-clips view.
	if got, want := len(projection(store)), 60-2; got != want {
		t.Errorf("seeded projection size = %d, want %d", got, want)
	}
}

// projection refreshes the store and returns the last ItemsReset payload.
func projection(store *memory.Store) []models.ClipItem {
	store.Refresh()
	var items []models.ClipItem
	drain(store, func(ev backend.Event) {
		if reset, ok := ev.(backend.ItemsReset); ok {
			items = reset.Items
		}
	})
	return items
}

func drain(store *memory.Store, fn func(backend.Event)) {
	for {
		select {
		case ev := <-store.Events():
			fn(ev)
		default:
			return
		}
	}
}
