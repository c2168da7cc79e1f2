// Package testhelpers provides builders and assertions shared by the tui
// package tests.
package testhelpers

import (
	"fmt"
	"time"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// MakeTextClip creates a single-line text clip for testing
func MakeTextClip(id int, text string) models.ClipItem {
	return models.ClipItem{
		ID:             id,
		ContentType:    models.ContentText,
		ContentText:    text,
		Length:         len([]rune(text)),
		HasFullContent: true,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// MakeTextClips creates n single-line text clips with ids 1..n
func MakeTextClips(n int) []models.ClipItem {
	items := make([]models.ClipItem, n)
	for i := range items {
		items[i] = MakeTextClip(i+1, fmt.Sprintf("clip %d", i+1))
	}
	return items
}

// MakeLongTextClip creates a staged text clip whose full content is still
// held by the backend
func MakeLongTextClip(id int) models.ClipItem {
	return models.ClipItem{
		ID:             id,
		ContentType:    models.ContentText,
		PreviewText:    "preview of a much longer text",
		Length:         5000,
		HasFullContent: false,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// MakeColorClip creates a color clip from a literal like "#FF8800"
func MakeColorClip(id int, literal string) models.ClipItem {
	return models.ClipItem{
		ID:             id,
		ContentType:    models.ContentColor,
		ContentText:    literal,
		HasFullContent: true,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// MakeImageClip creates an image clip with claimed dimensions
func MakeImageClip(id, width, height int) models.ClipItem {
	return models.ClipItem{
		ID:             id,
		ContentType:    models.ContentImage,
		ImageWidth:     width,
		ImageHeight:    height,
		HasFullContent: true,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// MakeHTMLClip creates an html clip
func MakeHTMLClip(id int, html string) models.ClipItem {
	return models.ClipItem{
		ID:             id,
		ContentType:    models.ContentHTML,
		ContentText:    html,
		Length:         len([]rune(html)),
		HasFullContent: true,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// MakePluginClip creates a plugin-sourced clip with declared actions
func MakePluginClip(id int, pluginID string, actions ...models.ActionEntry) models.ClipItem {
	return models.ClipItem{
		ID:           id,
		ContentType:  models.ContentPlugin,
		PreviewText:  "plugin entry",
		PluginID:     pluginID,
		ExtraActions: actions,
		CreatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// MakeStripGroups creates the standard test strip: two reserved groups,
// three user groups, optionally a trailing plugin group
func MakeStripGroups(withPlugin bool) []models.Group {
	groups := []models.Group{
		{ID: models.AllClipsGroupID, Name: "All", IsSpecial: true},
		{ID: models.DefaultGroupID, Name: "Default", IsSpecial: true},
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "Snippets"},
		{ID: 3, Name: "Links"},
	}
	if withPlugin {
		groups = append(groups, models.Group{
			ID: models.PluginGroupIDCeiling, Name: "Dict", IsPlugin: true, BaseColor: "#7aa2f7",
		})
	}
	return groups
}

// MakeMoveTargets creates move targets matching the standard strip
func MakeMoveTargets(currentGroupID int) []models.MoveTarget {
	targets := []models.MoveTarget{
		{ID: models.DefaultGroupID, Name: "Default", IsSpecial: true},
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "Snippets"},
		{ID: 3, Name: "Links"},
	}
	for i := range targets {
		if targets[i].ID == currentGroupID {
			targets[i].IsCurrent = true
			targets[i].Tags = []string{models.MoveTargetTagCurrent}
		}
	}
	return targets
}
