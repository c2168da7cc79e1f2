package search

import (
	"testing"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

func textItem(text string) *models.ClipItem {
	return &models.ClipItem{ContentType: models.ContentText, ContentText: text}
}

func TestCompileRejectsBadRegex(t *testing.T) {
	_, err := Compile(models.SearchQuery{Text: "([", IsRegex: true})
	if err == nil {
		t.Fatal("Compile() accepted an invalid regex")
	}
}

func TestMatchText(t *testing.T) {
	tests := []struct {
		name     string
		query    models.SearchQuery
		item     *models.ClipItem
		expected bool
	}{
		{"empty query matches", models.SearchQuery{}, textItem("anything"), true},
		{"substring hit", models.SearchQuery{Text: "need"}, textItem("a needle here"), true},
		{"substring miss", models.SearchQuery{Text: "needle"}, textItem("haystack only"), false},
		{"case sensitive by default", models.SearchQuery{Text: "Needle"}, textItem("a needle here"), false},
		{"case insensitive", models.SearchQuery{Text: "NEEDLE", CaseInsensitive: true}, textItem("a needle here"), true},
		{"regex hit", models.SearchQuery{Text: `nee+dle`, IsRegex: true}, textItem("neeeedle"), true},
		{"regex miss", models.SearchQuery{Text: `^needle$`, IsRegex: true}, textItem("a needle here"), false},
		{"regex case fold", models.SearchQuery{Text: `NEEDLE`, IsRegex: true, CaseInsensitive: true}, textItem("needle"), true},
		{"preview searched when content absent", models.SearchQuery{Text: "pre"}, &models.ClipItem{ContentType: models.ContentText, PreviewText: "preview body"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.query)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := m.Match(tt.item); got != tt.expected {
				t.Errorf("Match() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMatchTypeFilter(t *testing.T) {
	urlClip := textItem("https://example.com/docs")
	urlSubitemClip := textItem("see my notes")
	urlSubitemClip.Subitems = []models.Subitem{{ID: 1, Tag: models.TagURL, Text: "http://example.com"}}

	tests := []struct {
		name     string
		filter   models.TypeFilter
		item     *models.ClipItem
		expected bool
	}{
		{"all passes image", models.FilterAll, &models.ClipItem{ContentType: models.ContentImage}, true},
		{"text filter passes text", models.FilterText, textItem("x"), true},
		{"text filter blocks html", models.FilterText, &models.ClipItem{ContentType: models.ContentHTML}, false},
		{"html filter", models.FilterHTML, &models.ClipItem{ContentType: models.ContentHTML}, true},
		{"url filter on sole url", models.FilterURL, urlClip, true},
		{"url filter via subitem", models.FilterURL, urlSubitemClip, true},
		{"url filter blocks plain text", models.FilterURL, textItem("no links"), false},
		{"url filter blocks images", models.FilterURL, &models.ClipItem{ContentType: models.ContentImage}, false},
		{"color filter", models.FilterColor, &models.ClipItem{ContentType: models.ContentColor}, true},
		{"image filter passes raster", models.FilterImage, &models.ClipItem{ContentType: models.ContentImage}, true},
		{"image filter passes svg", models.FilterImage, &models.ClipItem{ContentType: models.ContentSVG}, true},
		{"image filter passes drawio", models.FilterImage, &models.ClipItem{ContentType: models.ContentDrawio}, true},
		{"image filter blocks text", models.FilterImage, textItem("x"), false},
		{"vector filter passes svg", models.FilterVector, &models.ClipItem{ContentType: models.ContentSVG}, true},
		{"vector filter blocks raster", models.FilterVector, &models.ClipItem{ContentType: models.ContentImage}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(models.SearchQuery{TypeFilter: tt.filter})
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			if got := m.Match(tt.item); got != tt.expected {
				t.Errorf("Match() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMatchPinFilter(t *testing.T) {
	pinned := textItem("pinned")
	pinned.Pinned = true
	loose := textItem("loose")

	m, _ := Compile(models.SearchQuery{PinFilter: models.PinPinnedOnly})
	if !m.Match(pinned) || m.Match(loose) {
		t.Error("PinPinnedOnly should match only pinned items")
	}

	m, _ = Compile(models.SearchQuery{PinFilter: models.PinUnpinnedOnly})
	if m.Match(pinned) || !m.Match(loose) {
		t.Error("PinUnpinnedOnly should match only unpinned items")
	}

	m, _ = Compile(models.SearchQuery{PinFilter: models.PinAll})
	if !m.Match(pinned) || !m.Match(loose) {
		t.Error("PinAll should match everything")
	}
}

func TestMatchCombinesAxes(t *testing.T) {
	item := textItem("https://example.com/report")
	item.Pinned = true

	m, _ := Compile(models.SearchQuery{Text: "report", TypeFilter: models.FilterURL, PinFilter: models.PinPinnedOnly})
	if !m.Match(item) {
		t.Error("item satisfying all axes should match")
	}

	m, _ = Compile(models.SearchQuery{Text: "report", TypeFilter: models.FilterURL, PinFilter: models.PinUnpinnedOnly})
	if m.Match(item) {
		t.Error("pin axis should veto the match")
	}
}
