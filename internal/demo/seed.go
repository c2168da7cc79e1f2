// Package demo seeds a memory backend with a representative clip corpus so
// the TUI can be exercised without a capture daemon. Every content type,
// group kind, and subitem tag appears at least once.
package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend/memory"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

// DictionaryGroupID is the demo plugin group. Plugin group ids sit at or
// below models.PluginGroupIDCeiling.
const DictionaryGroupID = models.PluginGroupIDCeiling

// onePixelPNG is a valid 1x1 transparent PNG, standing in for captured
// image bytes. Demo entries claim capture-time dimensions independently of
// the placeholder payload.
var onePixelPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4,
	0x89, 0x00, 0x00, 0x00, 0x0d, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae,
	0x42, 0x60, 0x82,
}

const meetingNotes = `Sync with the platform team, Tuesday 10:00

Agenda:
- Review the capture daemon backlog and the staging rollout plan
- Decide on the retention window for unpinned history entries
- Walk through the group migration script before it runs in production

Notes:
The daemon currently batches captures every 200ms which is fine for text
but drops rapid image sequences. Proposal on the table is a per-type queue
with images flushed immediately. Storage impact was estimated at roughly
40MB per day for a heavy user, which is acceptable.

Action items:
- Draft the per-type queue design and circulate it before Thursday
- Extend the migration script dry-run mode to print reassigned counts
- File the retention decision once legal confirms the 90 day window
`

const invoiceHTML = `<h2>Invoice #4821</h2>
<p>Billing period: <strong>July 2026</strong></p>
<table>
<tr><th>Item</th><th>Qty</th><th>Price</th></tr>
<tr><td>Workspace seats</td><td>12</td><td>$144.00</td></tr>
<tr><td>Storage add-on</td><td>2</td><td>$18.00</td></tr>
</table>
<p>Total due: <em>$162.00</em> by <a href="https://billing.example.com/4821">August 15</a></p>`

const gopherSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="128" height="96" viewBox="0 0 128 96">
  <rect x="8" y="8" width="112" height="80" rx="12" fill="#7aa2f7"/>
  <circle cx="48" cy="40" r="10" fill="#1a1b26"/>
  <circle cx="80" cy="40" r="10" fill="#1a1b26"/>
  <path d="M44 64 Q64 76 84 64" stroke="#1a1b26" stroke-width="4" fill="none"/>
</svg>`

const pipelineDiagram = `<mxfile host="app.diagrams.net"><diagram name="capture-pipeline">
<mxGraphModel><root>
<mxCell id="0"/><mxCell id="1" parent="0"/>
<mxCell id="cap" value="capture" style="rounded=1" vertex="1" parent="1"><mxGeometry x="40" y="40" width="120" height="40" as="geometry"/></mxCell>
<mxCell id="cls" value="classify" style="rounded=1" vertex="1" parent="1"><mxGeometry x="220" y="40" width="120" height="40" as="geometry"/></mxCell>
<mxCell id="sto" value="store" style="rounded=1" vertex="1" parent="1"><mxGeometry x="400" y="40" width="120" height="40" as="geometry"/></mxCell>
<mxCell id="e1" edge="1" parent="1" source="cap" target="cls"/>
<mxCell id="e2" edge="1" parent="1" source="cls" target="sto"/>
</root></mxGraphModel></diagram></mxfile>`

const pipelineDiagramSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="560" height="120">
  <rect x="40" y="40" width="120" height="40" rx="6" fill="#9ece6a"/>
  <rect x="220" y="40" width="120" height="40" rx="6" fill="#9ece6a"/>
  <rect x="400" y="40" width="120" height="40" rx="6" fill="#9ece6a"/>
  <text x="100" y="65" text-anchor="middle">capture</text>
  <text x="280" y="65" text-anchor="middle">classify</text>
  <text x="460" y="65" text-anchor="middle">store</text>
  <line x1="160" y1="60" x2="220" y2="60" stroke="#1a1b26"/>
  <line x1="340" y1="60" x2="400" y2="60" stroke="#1a1b26"/>
</svg>`

// Seed populates the store with the demo groups and clips. The settings'
// demo item count pads the corpus with filler text clips on top of the
// showcase entries so scrolling behavior has something to chew on.
func Seed(store *memory.Store, settings *models.Settings) {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	seedGroups(store)
	seeded := seedShowcase(store)
	seedFiller(store, settings.Demo.Items-seeded)
}

func seedGroups(store *memory.Store) {
	store.SeedGroup(models.Group{ID: 1, Name: "Work"})
	store.SeedGroup(models.Group{ID: 2, Name: "Snippets"})
	store.SeedGroup(models.Group{ID: 3, Name: "Links"})
	store.SeedGroup(models.Group{
		ID:        DictionaryGroupID,
		Name:      "Dictionary",
		IsPlugin:  true,
		BaseColor: "#7aa2f7",
	})
}

// seedShowcase installs one of everything and returns how many clips it
// added. Order matters only in that stores list newest first, so the last
// seeded clip renders at the top.
func seedShowcase(store *memory.Store) int {
	now := time.Now()
	age := func(minutes int) time.Time { return now.Add(-time.Duration(minutes) * time.Minute) }

	clips := []models.ClipItem{
		// Plugin entries live in their own tail group and bring their own
		// context actions, separators included, to exercise normalization.
		{
			ContentType: models.ContentPlugin,
			PreviewText: "ephemeral (adj.) lasting for a very short time",
			GroupID:     DictionaryGroupID,
			PluginID:    "dictionary",
			BaseColor:   "#7aa2f7",
			CreatedAt:   age(400),
			ExtraActions: []models.ActionEntry{
				{ID: "define", Label: "Look up full definition"},
				{Separator: true},
				{Separator: true},
				{ID: "synonyms", Label: "Show synonyms"},
				{Separator: true},
			},
		},
		{
			ContentType: models.ContentPlugin,
			PreviewText: "idempotent (adj.) unchanged in value when applied twice",
			GroupID:     DictionaryGroupID,
			PluginID:    "dictionary",
			BaseColor:   "#7aa2f7",
			CreatedAt:   age(380),
			ExtraActions: []models.ActionEntry{
				{ID: "define", Label: "Look up full definition"},
			},
		},

		{
			ContentType: models.ContentText,
			ContentText: "kubectl rollout restart deployment/capture-daemon -n clipdeck",
			GroupID:     2,
			Pinned:      true,
			CreatedAt:   age(360),
		},
		{
			ContentType: models.ContentText,
			ContentText: `func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic("missing env: " + key)
	}
	return v
}`,
			GroupID:   2,
			CreatedAt: age(340),
		},
		{
			ContentType: models.ContentText,
			ContentText: "Release notes draft: https://github.com/clipdeck/clipdeck-terminal/releases and the staging dashboard at https://staging.example.com/deploys",
			GroupID:     3,
			CreatedAt:   age(320),
		},
		{
			ContentType: models.ContentText,
			ContentText: "www.terminalcolors.dev/palettes/tokyo-night",
			GroupID:     3,
			CreatedAt:   age(300),
		},

		{
			ContentType: models.ContentText,
			ContentText: meetingNotes + strings.Repeat("\nFollow-up thread item with enough trailing context to overflow the preview window.", 12),
			GroupID:     1,
			CreatedAt:   age(280),
			Subitems: []models.Subitem{
				{Tag: models.TagNote, Text: "Circulated to the platform channel"},
			},
		},
		{
			ContentType: models.ContentHTML,
			ContentText: invoiceHTML,
			GroupID:     1,
			CreatedAt:   age(240),
		},

		{
			ContentType: models.ContentImage,
			ContentBlob: onePixelPNG,
			ImageWidth:  1280,
			ImageHeight: 800,
			GroupID:     1,
			CreatedAt:   age(200),
		},
		{
			ContentType: models.ContentImage,
			ContentBlob: onePixelPNG,
			ImageWidth:  640,
			ImageHeight: 640,
			Pinned:      true,
			GroupID:     0,
			CreatedAt:   age(180),
		},
		{
			ContentType: models.ContentSVG,
			ContentText: gopherSVG,
			ImageWidth:  128,
			ImageHeight: 96,
			GroupID:     2,
			CreatedAt:   age(160),
		},
		{
			ContentType: models.ContentDrawio,
			ContentText: pipelineDiagram,
			ContentBlob: []byte(pipelineDiagramSVG),
			ImageWidth:  560,
			ImageHeight: 120,
			GroupID:     1,
			CreatedAt:   age(140),
		},

		{
			ContentType: models.ContentColor,
			ContentText: "#FF8800",
			GroupID:     2,
			CreatedAt:   age(120),
		},
		{
			ContentType: models.ContentColor,
			ContentText: "rgb(122, 162, 247)",
			GroupID:     2,
			CreatedAt:   age(100),
		},
		{
			ContentType: models.ContentColor,
			ContentText: "#1a1",
			Pinned:      true,
			GroupID:     2,
			CreatedAt:   age(90),
		},

		{
			ContentType: models.ContentText,
			ContentText: "Ship checklist: bump version, tag, push, watch the release workflow, then announce in #releases.",
			GroupID:     0,
			CreatedAt:   age(30),
		},
	}

	for _, c := range clips {
		store.SeedClip(c)
	}
	return len(clips)
}

// seedFiller pads the corpus with plain text clips so virtualized
// scrolling and anchoring have realistic depth.
func seedFiller(store *memory.Store, n int) {
	snippets := []string{
		"grep -rn \"TODO\" --include='*.go' .",
		"The retention sweep runs nightly at 03:15 UTC.",
		"ssh deploy@bastion.example.com -p 2222",
		"Remember to rotate the staging credentials before Friday.",
		"docker compose logs -f --tail=100 capture",
		"Pairing notes: the flaky test was a timezone assumption, not a race.",
	}
	for i := 0; i < n; i++ {
		store.SeedClip(models.ClipItem{
			ContentType: models.ContentText,
			ContentText: fmt.Sprintf("%s (history entry %d)", snippets[i%len(snippets)], i+1),
			GroupID:     (i % 4), // spread across Default and the user groups
			CreatedAt:   time.Now().Add(-time.Duration(500+i*7) * time.Minute),
		})
	}
}
