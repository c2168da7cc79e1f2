package models

import (
	"strings"
	"testing"
)

func TestClipItemLabel(t *testing.T) {
	tests := []struct {
		name     string
		item     ClipItem
		expected string
	}{
		{"plain text", ClipItem{ContentType: ContentText, ContentText: "hello world"}, "hello world"},
		{"newlines collapsed", ClipItem{ContentType: ContentText, ContentText: "line one\nline two"}, "line one line two"},
		{"empty text", ClipItem{ContentType: ContentText, ContentText: "   \n "}, "[Empty]"},
		{"preview fallback", ClipItem{ContentType: ContentText, PreviewText: "from preview"}, "from preview"},
		{"html prefix", ClipItem{ContentType: ContentHTML, ContentText: "bold move"}, "[HTML] bold move"},
		{"image with dimensions", ClipItem{ContentType: ContentImage, ImageWidth: 640, ImageHeight: 480}, "[IMG] 640x480"},
		{"image without dimensions", ClipItem{ContentType: ContentImage}, "[IMG]"},
		{"svg", ClipItem{ContentType: ContentSVG}, "[SVG]"},
		{"drawio", ClipItem{ContentType: ContentDrawio}, "[DRAWIO]"},
		{"color", ClipItem{ContentType: ContentColor, ContentText: "#FF8800"}, "[COLOR] #FF8800"},
		{"plugin uses preview", ClipItem{ContentType: ContentPlugin, PluginID: "dictionary", PreviewText: "lexeme"}, "lexeme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClipItemLabelTruncation(t *testing.T) {
	long := strings.Repeat("a", LabelLimit+40)
	item := ClipItem{ContentType: ContentText, ContentText: long}

	got := item.Label()
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Label() = %q, want ellipsis suffix", got)
	}
	if want := LabelLimit + 3; len([]rune(got)) != want {
		t.Errorf("Label() length = %d, want %d", len([]rune(got)), want)
	}

	exact := ClipItem{ContentType: ContentText, ContentText: strings.Repeat("b", LabelLimit)}
	if got := exact.Label(); strings.HasSuffix(got, "...") {
		t.Errorf("Label() at the limit should not truncate, got %q", got)
	}
}

func TestFromPlugin(t *testing.T) {
	captured := ClipItem{ContentType: ContentText}
	if captured.FromPlugin() {
		t.Error("captured item reported as plugin-sourced")
	}
	plugin := ClipItem{ContentType: ContentPlugin, PluginID: "calculator"}
	if !plugin.FromPlugin() {
		t.Error("plugin item not reported as plugin-sourced")
	}
}

func TestSubitemLookup(t *testing.T) {
	item := ClipItem{
		Subitems: []Subitem{
			{ID: 1, Tag: TagURL, Text: "http://example.com"},
			{ID: 2, Tag: "translate", Text: "hola"},
			{ID: 3, Tag: TagNote, Text: "remember this"},
		},
	}

	if got := item.SubitemByID(2); got == nil || got.Text != "hola" {
		t.Errorf("SubitemByID(2) = %v, want translate subitem", got)
	}
	if got := item.SubitemByID(99); got != nil {
		t.Errorf("SubitemByID(99) = %v, want nil", got)
	}
	if got := item.SubitemIndexByTag("translate"); got != 1 {
		t.Errorf("SubitemIndexByTag(translate) = %d, want 1", got)
	}
	if got := item.SubitemIndexByTag("ocr"); got != -1 {
		t.Errorf("SubitemIndexByTag(ocr) = %d, want -1", got)
	}
}
