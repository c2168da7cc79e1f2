package models

import (
	"fmt"
	"strings"
	"time"
)

// ContentType classifies what a clip item holds.
type ContentType string

const (
	ContentText   ContentType = "text"
	ContentHTML   ContentType = "html"
	ContentImage  ContentType = "image"
	ContentSVG    ContentType = "svg"
	ContentDrawio ContentType = "drawio"
	ContentColor  ContentType = "color"
	ContentPlugin ContentType = "plugin"
)

// Render modes for plugin-supplied content.
const (
	RenderModeRich = "rich"
	RenderModeWeb  = "web"
)

// LabelLimit is the maximum number of characters a list label may carry
// before it gets truncated with an ellipsis.
const LabelLimit = 160

// ClipItem is one clipboard-history entry as projected to the UI. Identity
// is the backend-assigned ID; it is stable and never reused while the item
// exists. ContentText/ContentBlob may be absent until a content load
// resolves, in which case PreviewText stands in.
type ClipItem struct {
	ID           int
	ContentType  ContentType
	ContentText  string
	ContentBlob  []byte
	PreviewText  string
	Length       int
	Pinned       bool
	BaseColor    string
	GroupID      int
	PluginID     string
	RenderMode   string
	ExtraActions []ActionEntry
	Subitems     []Subitem

	CreatedAt  time.Time
	LastUsedAt time.Time

	HasFullContent bool
	ImageWidth     int
	ImageHeight    int
}

// Subitem is a derived child entry attached to a clip item: an AI operation
// result, an extracted URL or file path, or a user note.
type Subitem struct {
	ID   int
	Tag  string
	Text string
}

// FromPlugin reports whether the item was supplied by a plugin rather than
// captured from the clipboard. Plugin items render themselves and suppress
// the built-in context actions.
func (c *ClipItem) FromPlugin() bool {
	return c.PluginID != ""
}

// TextBearing reports whether the item's primary content is textual.
func (c *ClipItem) TextBearing() bool {
	switch c.ContentType {
	case ContentText, ContentHTML, ContentColor:
		return true
	}
	return false
}

// Label returns the single-line list label for the item. Text-bearing types
// collapse newlines and truncate; binary types get a bracketed marker.
func (c *ClipItem) Label() string {
	switch c.ContentType {
	case ContentText:
		return textLabel(c.labelSource())
	case ContentHTML:
		return "[HTML] " + textLabel(c.labelSource())
	case ContentImage:
		if c.ImageWidth > 0 && c.ImageHeight > 0 {
			return fmt.Sprintf("[IMG] %dx%d", c.ImageWidth, c.ImageHeight)
		}
		return "[IMG]"
	case ContentSVG:
		return "[SVG]"
	case ContentDrawio:
		return "[DRAWIO]"
	case ContentColor:
		return "[COLOR] " + textLabel(c.labelSource())
	case ContentPlugin:
		return textLabel(c.PreviewText)
	}
	return textLabel(c.labelSource())
}

// labelSource prefers the full text when present, the preview otherwise.
func (c *ClipItem) labelSource() string {
	if c.ContentText != "" {
		return c.ContentText
	}
	return c.PreviewText
}

// Subitem lookup helpers used by promotion and operation-result replacement.

// SubitemByID returns the subitem with the given id, or nil.
func (c *ClipItem) SubitemByID(id int) *Subitem {
	for i := range c.Subitems {
		if c.Subitems[i].ID == id {
			return &c.Subitems[i]
		}
	}
	return nil
}

// SubitemIndexByTag returns the index of the first subitem carrying tag,
// or -1 when none does.
func (c *ClipItem) SubitemIndexByTag(tag string) int {
	for i := range c.Subitems {
		if c.Subitems[i].Tag == tag {
			return i
		}
	}
	return -1
}

func textLabel(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return "[Empty]"
	}
	runes := []rune(s)
	if len(runes) > LabelLimit {
		return string(runes[:LabelLimit]) + "..."
	}
	return s
}
