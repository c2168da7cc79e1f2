// Package paste assembles the clipboard payload for item activation and the
// paste-as context actions. All payloads are textual; binary content
// travels as a data URI, with any rasterizing or scaling done by the
// backend before the blob reaches the item.
package paste

import (
	"encoding/base64"
	"fmt"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/atotto/clipboard"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/utils"
)

// Mode selects which representation of an item is assembled.
type Mode string

const (
	ModeDefault     Mode = "default"
	ModePlainText   Mode = "text"
	ModeRawHTML     Mode = "raw-html"
	ModeHex         Mode = "hex"
	ModeRGB         Mode = "rgb"
	ModeHSL         Mode = "hsl"
	ModePNG         Mode = "png"
	ModeSVG         Mode = "svg"
	ModeScaledImage Mode = "scaled-image"
)

// Copier writes one payload to the system clipboard. Tests swap it for a
// recorder.
type Copier func(text string) error

// SystemCopier writes through to the real clipboard.
var SystemCopier Copier = clipboard.WriteAll

// Payload renders the clipboard text for an item in the requested mode.
func Payload(item *models.ClipItem, mode Mode) (string, error) {
	switch mode {
	case ModeDefault, "":
		return defaultPayload(item)
	case ModePlainText:
		if item.ContentType != models.ContentHTML {
			return "", fmt.Errorf("plain-text paste requires html content, got %s", item.ContentType)
		}
		return PlainText(sourceText(item))
	case ModeRawHTML:
		if item.ContentType != models.ContentHTML {
			return "", fmt.Errorf("raw-html paste requires html content, got %s", item.ContentType)
		}
		return sourceText(item), nil
	case ModeHex, ModeRGB, ModeHSL:
		return colorPayload(item, mode)
	case ModePNG, ModeScaledImage:
		if len(item.ContentBlob) == 0 {
			return "", fmt.Errorf("no rendered content for item %d", item.ID)
		}
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(item.ContentBlob), nil
	case ModeSVG:
		switch item.ContentType {
		case models.ContentSVG:
			return sourceText(item), nil
		case models.ContentDrawio:
			if len(item.ContentBlob) == 0 {
				return "", fmt.Errorf("no svg rendering for item %d", item.ID)
			}
			return string(item.ContentBlob), nil
		}
		return "", fmt.Errorf("svg paste requires vector content, got %s", item.ContentType)
	}
	return "", fmt.Errorf("unknown paste mode %q", mode)
}

// PlainText reduces html to readable text by converting it to markdown.
func PlainText(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	text, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}
	return text, nil
}

func defaultPayload(item *models.ClipItem) (string, error) {
	switch item.ContentType {
	case models.ContentText, models.ContentHTML, models.ContentColor, models.ContentSVG, models.ContentDrawio:
		return sourceText(item), nil
	case models.ContentImage:
		if len(item.ContentBlob) == 0 {
			return "", fmt.Errorf("image content for item %d not loaded", item.ID)
		}
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(item.ContentBlob), nil
	case models.ContentPlugin:
		return item.PreviewText, nil
	}
	return "", fmt.Errorf("no payload for content type %s", item.ContentType)
}

func colorPayload(item *models.ClipItem, mode Mode) (string, error) {
	if item.ContentType != models.ContentColor {
		return "", fmt.Errorf("color paste requires color content, got %s", item.ContentType)
	}
	forms, ok := utils.ParseColorForms(sourceText(item))
	if !ok {
		return "", fmt.Errorf("unparseable color %q", sourceText(item))
	}
	switch mode {
	case ModeHex:
		return forms.Hex, nil
	case ModeRGB:
		return forms.RGB, nil
	default:
		return forms.HSL, nil
	}
}

// sourceText prefers loaded content, falling back to the preview so
// activation works before a load resolves.
func sourceText(item *models.ClipItem) string {
	if item.ContentText != "" {
		return item.ContentText
	}
	return item.PreviewText
}
