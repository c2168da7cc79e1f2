package models

import (
	"hash/fnv"
	"strings"
)

// Well-known subitem tags. Operation results carry the tag of the operation
// that produced them; extraction and notes use the fixed tags below.
const (
	TagURL  = "url"
	TagFile = "file"
	TagNote = "note"
)

// tagPalette provides badge colors with enough contrast on both light and
// dark backgrounds.
var tagPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#8e44ad", // dark purple
	"#f1c40f", // yellow
	"#27ae60", // nephritis
	"#2980b9", // belize hole
}

// TagColor returns a stable badge color for a subitem tag. The same tag
// always hashes to the same palette entry.
func TagColor(tag string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(tag)))
	return tagPalette[int(h.Sum32())%len(tagPalette)]
}
