package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorForms holds the three paste-as representations of a color clip.
type ColorForms struct {
	Hex string // #RRGGBB, uppercase
	RGB string // rgb(r, g, b)
	HSL string // hsl(h°, s%, l%)
}

var (
	hexDigits  = regexp.MustCompile(`^[0-9A-F]+$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,[^)]*)?\)$`)
)

// ParseColorForms interprets the textual content of a color clip. Accepted
// spellings: #RGB, #RRGGBB, #RRGGBBAA (alpha ignored), the same without the
// leading #, and rgb()/rgba() with decimal components.
func ParseColorForms(text string) (ColorForms, bool) {
	c, ok := parseColor(text)
	if !ok {
		return ColorForms{}, false
	}

	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	return ColorForms{
		Hex: strings.ToUpper(c.Hex()),
		RGB: fmt.Sprintf("rgb(%d, %d, %d)", r, g, b),
		HSL: fmt.Sprintf("hsl(%d°, %d%%, %d%%)",
			int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100))),
	}, true
}

// NormalizeHex canonicalizes a hex color literal to uppercase #RRGGBB,
// doubling 3-digit shorthand and dropping an alpha suffix.
func NormalizeHex(text string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(text))
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		var sb strings.Builder
		for _, r := range s {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		s = sb.String()
	case 6:
	case 8:
		s = s[:6]
	default:
		return "", false
	}
	if !hexDigits.MatchString(s) {
		return "", false
	}
	return "#" + s, true
}

func parseColor(text string) (colorful.Color, bool) {
	text = strings.TrimSpace(text)

	if m := rgbPattern.FindStringSubmatch(text); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return colorful.Color{}, false
		}
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
	}

	hex, ok := NormalizeHex(text)
	if !ok {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
