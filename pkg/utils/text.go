package utils

import (
	"regexp"
	"strings"
)

// MaxExtractedURLs caps how many URL subitems automatic extraction may
// produce from a single clip.
const MaxExtractedURLs = 20

var (
	urlPattern  = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"']+`)
	soleURLForm = regexp.MustCompile(`(?i)^(?:https?://|www\.)\S+$`)
)

// IsLikelyURL reports whether the whole trimmed text is a single URL. Used
// to classify text clips under the url content filter.
func IsLikelyURL(s string) bool {
	return soleURLForm.MatchString(strings.TrimSpace(s))
}

// TruncateText cuts s to at most limit runes, appending "..." when anything
// was removed.
func TruncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// CollapseWhitespace folds runs of whitespace (including newlines) into
// single spaces for one-line display.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeURL canonicalizes a matched URL: the scheme is lowercased,
// schemeless matches get http://, and a trailing slash is stripped.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "http://"):
		raw = "http://" + raw[len("http://"):]
	case strings.HasPrefix(lower, "https://"):
		raw = "https://" + raw[len("https://"):]
	default:
		raw = "http://" + raw
	}
	return strings.TrimSuffix(raw, "/")
}

// ExtractURLs finds up to MaxExtractedURLs distinct URLs in text, in order
// of appearance. Matches are normalized before deduplication, so the same
// address in different spellings counts once.
func ExtractURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?)")
		u := NormalizeURL(m)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
		if len(out) == MaxExtractedURLs {
			break
		}
	}
	return out
}
