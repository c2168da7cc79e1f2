// Package search compiles filter state into a predicate over clip items.
// The backend applies one matcher to its item set whenever the active
// query changes; the UI never filters locally.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/utils"
)

// Matcher is one compiled SearchQuery. A matcher is immutable; a new query
// compiles a new matcher.
type Matcher struct {
	query  models.SearchQuery
	re     *regexp.Regexp
	needle string
	never  bool
}

// Never returns a matcher that rejects everything. Applied when a query
// fails to compile, so the list visibly empties instead of silently keeping
// the previous filter.
func Never(q models.SearchQuery) *Matcher {
	return &Matcher{query: q, never: true}
}

// Compile validates the query and prepares its text predicate. An invalid
// regex pattern is the only failure mode.
func Compile(q models.SearchQuery) (*Matcher, error) {
	m := &Matcher{query: q}
	if q.Text == "" {
		return m, nil
	}

	if q.IsRegex {
		pattern := q.Text
		if q.CaseInsensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid search pattern: %w", err)
		}
		m.re = re
		return m, nil
	}

	m.needle = q.Text
	if q.CaseInsensitive {
		m.needle = strings.ToLower(q.Text)
	}
	return m, nil
}

// Query returns the query the matcher was compiled from.
func (m *Matcher) Query() models.SearchQuery {
	return m.query
}

// Match reports whether the item passes all three filter axes: pin state,
// content type, and text.
func (m *Matcher) Match(item *models.ClipItem) bool {
	if m.never {
		return false
	}
	return m.matchPin(item) && m.matchType(item) && m.matchText(item)
}

func (m *Matcher) matchPin(item *models.ClipItem) bool {
	switch m.query.PinFilter {
	case models.PinPinnedOnly:
		return item.Pinned
	case models.PinUnpinnedOnly:
		return !item.Pinned
	}
	return true
}

func (m *Matcher) matchType(item *models.ClipItem) bool {
	switch m.query.TypeFilter {
	case models.FilterAll:
		return true
	case models.FilterText:
		return item.ContentType == models.ContentText
	case models.FilterHTML:
		return item.ContentType == models.ContentHTML
	case models.FilterURL:
		if item.ContentType != models.ContentText {
			return false
		}
		if utils.IsLikelyURL(searchableText(item)) {
			return true
		}
		return item.SubitemIndexByTag(models.TagURL) >= 0
	case models.FilterColor:
		return item.ContentType == models.ContentColor
	case models.FilterImage:
		switch item.ContentType {
		case models.ContentImage, models.ContentSVG, models.ContentDrawio:
			return true
		}
		return false
	case models.FilterVector:
		switch item.ContentType {
		case models.ContentSVG, models.ContentDrawio:
			return true
		}
		return false
	}
	return true
}

func (m *Matcher) matchText(item *models.ClipItem) bool {
	if m.re == nil && m.needle == "" {
		return true
	}
	hay := searchableText(item)
	if m.re != nil {
		return m.re.MatchString(hay)
	}
	if m.query.CaseInsensitive {
		hay = strings.ToLower(hay)
	}
	return strings.Contains(hay, m.needle)
}

// searchableText prefers loaded content over the preview, matching what the
// user actually sees in an expanded row.
func searchableText(item *models.ClipItem) string {
	if item.ContentText != "" {
		return item.ContentText
	}
	return item.PreviewText
}
