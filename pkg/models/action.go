package models

// ActionEntry is one plugin-declared context menu entry. A Separator entry
// has no id or label and renders as a divider.
type ActionEntry struct {
	ID        string
	Label     string
	Separator bool
}

// NormalizeEntries cleans a plugin-supplied action list: consecutive
// separators collapse to one, and leading or trailing separators are
// dropped. Plugins get no say in producing empty-looking menu sections.
func NormalizeEntries(entries []ActionEntry) []ActionEntry {
	out := make([]ActionEntry, 0, len(entries))
	for _, e := range entries {
		if e.Separator {
			if len(out) == 0 || out[len(out)-1].Separator {
				continue
			}
		}
		out = append(out, e)
	}
	for len(out) > 0 && out[len(out)-1].Separator {
		out = out[:len(out)-1]
	}
	return out
}
