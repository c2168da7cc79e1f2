package models

// Reserved group ids. The all-clips and default groups always exist, occupy
// the first two strip positions, and can be neither reordered nor deleted.
const (
	AllClipsGroupID = -1
	DefaultGroupID  = 0
)

// PluginGroupIDCeiling marks the plugin id space: groups with ids at or
// below it are plugin-supplied.
const PluginGroupIDCeiling = -99

// Group is a named bucket clip items belong to.
type Group struct {
	ID        int
	Name      string
	IsSpecial bool
	IsPlugin  bool
	BaseColor string
}

// Reserved reports whether the group may never be reordered or deleted.
func (g Group) Reserved() bool {
	return g.IsSpecial || g.IsPlugin
}

// ReservedLeading counts the special groups at the head of the strip. Drag
// targets below this index are invalid by construction.
func ReservedLeading(groups []Group) int {
	n := 0
	for _, g := range groups {
		if !g.IsSpecial {
			break
		}
		n++
	}
	return n
}

// UserGroupSpan returns the index range [lo, hi) of draggable user groups:
// everything after the leading specials and before any trailing plugin
// groups.
func UserGroupSpan(groups []Group) (int, int) {
	lo := ReservedLeading(groups)
	hi := len(groups)
	for hi > lo && groups[hi-1].IsPlugin {
		hi--
	}
	return lo, hi
}
