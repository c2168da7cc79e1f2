package models

// TypeFilter selects which content types a search matches. The index values
// follow the filter selector's fixed order.
type TypeFilter int

const (
	FilterAll TypeFilter = iota
	FilterText
	FilterHTML
	FilterURL
	FilterColor
	FilterImage // raster plus svg and drawio
	FilterVector
)

// PinFilter is the three-state pinned filter.
type PinFilter int

const (
	PinAll PinFilter = iota
	PinPinnedOnly
	PinUnpinnedOnly
)

// Next cycles all → pinned → unpinned → all.
func (p PinFilter) Next() PinFilter {
	switch p {
	case PinAll:
		return PinPinnedOnly
	case PinPinnedOnly:
		return PinUnpinnedOnly
	default:
		return PinAll
	}
}

func (p PinFilter) String() string {
	switch p {
	case PinPinnedOnly:
		return "pinned"
	case PinUnpinnedOnly:
		return "unpinned"
	default:
		return "all"
	}
}

// SearchQuery is the immutable filter state dispatched to the backend. A new
// query supersedes the prior one entirely; fields are never merged.
type SearchQuery struct {
	Text            string
	IsRegex         bool
	CaseInsensitive bool
	TypeFilter      TypeFilter
	PinFilter       PinFilter
}

// IsEmpty reports whether the query filters nothing. An empty query is still
// dispatched explicitly so a match-nothing filter can be cleared.
func (q SearchQuery) IsEmpty() bool {
	return q.Text == "" && q.TypeFilter == FilterAll && q.PinFilter == PinAll
}

// MoveTargetTagCurrent marks the move target that is the item's current
// group.
const MoveTargetTagCurrent = "current-item-group"

// MoveTarget is one entry of the lazily fetched "move to" submenu.
type MoveTarget struct {
	ID        int
	Name      string
	IsSpecial bool
	IsCurrent bool
	Tags      []string
}
