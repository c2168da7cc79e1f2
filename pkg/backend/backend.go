// Package backend defines the command/query surface the UI consumes and the
// events it observes. The data-owning side (capture, persistence, plugins,
// AI operations) lives behind this interface; the UI never mutates clip
// state directly.
package backend

import "github.com/clipdeck/clipdeck-terminal/pkg/models"

// Backend is the narrow contract between the presentation layer and the
// data owner. Commands are fire-and-forget: failures surface as
// StatusMessage events, results as later model events. MoveTargetsForItem
// is the one synchronous query; a stale item id yields an empty list.
type Backend interface {
	// Refresh re-emits the full current state (groups, current group,
	// items). Issued once when the UI attaches.
	Refresh()

	// SetSearch replaces the active filter entirely. Idempotent.
	SetSearch(q models.SearchQuery)

	// ReorderGroups moves the group at from to strip position to.
	// Out-of-bounds indices and reserved positions are silently ignored.
	ReorderGroups(from, to int)

	SelectGroup(id int)
	SetDestinationGroup(id int)
	CreateGroup(name string)
	RenameGroup(id int, name string)
	DeleteGroup(id int)

	// LoadItemContent fills in the item's full content; the result arrives
	// as an ItemChanged event.
	LoadItemContent(id int)

	TogglePin(id int)
	DeleteItem(id int)
	MoveItemToGroup(itemID, groupID int)
	MoveTargetsForItem(id int) []models.MoveTarget

	ActivateItem(id int, paste bool)
	// PasteAs activates an item in a specific representation; mode values
	// match the paste-as context actions (hex, rgb, hsl, text, raw-html,
	// png, svg, scaled-image).
	PasteAs(itemID int, mode string)
	ActivateSubitem(itemID int, text string, paste bool)
	PromoteSubitem(itemID int, text string)
	DeleteSubitem(itemID, subitemID int)
	AddNoteSubitem(itemID int, text string)

	RunOperation(itemID int, operationKey string)
	PluginAction(pluginID, actionID string)
	PluginActionWithPayload(pluginID, actionID, payload string)

	// Window affordances routed from global keys. Management of the window
	// itself is outside this contract.
	HideWindow()
	ToggleWindow()

	// Events delivers model mutations and notifications in the order the
	// backend applied them.
	Events() <-chan Event
}
