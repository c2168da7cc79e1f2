package backend

import "github.com/clipdeck/clipdeck-terminal/pkg/models"

// Event is one backend-originated notification. The concrete types below
// are the complete set.
type Event interface {
	backendEvent()
}

// ItemsReset replaces the visible item projection wholesale: emitted on
// search changes, group switches, deletions, and any other membership
// change that is not a single insert.
type ItemsReset struct {
	Items []models.ClipItem
}

// ItemAdded inserts one item at Row within the current projection. Items
// that do not match the active filter are never announced.
type ItemAdded struct {
	Item models.ClipItem
	Row  int
}

// ItemChanged carries an in-place mutation (pin toggle, content load
// completion, subitem change, group move that keeps the item visible).
type ItemChanged struct {
	Item models.ClipItem
}

// GroupsChanged carries the full group strip plus the current and
// destination markers.
type GroupsChanged struct {
	Groups        []models.Group
	CurrentID     int
	DestinationID int
}

// CurrentGroupChanged announces a group selection change; an ItemsReset
// with the new projection follows.
type CurrentGroupChanged struct {
	GroupID int
}

// OperationRunning toggles the busy indicator while a backend operation is
// in flight.
type OperationRunning struct {
	Running bool
}

// StatusMessage is a transient, auto-clearing user notification. It is the
// only surface backend failures are reported on.
type StatusMessage struct {
	Text string
}

func (ItemsReset) backendEvent()          {}
func (ItemAdded) backendEvent()           {}
func (ItemChanged) backendEvent()         {}
func (GroupsChanged) backendEvent()       {}
func (CurrentGroupChanged) backendEvent() {}
func (OperationRunning) backendEvent()    {}
func (StatusMessage) backendEvent()       {}
