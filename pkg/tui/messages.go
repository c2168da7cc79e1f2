package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend"
)

// backendEventMsg wraps one backend event for the update loop.
type backendEventMsg struct {
	event backend.Event
}

// searchDebounceMsg fires when a debounce window elapses. Stale sequences
// (a newer edit restarted the window) are ignored on arrival.
type searchDebounceMsg struct {
	seq int
}

// statusExpiryMsg clears the status line once its TTL elapses, unless a
// newer message superseded it.
type statusExpiryMsg struct {
	seq int
}

// anchorSettleMsg re-enters the scroll anchor's restore loop after the
// layout had one frame to settle.
type anchorSettleMsg struct{}

// longPressMsg promotes a held mouse press into a peek gesture if the
// press is still down on the same item when it arrives.
type longPressMsg struct {
	itemID int
	seq    int
}

const (
	longPressDelay = 400 * time.Millisecond
	settleDelay    = 16 * time.Millisecond
)

// waitForEvent receives one backend event. The app re-issues it after
// every delivery so the channel is drained for as long as the UI runs.
func waitForEvent(events <-chan backend.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return backendEventMsg{event: ev}
	}
}

func scheduleDebounce(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func scheduleStatusExpiry(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusExpiryMsg{seq: seq}
	})
}

func scheduleAnchorSettle() tea.Cmd {
	return tea.Tick(settleDelay, func(time.Time) tea.Msg {
		return anchorSettleMsg{}
	})
}

func scheduleLongPress(itemID, seq int) tea.Cmd {
	return tea.Tick(longPressDelay, func(time.Time) tea.Msg {
		return longPressMsg{itemID: itemID, seq: seq}
	})
}
