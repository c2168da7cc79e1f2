package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/paste"
)

// MenuAction is one row of a context menu: either an actionable entry or
// a separator.
type MenuAction struct {
	ID        string
	Label     string
	Danger    bool
	Separator bool
}

type menuMode int

const (
	menuMain menuMode = iota
	menuMove
	menuSubitems
)

// menuOutcome tells the app what a menu keypress decided. The menu never
// talks to the backend itself.
type menuOutcome struct {
	kind     menuOutcomeKind
	action   MenuAction
	targetID int
	subitem  models.Subitem
	subVerb  string
}

type menuOutcomeKind int

const (
	menuOutcomeNone menuOutcomeKind = iota
	menuOutcomeClose
	menuOutcomeExecute
	menuOutcomeMove
	menuOutcomeSubitem
)

// ContextMenuModel drives the per-item context menu: a main action list
// assembled per content type, a "move to" submenu with fuzzy filtering
// over lazily fetched targets, and a subitem submenu.
type ContextMenuModel struct {
	open    bool
	mode    menuMode
	item    models.ClipItem
	actions []MenuAction
	cursor  int

	targets    []models.MoveTarget
	filtered   []int
	filter     textinput.Model
	pickCursor int
}

func NewContextMenu() *ContextMenuModel {
	ti := textinput.New()
	ti.Placeholder = "Filter groups..."
	ti.CharLimit = 60
	ti.Width = 30
	return &ContextMenuModel{filter: ti}
}

// Open assembles the menu for one item. Move targets are fetched here,
// when the menu opens, never earlier.
func (m *ContextMenuModel) Open(item models.ClipItem, exp *ExpansionTracker, targets []models.MoveTarget) {
	m.open = true
	m.mode = menuMain
	m.item = item
	m.actions = AssembleActions(item, exp)
	m.cursor = firstActionable(m.actions)
	m.targets = targets
	m.filter.SetValue("")
	m.refilter()
}

func (m *ContextMenuModel) Close() {
	m.open = false
}

// RefreshItem rebuilds the open menu when its item mutated underneath it,
// keeping the subitem list and action labels current.
func (m *ContextMenuModel) RefreshItem(item models.ClipItem, exp *ExpansionTracker) {
	if !m.open || m.item.ID != item.ID {
		return
	}
	m.item = item
	m.actions = AssembleActions(item, exp)
	if m.cursor > len(m.actions)-1 {
		m.cursor = firstActionable(m.actions)
	}
	if m.mode == menuSubitems && m.pickCursor > len(item.Subitems)-1 {
		m.pickCursor = len(item.Subitems) - 1
		if m.pickCursor < 0 {
			m.mode = menuMain
			m.pickCursor = 0
		}
	}
}

func (m *ContextMenuModel) Active() bool {
	return m.open
}

func (m *ContextMenuModel) Item() models.ClipItem {
	return m.item
}

// UpdateBlink forwards non-key messages (cursor blinks) to the move
// filter's text input.
func (m *ContextMenuModel) UpdateBlink(msg tea.Msg) tea.Cmd {
	if !m.open || m.mode != menuMove {
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return cmd
}

// Update routes a key press. The returned outcome is what the app acts
// on; the command covers text input blinking in the move filter.
func (m *ContextMenuModel) Update(msg tea.KeyMsg) (menuOutcome, tea.Cmd) {
	if !m.open {
		return menuOutcome{}, nil
	}
	switch m.mode {
	case menuMove:
		return m.updateMove(msg)
	case menuSubitems:
		return m.updateSubitems(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m *ContextMenuModel) updateMain(msg tea.KeyMsg) (menuOutcome, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.open = false
		return menuOutcome{kind: menuOutcomeClose}, nil

	case "up", "k":
		m.cursor = prevActionable(m.actions, m.cursor)
	case "down", "j":
		m.cursor = nextActionable(m.actions, m.cursor)

	case "enter":
		if m.cursor < 0 || m.cursor >= len(m.actions) {
			return menuOutcome{}, nil
		}
		action := m.actions[m.cursor]
		switch action.ID {
		case "move":
			m.mode = menuMove
			m.pickCursor = 0
			m.refilter()
			return menuOutcome{}, m.filter.Focus()
		case "subitems":
			m.mode = menuSubitems
			m.pickCursor = 0
			return menuOutcome{}, nil
		default:
			m.open = false
			return menuOutcome{kind: menuOutcomeExecute, action: action}, nil
		}
	}
	return menuOutcome{}, nil
}

func (m *ContextMenuModel) updateMove(msg tea.KeyMsg) (menuOutcome, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = menuMain
		m.filter.Blur()
		return menuOutcome{}, nil

	case "up":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		return menuOutcome{}, nil
	case "down":
		if m.pickCursor < len(m.filtered)-1 {
			m.pickCursor++
		}
		return menuOutcome{}, nil

	case "enter":
		if m.pickCursor < 0 || m.pickCursor >= len(m.filtered) {
			return menuOutcome{}, nil
		}
		target := m.targets[m.filtered[m.pickCursor]]
		m.open = false
		m.filter.Blur()
		return menuOutcome{kind: menuOutcomeMove, targetID: target.ID}, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return menuOutcome{}, cmd
}

func (m *ContextMenuModel) updateSubitems(msg tea.KeyMsg) (menuOutcome, tea.Cmd) {
	subs := m.item.Subitems
	switch msg.String() {
	case "esc", "q":
		m.mode = menuMain
		return menuOutcome{}, nil

	case "up", "k":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
	case "down", "j":
		if m.pickCursor < len(subs)-1 {
			m.pickCursor++
		}

	case "enter":
		if sub, ok := m.pickedSubitem(); ok {
			m.open = false
			return menuOutcome{kind: menuOutcomeSubitem, subitem: sub, subVerb: "copy"}, nil
		}
	case "p":
		if sub, ok := m.pickedSubitem(); ok {
			m.open = false
			return menuOutcome{kind: menuOutcomeSubitem, subitem: sub, subVerb: "promote"}, nil
		}
	case "d":
		if sub, ok := m.pickedSubitem(); ok {
			m.open = false
			return menuOutcome{kind: menuOutcomeSubitem, subitem: sub, subVerb: "delete"}, nil
		}
	}
	return menuOutcome{}, nil
}

func (m *ContextMenuModel) pickedSubitem() (models.Subitem, bool) {
	if m.pickCursor < 0 || m.pickCursor >= len(m.item.Subitems) {
		return models.Subitem{}, false
	}
	return m.item.Subitems[m.pickCursor], true
}

// refilter reranks the move targets against the filter text.
func (m *ContextMenuModel) refilter() {
	query := m.filter.Value()
	if query == "" {
		m.filtered = make([]int, len(m.targets))
		for i := range m.targets {
			m.filtered[i] = i
		}
	} else {
		names := make([]string, len(m.targets))
		for i, t := range m.targets {
			names[i] = t.Name
		}
		matches := fuzzy.Find(query, names)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.pickCursor > len(m.filtered)-1 {
		m.pickCursor = len(m.filtered) - 1
	}
	if m.pickCursor < 0 {
		m.pickCursor = 0
	}
}

// AssembleActions builds the ordered action list for an item: the stable
// spine (copy, paste, pin, expand), the content-type-gated paste-as
// built-ins, note taking, backend operations, plugin-declared extras,
// move and delete. Built-ins never apply to plugin-sourced items, whose
// rows are owned by the plugin rather than the history.
func AssembleActions(item models.ClipItem, exp *ExpansionTracker) []MenuAction {
	var out []MenuAction
	add := func(id, label string) {
		out = append(out, MenuAction{ID: id, Label: label})
	}
	sep := func() {
		out = append(out, MenuAction{Separator: true})
	}

	add("activate", "Copy")
	add("paste", "Paste")
	if item.Pinned {
		add("pin", "Unpin")
	} else {
		add("pin", "Pin")
	}
	if exp.Expandable(item) {
		if exp.IsExpanded(item.ID) {
			add("expand", "Collapse")
		} else {
			add("expand", "Expand")
		}
	}

	if builtins := pasteBuiltins(item); len(builtins) > 0 {
		sep()
		out = append(out, builtins...)
	}

	sep()
	add("note", "Add note")
	for _, op := range models.OperationsFor(&item) {
		add("op:"+op.Key, op.Name)
	}

	if extras := pluginExtras(item); len(extras) > 0 {
		sep()
		out = append(out, extras...)
	}

	sep()
	if n := len(item.Subitems); n > 0 {
		add("subitems", fmt.Sprintf("Subitems (%d)", n))
	}
	if !item.FromPlugin() {
		add("move", "Move to group")
	}
	out = append(out, MenuAction{ID: "delete", Label: "Delete", Danger: true})

	return normalizeMenu(out)
}

// pasteBuiltins returns the content-type-gated paste-as entries. All of
// them are suppressed for plugin items.
func pasteBuiltins(item models.ClipItem) []MenuAction {
	if item.FromPlugin() {
		return nil
	}
	var out []MenuAction
	add := func(mode paste.Mode, label string) {
		out = append(out, MenuAction{ID: "paste-as:" + string(mode), Label: label})
	}

	switch item.ContentType {
	case models.ContentImage:
		add(paste.ModeScaledImage, "Paste scaled image")
	case models.ContentColor:
		add(paste.ModeHex, "Paste as hex")
		add(paste.ModeRGB, "Paste as rgb")
		add(paste.ModeHSL, "Paste as hsl")
	case models.ContentHTML:
		add(paste.ModePlainText, "Paste as text")
		add(paste.ModeRawHTML, "Paste as raw html")
	case models.ContentSVG:
		add(paste.ModePNG, "Paste as png")
	case models.ContentDrawio:
		add(paste.ModePNG, "Paste as png")
		add(paste.ModeSVG, "Paste as svg")
	}
	return out
}

// pluginExtras converts the plugin's declared action list, normalizing
// separator runs and edges.
func pluginExtras(item models.ClipItem) []MenuAction {
	entries := models.NormalizeEntries(item.ExtraActions)
	out := make([]MenuAction, 0, len(entries))
	for _, e := range entries {
		if e.Separator {
			out = append(out, MenuAction{Separator: true})
			continue
		}
		out = append(out, MenuAction{ID: "plugin:" + e.ID, Label: e.Label})
	}
	return out
}

// normalizeMenu collapses separator runs and strips leading and trailing
// separators from the assembled list.
func normalizeMenu(actions []MenuAction) []MenuAction {
	out := make([]MenuAction, 0, len(actions))
	for _, a := range actions {
		if a.Separator {
			if len(out) == 0 || out[len(out)-1].Separator {
				continue
			}
		}
		out = append(out, a)
	}
	for len(out) > 0 && out[len(out)-1].Separator {
		out = out[:len(out)-1]
	}
	return out
}

func firstActionable(actions []MenuAction) int {
	for i, a := range actions {
		if !a.Separator {
			return i
		}
	}
	return -1
}

func nextActionable(actions []MenuAction, from int) int {
	for i := from + 1; i < len(actions); i++ {
		if !actions[i].Separator {
			return i
		}
	}
	return from
}

func prevActionable(actions []MenuAction, from int) int {
	for i := from - 1; i >= 0; i-- {
		if !actions[i].Separator {
			return i
		}
	}
	return from
}

// opKeyOf extracts the operation key from an "op:" action id.
func opKeyOf(action MenuAction) (string, bool) {
	if strings.HasPrefix(action.ID, "op:") {
		return strings.TrimPrefix(action.ID, "op:"), true
	}
	return "", false
}

// pasteModeOf extracts the paste mode from a "paste-as:" action id.
func pasteModeOf(action MenuAction) (string, bool) {
	if strings.HasPrefix(action.ID, "paste-as:") {
		return strings.TrimPrefix(action.ID, "paste-as:"), true
	}
	return "", false
}

// pluginActionOf extracts the plugin action id from a "plugin:" action id.
func pluginActionOf(action MenuAction) (string, bool) {
	if strings.HasPrefix(action.ID, "plugin:") {
		return strings.TrimPrefix(action.ID, "plugin:"), true
	}
	return "", false
}
