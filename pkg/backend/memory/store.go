// Package memory provides a complete in-process Backend. It backs the demo
// mode and the test suite; from the UI's side it is indistinguishable from
// a remote data owner.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
	"github.com/clipdeck/clipdeck-terminal/pkg/paste"
	"github.com/clipdeck/clipdeck-terminal/pkg/search"
	"github.com/clipdeck/clipdeck-terminal/pkg/utils"
)

const eventBuffer = 256

// Store implements backend.Backend against in-memory state. All mutations
// serialize behind one mutex; events go out in application order.
type Store struct {
	mu sync.Mutex

	items  []models.ClipItem // newest first, across all groups
	groups []models.Group
	full   map[int]string // item id → full text withheld until loaded

	current     int
	destination int
	matcher     *search.Matcher

	nextItemID    int
	nextSubitemID int
	nextGroupID   int

	settings *models.Settings
	copyText paste.Copier
	events   chan backend.Event
}

var _ backend.Backend = (*Store)(nil)

// New returns a store holding only the two reserved groups. Settings drive
// the preview limits applied when clips are added.
func New(settings *models.Settings) *Store {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	s := &Store{
		groups: []models.Group{
			{ID: models.AllClipsGroupID, Name: "All", IsSpecial: true},
			{ID: models.DefaultGroupID, Name: "Default", IsSpecial: true},
		},
		full:        make(map[int]string),
		current:     models.AllClipsGroupID,
		destination: models.DefaultGroupID,
		matcher:     mustCompile(models.SearchQuery{}),
		nextGroupID: 1,
		copyText:    paste.SystemCopier,
		events:      make(chan backend.Event, eventBuffer),
		settings:    settings,
	}
	return s
}

// SetCopier replaces the clipboard writer. Tests install a recorder here.
func (s *Store) SetCopier(c paste.Copier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.copyText = c
}

// Events implements backend.Backend.
func (s *Store) Events() <-chan backend.Event {
	return s.events
}

// Seeding. Seed methods mutate silently and exist for bootstrap before the
// UI attaches; once it has, use the command surface instead.

// SeedGroup installs a group without announcing it. Plugin groups append at
// the tail, user groups before them.
func (s *Store) SeedGroup(g models.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertGroupLocked(g)
	if g.ID >= s.nextGroupID {
		s.nextGroupID = g.ID + 1
	}
}

// SeedClip installs a clip without announcing it and returns its id.
func (s *Store) SeedClip(item models.ClipItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertClipLocked(item)
}

// AddClip ingests a freshly captured clip into the destination group and
// announces it, provided it matches the active filter and group view.
func (s *Store) AddClip(item models.ClipItem) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !item.FromPlugin() {
		item.GroupID = s.destination
	}
	id := s.insertClipLocked(item)

	it := s.itemLocked(id)
	if s.inCurrentGroupLocked(it) && s.matcher.Match(it) {
		row := s.visibleRowLocked(id)
		s.emit(backend.ItemAdded{Item: cloneItem(it), Row: row})
	}
	return id
}

// Refresh implements backend.Backend.
func (s *Store) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emitGroupsLocked()
	s.emit(backend.ItemsReset{Items: s.visibleLocked()})
}

// SetSearch implements backend.Backend. An uncompilable pattern empties the
// list and reports once; it never keeps the previous filter alive.
func (s *Store) SetSearch(q models.SearchQuery) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := search.Compile(q)
	if err != nil {
		s.matcher = search.Never(q)
		s.emit(backend.StatusMessage{Text: "Invalid search pattern."})
		s.emit(backend.ItemsReset{Items: s.visibleLocked()})
		return
	}
	s.matcher = m
	s.emit(backend.ItemsReset{Items: s.visibleLocked()})
}

// ReorderGroups implements backend.Backend. Anything touching reserved or
// out-of-range positions is dropped without comment.
func (s *Store) ReorderGroups(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.groups)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return
	}
	lo, hi := models.UserGroupSpan(s.groups)
	if from < lo || from >= hi || to < lo || to >= hi {
		return
	}

	g := s.groups[from]
	s.groups = append(s.groups[:from], s.groups[from+1:]...)
	rest := append([]models.Group{}, s.groups[to:]...)
	s.groups = append(append(s.groups[:to:to], g), rest...)
	s.emitGroupsLocked()
}

// SelectGroup implements backend.Backend.
func (s *Store) SelectGroup(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.groupLocked(id) == nil || id == s.current {
		return
	}
	s.current = id
	s.emit(backend.CurrentGroupChanged{GroupID: id})
	s.emitGroupsLocked()
	s.emit(backend.ItemsReset{Items: s.visibleLocked()})
}

// SetDestinationGroup implements backend.Backend. Only the default group and
// user groups can receive captures.
func (s *Store) SetDestinationGroup(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.groupLocked(id)
	if g == nil || g.IsPlugin || id == models.AllClipsGroupID {
		return
	}
	s.destination = id
	s.emitGroupsLocked()
}

// CreateGroup implements backend.Backend.
func (s *Store) CreateGroup(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		s.emit(backend.StatusMessage{Text: "Group name cannot be empty."})
		return
	}
	g := models.Group{ID: s.nextGroupID, Name: name}
	s.nextGroupID++
	s.insertGroupLocked(g)
	s.emitGroupsLocked()
}

// RenameGroup implements backend.Backend. Reserved groups keep their names.
func (s *Store) RenameGroup(id int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	g := s.groupLocked(id)
	if g == nil || g.Reserved() || name == "" {
		return
	}
	g.Name = name
	s.emitGroupsLocked()
}

// DeleteGroup implements backend.Backend. The default group refuses with a
// status message; other reserved groups are silently kept. Items of a
// deleted group fall back to the default group.
func (s *Store) DeleteGroup(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.groupLocked(id)
	if g == nil {
		return
	}
	if id == models.DefaultGroupID {
		s.emit(backend.StatusMessage{Text: "Default group cannot be deleted."})
		return
	}
	if g.Reserved() {
		return
	}

	for i := range s.groups {
		if s.groups[i].ID == id {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			break
		}
	}
	for i := range s.items {
		if s.items[i].GroupID == id {
			s.items[i].GroupID = models.DefaultGroupID
		}
	}
	if s.destination == id {
		s.destination = models.DefaultGroupID
	}
	if s.current == id {
		s.current = models.AllClipsGroupID
		s.emit(backend.CurrentGroupChanged{GroupID: s.current})
	}
	s.emitGroupsLocked()
	s.emit(backend.ItemsReset{Items: s.visibleLocked()})
}

// LoadItemContent implements backend.Backend.
func (s *Store) LoadItemContent(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.itemLocked(id)
	if it == nil || it.HasFullContent {
		return
	}
	text, ok := s.full[id]
	if !ok {
		return
	}
	delete(s.full, id)
	it.ContentText = text
	it.HasFullContent = true
	s.emit(backend.ItemChanged{Item: cloneItem(it)})
}

// TogglePin implements backend.Backend.
func (s *Store) TogglePin(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.itemLocked(id)
	if it == nil {
		return
	}
	it.Pinned = !it.Pinned
	s.emitItemMutationLocked(it)
}

// DeleteItem implements backend.Backend.
func (s *Store) DeleteItem(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			delete(s.full, id)
			s.emit(backend.ItemsReset{Items: s.visibleLocked()})
			return
		}
	}
}

// MoveItemToGroup implements backend.Backend.
func (s *Store) MoveItemToGroup(itemID, groupID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.itemLocked(itemID)
	g := s.groupLocked(groupID)
	if it == nil || g == nil || g.IsPlugin || groupID == models.AllClipsGroupID {
		return
	}
	if it.GroupID == groupID {
		return
	}
	it.GroupID = groupID
	s.emitItemMutationLocked(it)
}

// MoveTargetsForItem implements backend.Backend. Targets are the default
// group plus every user group, in strip order; a stale id yields nil.
func (s *Store) MoveTargetsForItem(id int) []models.MoveTarget {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.itemLocked(id)
	if it == nil {
		return nil
	}
	var targets []models.MoveTarget
	for _, g := range s.groups {
		if g.IsPlugin || g.ID == models.AllClipsGroupID {
			continue
		}
		t := models.MoveTarget{
			ID:        g.ID,
			Name:      g.Name,
			IsSpecial: g.IsSpecial,
			IsCurrent: g.ID == it.GroupID,
		}
		if t.IsCurrent {
			t.Tags = []string{models.MoveTargetTagCurrent}
		}
		targets = append(targets, t)
	}
	return targets
}

// ActivateItem implements backend.Backend.
func (s *Store) ActivateItem(id int, pasteAfter bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateLocked(id, paste.ModeDefault, pasteAfter)
}

// PasteAs implements backend.Backend.
func (s *Store) PasteAs(itemID int, mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activateLocked(itemID, paste.Mode(mode), true)
}

// ActivateSubitem implements backend.Backend.
func (s *Store) ActivateSubitem(itemID int, text string, pasteAfter bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.itemLocked(itemID) == nil {
		return
	}
	if err := s.copyText(text); err != nil {
		s.emit(backend.StatusMessage{Text: fmt.Sprintf("Copy failed: %v", err)})
		return
	}
	s.emit(backend.StatusMessage{Text: copiedStatus(pasteAfter)})
}

// PromoteSubitem implements backend.Backend. The subitem's text becomes an
// independent text clip in the same group; the subitem itself goes away.
func (s *Store) PromoteSubitem(itemID int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.itemLocked(itemID)
	if it == nil {
		return
	}
	removed := false
	for i := range it.Subitems {
		if it.Subitems[i].Text == text {
			it.Subitems = append(it.Subitems[:i], it.Subitems[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		return
	}

	id := s.insertClipLocked(models.ClipItem{
		ContentType: models.ContentText,
		ContentText: text,
		GroupID:     it.GroupID,
	})
	promoted := s.itemLocked(id)
	if s.inCurrentGroupLocked(promoted) && s.matcher.Match(promoted) {
		s.emit(backend.ItemAdded{Item: cloneItem(promoted), Row: s.visibleRowLocked(id)})
	}
	s.emit(backend.ItemChanged{Item: cloneItem(it)})
}

// DeleteSubitem implements backend.Backend.
func (s *Store) DeleteSubitem(itemID, subitemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.itemLocked(itemID)
	if it == nil {
		return
	}
	for i := range it.Subitems {
		if it.Subitems[i].ID == subitemID {
			it.Subitems = append(it.Subitems[:i], it.Subitems[i+1:]...)
			s.emit(backend.ItemChanged{Item: cloneItem(it)})
			return
		}
	}
}

// AddNoteSubitem implements backend.Backend. Notes always append; they are
// never replaced the way operation results are.
func (s *Store) AddNoteSubitem(itemID int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	it := s.itemLocked(itemID)
	if it == nil || text == "" {
		return
	}
	s.nextSubitemID++
	it.Subitems = append(it.Subitems, models.Subitem{ID: s.nextSubitemID, Tag: models.TagNote, Text: text})
	s.emit(backend.ItemChanged{Item: cloneItem(it)})
}

// PluginAction implements backend.Backend.
func (s *Store) PluginAction(pluginID, actionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit(backend.StatusMessage{Text: fmt.Sprintf("Ran %s (%s).", actionID, pluginID)})
}

// PluginActionWithPayload implements backend.Backend.
func (s *Store) PluginActionWithPayload(pluginID, actionID, payload string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit(backend.StatusMessage{Text: fmt.Sprintf("Ran %s (%s).", actionID, pluginID)})
}

// HideWindow implements backend.Backend. Window management is external; the
// demo store has nothing to hide.
func (s *Store) HideWindow() {}

// ToggleWindow implements backend.Backend.
func (s *Store) ToggleWindow() {}

// internals

func (s *Store) activateLocked(id int, mode paste.Mode, pasteAfter bool) {
	it := s.itemLocked(id)
	if it == nil {
		return
	}
	payload, err := paste.Payload(it, mode)
	if err != nil {
		s.emit(backend.StatusMessage{Text: fmt.Sprintf("Copy failed: %v", err)})
		return
	}
	if err := s.copyText(payload); err != nil {
		s.emit(backend.StatusMessage{Text: fmt.Sprintf("Copy failed: %v", err)})
		return
	}
	it.LastUsedAt = time.Now()
	s.emit(backend.ItemChanged{Item: cloneItem(it)})
	s.emit(backend.StatusMessage{Text: copiedStatus(pasteAfter)})
}

func copiedStatus(pasted bool) string {
	if pasted {
		return "Pasted."
	}
	return "Copied to clipboard."
}

// insertClipLocked assigns identity, derives previews and extracted
// subitems, and places the clip at the top of the history.
func (s *Store) insertClipLocked(item models.ClipItem) int {
	s.nextItemID++
	item.ID = s.nextItemID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	switch item.ContentType {
	case models.ContentText, models.ContentHTML:
		s.stageTextLocked(&item)
		if item.ContentType == models.ContentText {
			s.extractURLsLocked(&item)
		}
	case models.ContentColor:
		if forms, ok := utils.ParseColorForms(textOf(&item)); ok {
			item.BaseColor = forms.Hex
		}
		item.HasFullContent = true
		item.Length = len([]rune(item.ContentText))
	default:
		item.HasFullContent = true
	}

	s.items = append([]models.ClipItem{item}, s.items...)
	return item.ID
}

// stageTextLocked splits long text into a visible preview and withheld full
// content, to be fetched through LoadItemContent.
func (s *Store) stageTextLocked(item *models.ClipItem) {
	limit := s.settings.UI.PreviewTextLimit
	if item.ContentType == models.ContentHTML {
		limit = s.settings.UI.PreviewHTMLLimit
	}
	item.Length = len([]rune(item.ContentText))
	if item.Length <= limit {
		item.HasFullContent = true
		if item.PreviewText == "" {
			item.PreviewText = item.ContentText
		}
		return
	}
	s.full[item.ID] = item.ContentText
	item.PreviewText = utils.TruncateText(item.ContentText, limit)
	item.ContentText = ""
	item.HasFullContent = false
}

func (s *Store) extractURLsLocked(item *models.ClipItem) {
	text := item.ContentText
	if text == "" {
		text = s.full[item.ID]
	}
	for _, u := range utils.ExtractURLs(text) {
		if subitemWithText(item, u) {
			continue
		}
		s.nextSubitemID++
		item.Subitems = append(item.Subitems, models.Subitem{ID: s.nextSubitemID, Tag: models.TagURL, Text: u})
	}
}

func subitemWithText(item *models.ClipItem, text string) bool {
	for _, sub := range item.Subitems {
		if sub.Tag == models.TagURL && sub.Text == text {
			return true
		}
	}
	return false
}

// insertGroupLocked keeps strip order: specials, then user groups, then
// plugin groups, stable within each class.
func (s *Store) insertGroupLocked(g models.Group) {
	s.groups = append(s.groups, g)
	sort.SliceStable(s.groups, func(i, j int) bool {
		return groupRank(s.groups[i]) < groupRank(s.groups[j])
	})
}

func groupRank(g models.Group) int {
	switch {
	case g.IsSpecial:
		return 0
	case g.IsPlugin:
		return 2
	default:
		return 1
	}
}

func (s *Store) itemLocked(id int) *models.ClipItem {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

func (s *Store) groupLocked(id int) *models.Group {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return &s.groups[i]
		}
	}
	return nil
}

func (s *Store) inCurrentGroupLocked(it *models.ClipItem) bool {
	if s.current == models.AllClipsGroupID {
		return it.GroupID > models.PluginGroupIDCeiling
	}
	return it.GroupID == s.current
}

func (s *Store) visibleLocked() []models.ClipItem {
	out := make([]models.ClipItem, 0, len(s.items))
	for i := range s.items {
		it := &s.items[i]
		if s.inCurrentGroupLocked(it) && s.matcher.Match(it) {
			out = append(out, cloneItem(it))
		}
	}
	return out
}

func (s *Store) visibleRowLocked(id int) int {
	row := 0
	for i := range s.items {
		it := &s.items[i]
		if !s.inCurrentGroupLocked(it) || !s.matcher.Match(it) {
			continue
		}
		if it.ID == id {
			return row
		}
		row++
	}
	return -1
}

// emitItemMutationLocked announces an in-place change, falling back to a
// reset when the mutation moved the item out of the current projection.
func (s *Store) emitItemMutationLocked(it *models.ClipItem) {
	if s.inCurrentGroupLocked(it) && s.matcher.Match(it) {
		s.emit(backend.ItemChanged{Item: cloneItem(it)})
		return
	}
	s.emit(backend.ItemsReset{Items: s.visibleLocked()})
}

func (s *Store) emitGroupsLocked() {
	groups := make([]models.Group, len(s.groups))
	copy(groups, s.groups)
	s.emit(backend.GroupsChanged{Groups: groups, CurrentID: s.current, DestinationID: s.destination})
}

func (s *Store) emit(ev backend.Event) {
	s.events <- ev
}

func cloneItem(it *models.ClipItem) models.ClipItem {
	c := *it
	if len(it.Subitems) > 0 {
		c.Subitems = append([]models.Subitem{}, it.Subitems...)
	}
	if len(it.ExtraActions) > 0 {
		c.ExtraActions = append([]models.ActionEntry{}, it.ExtraActions...)
	}
	return c
}

func textOf(it *models.ClipItem) string {
	if it.ContentText != "" {
		return it.ContentText
	}
	return it.PreviewText
}

func mustCompile(q models.SearchQuery) *search.Matcher {
	m, err := search.Compile(q)
	if err != nil {
		panic(err)
	}
	return m
}
