package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clipdeck/clipdeck-terminal/pkg/backend"
	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

const (
	stripHeight  = 1
	searchHeight = 3
	statusHeight = 1
	chromeHeight = stripHeight + searchHeight + statusHeight

	doubleClickWindow = 400 * time.Millisecond
	wheelStep         = 3
)

// App is the root model: it owns the backend connection, the list core,
// the group strip, the search state, and the overlay components, and
// routes every message between them. All mutations run on the update
// loop; backend calls are fire-and-forget and their effects come back as
// events.
type App struct {
	backend  backend.Backend
	settings *models.Settings

	width  int
	height int

	list    *ClipListModel
	strip   *GroupStripModel
	search  *SearchState
	menu    *ContextMenuModel
	confirm *ConfirmationModel
	prompt  *InputPromptModel
	status  *StatusBar
	spin    spinner.Model

	opRunning bool

	// press tracking for long-press peek and double-click activation
	pressDown   bool
	pressItemID int
	pressSeq    int
	peeking     bool
	lastMouseY  int
	lastClickAt time.Time
	lastClickID int
}

func NewApp(b backend.Backend, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive))

	return &App{
		backend:  b,
		settings: settings,
		list:     NewClipList(settings),
		strip:    NewGroupStrip(),
		search:   NewSearchState(settings),
		menu:     NewContextMenu(),
		confirm:  NewConfirmation(),
		prompt:   NewInputPrompt(),
		status:   NewStatusBar(),
		spin:     sp,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			a.backend.Refresh()
			return nil
		},
		waitForEvent(a.backend.Events()),
		textinput.Blink,
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.setSize(msg.Width, msg.Height)
		return a, nil

	case backendEventMsg:
		cmd := a.handleEvent(msg.event)
		return a, tea.Batch(cmd, waitForEvent(a.backend.Events()))

	case searchDebounceMsg:
		if q, ok := a.search.Resolve(msg.seq); ok {
			a.backend.SetSearch(q)
		}
		return a, nil

	case statusExpiryMsg:
		a.status.Expire(msg.seq)
		return a, nil

	case anchorSettleMsg:
		if a.list.RestoreAnchor() {
			return a, scheduleAnchorSettle()
		}
		return a, nil

	case longPressMsg:
		return a, a.handleLongPress(msg)

	case spinner.TickMsg:
		if !a.opRunning {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}

	// Remaining messages (cursor blinks and the like) belong to whichever
	// text input is live.
	if a.prompt.Active() {
		return a, a.prompt.Update(msg)
	}
	if a.menu.Active() {
		return a, a.menu.UpdateBlink(msg)
	}
	if a.search.Focused() {
		return a, a.search.Update(msg)
	}
	return a, nil
}

func (a *App) setSize(width, height int) {
	a.width = width
	a.height = height
	a.list.SetSize(width, a.listHeight())
	a.status.SetWidth(width)

	inputWidth := width - 24
	if inputWidth < 10 {
		inputWidth = 10
	}
	a.search.SetWidth(inputWidth)
}

func (a *App) listHeight() int {
	h := a.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// handleEvent applies one backend event. Layout-reflowing events snapshot
// the reading position first and walk it back afterwards, retrying on the
// settle signal until stable.
func (a *App) handleEvent(ev backend.Event) tea.Cmd {
	switch ev := ev.(type) {
	case backend.ItemsReset:
		a.list.SnapshotAnchor()
		a.list.Reset(ev.Items)
		return a.settleCmd()

	case backend.ItemAdded:
		a.list.SnapshotAnchor()
		a.list.Insert(ev.Item, ev.Row)
		return a.settleCmd()

	case backend.ItemChanged:
		a.list.SnapshotAnchor()
		a.list.Patch(ev.Item)
		a.menu.RefreshItem(ev.Item, a.list.Expansion())
		return a.settleCmd()

	case backend.GroupsChanged:
		a.strip.SetGroups(ev.Groups, ev.CurrentID, ev.DestinationID)
		return nil

	case backend.CurrentGroupChanged:
		// The projection reset follows; start the new group at the top.
		a.list.Anchor().Cancel()
		a.list.SetYOffset(0)
		return nil

	case backend.OperationRunning:
		a.opRunning = ev.Running
		if ev.Running {
			return a.spin.Tick
		}
		return nil

	case backend.StatusMessage:
		return a.status.Set(ev.Text)
	}
	return nil
}

func (a *App) settleCmd() tea.Cmd {
	if a.list.RestoreAnchor() {
		return scheduleAnchorSettle()
	}
	return nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays eat keys in priority order.
	if a.confirm.Active() {
		return a, a.confirm.Update(msg)
	}
	if a.prompt.Active() {
		return a, a.prompt.Update(msg)
	}
	if a.menu.Active() {
		outcome, cmd := a.menu.Update(msg)
		return a, tea.Batch(cmd, a.applyMenuOutcome(outcome))
	}
	if a.search.Focused() {
		return a, a.handleSearchKey(msg)
	}
	return a, a.handleListKey(msg)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.search.Blur()
		return a.search.Clear()
	case "enter":
		a.search.Blur()
		return nil
	case "ctrl+r":
		return a.search.ToggleRegex()
	case "alt+c":
		return a.search.ToggleCase()
	case "ctrl+f":
		return a.search.CycleType()
	case "ctrl+p":
		return a.search.CyclePin()
	}
	return a.search.Update(msg)
}

func (a *App) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit

	case "esc":
		a.backend.HideWindow()
		return tea.Quit

	case "ctrl+t":
		a.backend.ToggleWindow()
		return nil

	case "/":
		return a.search.Focus()

	case "up", "k":
		a.list.MoveCursor(-1)
	case "down", "j":
		a.list.MoveCursor(1)
	case "pgup":
		a.list.PageBy(-1)
	case "pgdown":
		a.list.PageBy(1)
	case "home", "g":
		a.list.SelectFirst()
	case "end", "G":
		a.list.SelectLast()

	case "enter":
		if item, ok := a.list.Selected(); ok {
			a.backend.ActivateItem(item.ID, false)
		}
	case "alt+enter":
		if item, ok := a.list.Selected(); ok {
			a.backend.ActivateItem(item.ID, true)
		}

	case " ", "e":
		return a.toggleExpandSelected()

	case "p":
		if item, ok := a.list.Selected(); ok {
			a.backend.TogglePin(item.ID)
		}

	case "d", "delete":
		if item, ok := a.list.Selected(); ok {
			a.confirm.Show("Delete this clip?", func() tea.Cmd {
				a.backend.DeleteItem(item.ID)
				return nil
			})
		}

	case "n":
		if item, ok := a.list.Selected(); ok {
			return a.prompt.Show("Add note", "note text", "", func(text string) tea.Cmd {
				a.backend.AddNoteSubitem(item.ID, text)
				return nil
			})
		}

	case "o":
		return a.openMenu()

	case "tab":
		if id, ok := a.strip.SelectNext(); ok {
			a.backend.SelectGroup(id)
		}
	case "shift+tab":
		if id, ok := a.strip.SelectPrev(); ok {
			a.backend.SelectGroup(id)
		}

	case "N":
		return a.prompt.Show("New group", "group name", "", func(name string) tea.Cmd {
			a.backend.CreateGroup(name)
			return nil
		})

	case "R":
		if g, ok := a.strip.Current(); ok && !g.Reserved() {
			return a.prompt.Show("Rename group", "group name", g.Name, func(name string) tea.Cmd {
				a.backend.RenameGroup(g.ID, name)
				return nil
			})
		}

	case "D":
		if g, ok := a.strip.Current(); ok {
			a.confirm.Show("Delete group \""+g.Name+"\"?", func() tea.Cmd {
				a.backend.DeleteGroup(g.ID)
				return nil
			})
		}

	case "s":
		a.backend.SetDestinationGroup(a.strip.CurrentID())

	case "f":
		return a.search.CycleType()
	case "P":
		return a.search.CyclePin()
	case "c":
		return a.search.Clear()
	}
	return nil
}

func (a *App) toggleExpandSelected() tea.Cmd {
	item, ok := a.list.Selected()
	if !ok {
		return nil
	}
	exp := a.list.Expansion()
	if !exp.Expandable(item) {
		return nil
	}
	needLoad := exp.Toggle(item)
	a.list.EnsureSelectedVisible()
	if needLoad {
		a.backend.LoadItemContent(item.ID)
	}
	return nil
}

// openMenu fetches the move targets and opens the context menu for the
// selected item.
func (a *App) openMenu() tea.Cmd {
	item, ok := a.list.Selected()
	if !ok {
		return nil
	}
	targets := a.backend.MoveTargetsForItem(item.ID)
	a.menu.Open(item, a.list.Expansion(), targets)
	return nil
}

func (a *App) applyMenuOutcome(out menuOutcome) tea.Cmd {
	item := a.menu.Item()
	switch out.kind {
	case menuOutcomeExecute:
		return a.executeMenuAction(item, out.action)

	case menuOutcomeMove:
		a.backend.MoveItemToGroup(item.ID, out.targetID)

	case menuOutcomeSubitem:
		switch out.subVerb {
		case "copy":
			a.backend.ActivateSubitem(item.ID, out.subitem.Text, false)
		case "promote":
			a.backend.PromoteSubitem(item.ID, out.subitem.Text)
		case "delete":
			a.backend.DeleteSubitem(item.ID, out.subitem.ID)
		}
	}
	return nil
}

func (a *App) executeMenuAction(item models.ClipItem, action MenuAction) tea.Cmd {
	if mode, ok := pasteModeOf(action); ok {
		a.backend.PasteAs(item.ID, mode)
		return nil
	}
	if key, ok := opKeyOf(action); ok {
		a.backend.RunOperation(item.ID, key)
		return nil
	}
	if actionID, ok := pluginActionOf(action); ok {
		a.backend.PluginAction(item.PluginID, actionID)
		return nil
	}

	switch action.ID {
	case "activate":
		a.backend.ActivateItem(item.ID, false)
	case "paste":
		a.backend.ActivateItem(item.ID, true)
	case "pin":
		a.backend.TogglePin(item.ID)
	case "expand":
		a.list.SelectRowByID(item.ID)
		return a.toggleExpandSelected()
	case "note":
		return a.prompt.Show("Add note", "note text", "", func(text string) tea.Cmd {
			a.backend.AddNoteSubitem(item.ID, text)
			return nil
		})
	case "delete":
		a.confirm.Show("Delete this clip?", func() tea.Cmd {
			a.backend.DeleteItem(item.ID)
			return nil
		})
	}
	return nil
}

func (a *App) handleLongPress(msg longPressMsg) tea.Cmd {
	if !a.pressDown || msg.seq != a.pressSeq || msg.itemID != a.pressItemID {
		return nil
	}
	row, ok := a.list.RowByID(msg.itemID)
	if !ok {
		return nil
	}
	item, _ := a.list.ItemAt(row)
	started, needLoad := a.list.Expansion().BeginPeek(item)
	a.peeking = started
	if needLoad {
		a.backend.LoadItemContent(item.ID)
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.menu.Active() || a.confirm.Active() || a.prompt.Active() {
		return a, nil
	}

	listTop := stripHeight + searchHeight

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.list.ScrollBy(-wheelStep)
			return a, nil
		case tea.MouseButtonWheelDown:
			a.list.ScrollBy(wheelStep)
			return a, nil
		case tea.MouseButtonLeft:
			return a.handleLeftPress(msg, listTop)
		case tea.MouseButtonRight:
			if row, ok := a.list.HitTest(msg.Y - listTop); ok {
				a.list.SelectRow(row)
				return a, a.openMenu()
			}
			return a, nil
		}

	case tea.MouseActionMotion:
		if a.strip.Drag().Active() {
			a.strip.Drag().Move(msg.X)
			return a, nil
		}
		if a.pressDown && a.peeking {
			a.list.Expansion().Pan(msg.Y - a.lastMouseY)
			a.lastMouseY = msg.Y
		}
		return a, nil

	case tea.MouseActionRelease:
		return a.handleRelease(msg)
	}
	return a, nil
}

func (a *App) handleLeftPress(msg tea.MouseMsg, listTop int) (tea.Model, tea.Cmd) {
	switch {
	case msg.Y < stripHeight:
		if idx, ok := a.strip.HitTab(msg.X); ok {
			// Every tab press arms the gesture; only movement past the
			// threshold on a draggable tab turns it into a reorder.
			a.strip.Drag().Start(idx, msg.X)
		}
		return a, nil

	case msg.Y < stripHeight+searchHeight:
		return a, a.search.Focus()

	default:
		row, ok := a.list.HitTest(msg.Y - listTop)
		if !ok {
			return a, nil
		}
		a.list.SelectRow(row)
		item, _ := a.list.ItemAt(row)

		// Double click activates.
		if item.ID == a.lastClickID && time.Since(a.lastClickAt) < doubleClickWindow {
			a.lastClickID = 0
			a.backend.ActivateItem(item.ID, false)
			return a, nil
		}
		a.lastClickAt = time.Now()
		a.lastClickID = item.ID

		a.pressDown = true
		a.pressItemID = item.ID
		a.pressSeq++
		a.lastMouseY = msg.Y
		return a, scheduleLongPress(item.ID, a.pressSeq)
	}
}

func (a *App) handleRelease(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.strip.Drag().Active() {
		target := a.strip.DropTarget()
		source, wasDrag := a.strip.Drag().Release()
		if wasDrag {
			if a.strip.DragStartable(source) && target != source {
				a.backend.ReorderGroups(source, target)
			}
		} else if g, ok := a.strip.GroupAt(source); ok {
			a.backend.SelectGroup(g.ID)
		}
		return a, nil
	}

	if a.pressDown {
		a.pressDown = false
		if a.peeking {
			a.list.Expansion().EndPeek()
			a.peeking = false
		}
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	strip := lipgloss.NewStyle().Width(a.width).Render(a.strip.View(a.width))
	search := a.search.View(a.width)

	body := a.list.View()
	if overlay := a.overlayView(); overlay != "" {
		body = lipgloss.Place(a.width, a.listHeight(), lipgloss.Center, lipgloss.Center, overlay)
	}

	return lipgloss.JoinVertical(lipgloss.Left, strip, search, body, a.statusLine())
}

func (a *App) overlayView() string {
	switch {
	case a.confirm.Active():
		return a.confirm.View()
	case a.prompt.Active():
		return a.prompt.View()
	case a.menu.Active():
		return a.menu.View()
	}
	return ""
}

func (a *App) statusLine() string {
	if a.opRunning {
		text := a.status.Message()
		if text == "" {
			text = "working"
		}
		return " " + a.spin.View() + StatusInfoStyle.Render(text)
	}
	return a.status.View()
}
