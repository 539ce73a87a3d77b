package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"blocpad/internal/core/block"
	"blocpad/internal/core/catalog"
	"blocpad/internal/core/config"
	"blocpad/internal/core/countdown"
	"blocpad/internal/core/trigger"
	"blocpad/internal/data/stores"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateList UIState = iota
	stateEditTitle
	stateEditContent
	stateTasks
)

// Options configures the TUI model.
type Options struct {
	Cfg       *config.Config
	Blocks    *stores.BlockStore
	Tasks     *stores.TaskStore
	Countdown *stores.CountdownStore
	Catalog   *catalog.Catalog
	Watcher   *stores.Watcher // optional
}

// Model is the main Bubble Tea model for the scratchpad.
type Model struct {
	cfg *config.Config

	blocksStore    *stores.BlockStore
	tasksStore     *stores.TaskStore
	countdownStore *stores.CountdownStore
	watcher        *stores.Watcher

	store *block.Store
	ctrl  *block.Controller

	state    UIState
	selected int // index into display order

	titleInput textinput.Model
	editor     Editor
	picker     Picker
	pickerOpen bool

	// Arm-and-fire delete: the first press arms, a second press on the same
	// block within the window deletes. gen counters invalidate stale timers.
	armedID   string
	deleteGen int
	copiedID  string
	copyGen   int

	event     *countdown.Event
	remaining countdown.Remaining

	tasks TasksPanel

	toasts    *ToastController
	toastView *ToastView

	keys KeyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// New builds the model, loading all persisted state.
func New(opts Options) *Model {
	blocks := opts.Blocks.Load()
	store := block.NewStore(blocks, opts.Blocks)

	ti := textinput.New()
	ti.Placeholder = "block title"
	ti.CharLimit = 80
	ti.Width = 40

	toasts := NewToastController()

	m := &Model{
		cfg:            opts.Cfg,
		blocksStore:    opts.Blocks,
		tasksStore:     opts.Tasks,
		countdownStore: opts.Countdown,
		watcher:        opts.Watcher,
		store:          store,
		ctrl:           block.NewController(store),
		titleInput:     ti,
		editor:         NewEditor(),
		picker:         NewPicker(opts.Catalog, opts.Cfg.Locale),
		event:          opts.Countdown.Load(),
		tasks:          NewTasksPanel(opts.Tasks.Load(time.Now())),
		toasts:         toasts,
		toastView:      NewToastView(toasts),
		keys:           DefaultKeyMap(),
		help:           help.New(),
	}
	m.editor.Placeholder = "start typing, :smile opens the symbol picker"

	if m.event != nil {
		m.remaining = m.event.Until(time.Now())
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.event != nil {
		cmds = append(cmds, scheduleCountdownTick())
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editor.SetSize(m.contentWidth(), m.contentHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case dataChangedMsg:
		return m.handleDataChanged(stores.Change(msg))

	case watcherClosedMsg:
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("clipboard write failed")
			return m, m.pushToast(ToastError, "copy failed: no clipboard")
		}
		m.copiedID = msg.blockID
		m.copyGen++
		return m, expireCopied(m.copyGen)

	case copiedExpiredMsg:
		if msg.gen == m.copyGen {
			m.copiedID = ""
		}
		return m, nil

	case deleteExpiredMsg:
		if msg.gen == m.deleteGen {
			m.armedID = ""
		}
		return m, nil

	case countdownTickMsg:
		if m.event == nil {
			return m, nil
		}
		m.remaining = m.event.Until(time.Now())
		return m, scheduleCountdownTick()

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateEditTitle:
		return m.handleTitleKey(msg)
	case stateEditContent:
		return m.handleContentKey(msg)
	case stateTasks:
		return m.handleTasksKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.store.Len()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.NewBlock):
		b, err := m.store.Add()
		if err != nil {
			log.Error().Err(err).Msg("add block")
			return m, m.pushToast(ToastError, "could not save new block")
		}
		m.selected = 0 // newest block displays first
		return m, m.beginContentEdit(b.ID)

	case key.Matches(msg, m.keys.Edit):
		b, ok := m.selectedBlock()
		if !ok {
			return m, nil
		}
		return m, m.beginContentEdit(b.ID)

	case key.Matches(msg, m.keys.EditTitle):
		b, ok := m.selectedBlock()
		if !ok {
			return m, nil
		}
		m.state = stateEditTitle
		m.titleInput.SetValue(b.Title)
		m.titleInput.CursorEnd()
		m.titleInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		b, ok := m.selectedBlock()
		if !ok {
			return m, nil
		}
		return m, copyToClipboard(b.ID, b.Content)

	case key.Matches(msg, m.keys.Delete):
		return m, m.handleDelete()

	case key.Matches(msg, m.keys.Tasks):
		if m.cfg.UI.TasksVisible() {
			m.state = stateTasks
		}
		return m, nil
	}
	return m, nil
}

// handleDelete arms the selected block, or deletes it when it is already
// armed. Pressing delete on a different block re-arms onto that block.
func (m *Model) handleDelete() tea.Cmd {
	b, ok := m.selectedBlock()
	if !ok {
		return nil
	}

	if m.armedID == b.ID {
		m.armedID = ""
		if err := m.store.Delete(b.ID); err != nil {
			log.Error().Err(err).Str("block", b.ID).Msg("delete block")
			return m.pushToast(ToastError, "could not delete block")
		}
		if m.selected >= m.store.Len() && m.selected > 0 {
			m.selected--
		}
		return m.pushToast(ToastSuccess, "block deleted")
	}

	m.armedID = b.ID
	m.deleteGen++
	return expireDelete(m.deleteGen)
}

func (m *Model) handleTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.commitTitle()
		m.state = stateList
		m.titleInput.Blur()
		return m, nil
	case "ctrl+n", "ctrl+p":
		// Switch to the content field, committing the title first.
		m.commitTitle()
		m.titleInput.Blur()
		b, ok := m.selectedBlock()
		if !ok {
			m.state = stateList
			return m, nil
		}
		return m, m.beginContentEdit(b.ID)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) commitTitle() {
	b, ok := m.selectedBlock()
	if !ok {
		return
	}
	if err := m.store.SetTitle(b.ID, m.titleInput.Value()); err != nil {
		log.Error().Err(err).Str("block", b.ID).Msg("set title")
	}
}

func (m *Model) handleContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A picker with no matches behaves as closed: keys fall through to the
	// editor, so enter still commits in one press.
	if m.pickerOpen && !m.picker.Empty() {
		switch msg.String() {
		case "up":
			m.picker.Prev()
			return m, nil
		case "down":
			m.picker.Next()
			return m, nil
		case "enter", "tab":
			m.commitSymbol()
			return m, nil
		case "esc":
			m.closePicker()
			return m, nil
		}
	}

	switch msg.String() {
	case "esc", "enter":
		if err := m.ctrl.End(); err != nil {
			log.Error().Err(err).Msg("commit block")
			return m, m.pushToast(ToastError, "could not save block")
		}
		m.closePicker()
		m.state = stateList
		return m, nil
	case "ctrl+n", "ctrl+p":
		// Switch to the title field, committing the content first.
		if err := m.ctrl.End(); err != nil {
			log.Error().Err(err).Msg("commit block")
		}
		m.closePicker()
		b, ok := m.selectedBlock()
		if !ok {
			m.state = stateList
			return m, nil
		}
		m.state = stateEditTitle
		m.titleInput.SetValue(b.Title)
		m.titleInput.CursorEnd()
		m.titleInput.Focus()
		return m, textinput.Blink
	}

	changed := m.editor.Update(msg)
	if changed {
		m.ctrl.SetBuffer(m.editor.Value())
	}
	m.detectTrigger()
	return m, nil
}

func (m *Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.tasks.Adding() && (msg.String() == "esc" || msg.String() == "T" || msg.String() == "q") {
		m.state = stateList
		return m, nil
	}

	changed, cmd := m.tasks.Update(msg)
	if changed {
		if err := m.tasksStore.Save(m.tasks.Tasks(), time.Now()); err != nil {
			log.Error().Err(err).Msg("save tasks")
			return m, m.pushToast(ToastError, "could not save tasks")
		}
	}
	return m, cmd
}

// beginContentEdit enters edit mode for a block, committing any other block
// first via the controller.
func (m *Model) beginContentEdit(id string) tea.Cmd {
	if err := m.ctrl.Begin(id); err != nil {
		log.Error().Err(err).Str("block", id).Msg("begin edit")
		return m.pushToast(ToastError, "could not open block")
	}
	m.state = stateEditContent
	m.editor.SetSize(m.contentWidth(), m.contentHeight())
	m.editor.SetValue(m.ctrl.Buffer())
	m.closePicker()
	return nil
}

// detectTrigger re-scans the buffer at the caret after every edit or caret
// move. A match opens (or re-filters) the picker; anything else closes it.
func (m *Model) detectTrigger() {
	match, ok := trigger.Detect(m.editor.Value(), m.editor.Caret())
	if !ok {
		m.closePicker()
		return
	}
	m.ctrl.SetTrigger(match.Offset, match.Query)
	m.picker.SetQuery(match.Query)
	m.pickerOpen = true
}

// commitSymbol splices the highlighted symbol over the trigger span and
// places the caret right after it.
func (m *Model) commitSymbol() {
	sym, ok := m.picker.Selected()
	if !ok {
		m.closePicker()
		return
	}
	offset, query, ok := m.ctrl.Trigger()
	if !ok {
		m.closePicker()
		return
	}

	next := trigger.Commit(m.editor.Value(), offset, len(query), sym.Symbol)
	m.editor.Splice(next, offset+len(sym.Symbol))
	m.ctrl.SetBuffer(next)
	m.closePicker()
}

func (m *Model) closePicker() {
	m.pickerOpen = false
	m.picker.Reset()
	m.ctrl.ClearTrigger()
}

// handleDataChanged reloads the store that another process rewrote.
func (m *Model) handleDataChanged(change stores.Change) (tea.Model, tea.Cmd) {
	resub := waitForChange(m.watcher)

	switch change.File {
	case stores.BlocksFile:
		if _, editing := m.ctrl.Editing(); editing {
			// Reloading now would clobber the edit buffer.
			log.Debug().Msg("blocks changed externally during edit, skipping reload")
			return m, resub
		}
		m.store = block.NewStore(m.blocksStore.Load(), m.blocksStore)
		m.ctrl = block.NewController(m.store)
		if m.selected >= m.store.Len() && m.selected > 0 {
			m.selected = m.store.Len() - 1
		}
		return m, resub

	case stores.TasksFile:
		m.tasks.SetTasks(m.tasksStore.Load(time.Now()))
		return m, resub

	case stores.CountdownFile:
		hadEvent := m.event != nil
		m.event = m.countdownStore.Load()
		if m.event != nil {
			m.remaining = m.event.Until(time.Now())
			if !hadEvent {
				return m, tea.Batch(resub, scheduleCountdownTick())
			}
		}
		return m, resub
	}
	return m, resub
}

func (m *Model) pushToast(level ToastLevel, message string) tea.Cmd {
	m.toasts.Push(level, message)
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) selectedBlock() (block.Block, bool) {
	display := m.store.Display()
	if m.selected < 0 || m.selected >= len(display) {
		return block.Block{}, false
	}
	return display[m.selected], true
}

func copyToClipboard(id, content string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{blockID: id, err: clipboard.WriteAll(content)}
	}
}

// contentWidth is the wrap width inside a block border.
func (m *Model) contentWidth() int {
	w := m.width - 6 // border, padding, list gutter
	if m.cfg.UI.TasksVisible() || m.cfg.UI.CountdownVisible() {
		w -= sidebarWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// contentHeight is the visible row count of the content editor.
func (m *Model) contentHeight() int {
	h := m.height / 3
	if h < 4 {
		h = 4
	}
	return h
}

// CharCount returns the rune length of a block's content, the figure shown
// under the editor.
func CharCount(content string) int {
	return len([]rune(strings.ReplaceAll(content, "\r\n", "\n")))
}
