package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/notifier"
	"github.com/wrenhold/commute/internal/schedule"
	"github.com/wrenhold/commute/internal/tui/components/entrylist"
	"github.com/wrenhold/commute/internal/watch"
)

type EntryFormModel struct {
	Name     string
	Time     string
	Days     string
	Reminder string
	Active   bool
}

type Model struct {
	store           *schedule.Store
	watcher         *watch.Watcher
	state           constants.SessionState
	keys            KeyMap
	help            help.Model
	entryList       entrylist.Model
	form            *huh.Form
	entryForm       *EntryFormModel
	editingID       string
	entryToDeleteID string
	now             time.Time
	quitting        bool
	width           int
	height          int
	formError       string
}

func NewModel(store *schedule.Store) Model {
	now := time.Now()
	m := Model{
		store:     store,
		watcher:   watch.New(store, notifier.New(), constants.WatchInterval),
		state:     constants.StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		entryList: entrylist.New(store.Entries(), now, 0, 0),
		now:       now,
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Toggle, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Up, m.keys.Down, m.keys.Enter},
		{m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Toggle},
		{m.keys.Quit, m.keys.Help},
	}
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// refresh rebuilds the visible list from the store against m.now.
func (m *Model) refresh() {
	m.entryList.SetEntries(m.store.Entries(), m.now)
}
