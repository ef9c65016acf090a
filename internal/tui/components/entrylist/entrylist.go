package entrylist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wrenhold/commute/internal/countdown"
	"github.com/wrenhold/commute/internal/models"
)

type AddEntryMsg struct{}

type EditEntryMsg struct {
	Entry models.CommuteEntry
}

type DeleteEntryMsg struct {
	ID string
}

type ToggleEntryMsg struct {
	ID string
}

type Item struct {
	Entry  models.CommuteEntry
	Now    time.Time
	NextUp bool
}

func (i Item) Title() string {
	title := fmt.Sprintf("%s  %s", i.Entry.Name, i.Entry.DepartureTime)
	if i.NextUp {
		title = "🚌 " + title + "  [NEXT UP]"
	}
	if !i.Entry.IsActive {
		title = "[paused] " + title
	}
	return title
}

func (i Item) Description() string {
	text, urgent := countdown.Describe(i.Entry, i.Now)
	if urgent {
		return "⚠ " + text
	}
	return text
}

func (i Item) FilterValue() string { return i.Entry.Name }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "pause/resume"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []models.CommuteEntry, now time.Time, width, height int) Model {
	l := list.New(buildItems(entries, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Commutes"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Toggle}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Toggle}
	}

	return Model{list: l, keys: keys}
}

// SetEntries rebuilds the list items against the given instant, preserving
// the cursor position.
func (m *Model) SetEntries(entries []models.CommuteEntry, now time.Time) {
	selected := m.list.Index()
	m.list.SetItems(buildItems(entries, now))
	if selected < len(entries) {
		m.list.Select(selected)
	}
}

func buildItems(entries []models.CommuteEntry, now time.Time) []list.Item {
	nextUpID, _ := countdown.NextUp(entries, now)
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e, Now: now, NextUp: e.ID == nextUpID}
	}
	return items
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddEntryMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditEntryMsg{Entry: i.Entry} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleEntryMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No commutes yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
