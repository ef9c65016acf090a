package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/models"
	"github.com/wrenhold/commute/internal/tui/components/entrylist"
	"github.com/wrenhold/commute/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.entryList.SetSize(msg.Width-4, msg.Height-6)

	case TickMsg:
		m.now = time.Time(msg)
		m.watcher.Tick(m.now)
		m.refresh()
		return m, tick()
	}

	switch m.state {
	case constants.StateEditing:
		return m.updateEditing(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case entrylist.AddEntryMsg:
		m.editingID = ""
		m.entryForm = &EntryFormModel{Reminder: "5", Active: true}
		m.form = newEntryForm(m.entryForm)
		m.formError = ""
		m.state = constants.StateEditing
		return m, m.form.Init()

	case entrylist.EditEntryMsg:
		entry := msg.Entry
		m.editingID = entry.ID
		m.entryForm = &EntryFormModel{
			Name:     entry.Name,
			Time:     entry.DepartureTime,
			Days:     utils.FormatWeekdays(entry.ActiveDays),
			Reminder: strconv.Itoa(entry.ReminderMin),
			Active:   entry.IsActive,
		}
		m.form = newEntryForm(m.entryForm)
		m.formError = ""
		m.state = constants.StateEditing
		return m, m.form.Init()

	case entrylist.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil

	case entrylist.ToggleEntryMsg:
		if err := m.store.ToggleActive(msg.ID); err != nil {
			m.formError = err.Error()
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.entryList, cmd = m.entryList.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateList
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.applyEntryForm(); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		m.refresh()
		m.state = constants.StateList
	case huh.StateAborted:
		m.state = constants.StateList
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) applyEntryForm() error {
	days, err := utils.ParseWeekdays(m.entryForm.Days)
	if err != nil {
		return err
	}
	reminder, err := strconv.Atoi(strings.TrimSpace(m.entryForm.Reminder))
	if err != nil || reminder < 1 {
		return fmt.Errorf("reminder lead time must be a positive number of minutes")
	}

	if m.editingID == "" {
		_, err := m.store.Create(models.CommuteEntry{
			Name:          m.entryForm.Name,
			DepartureTime: m.entryForm.Time,
			ActiveDays:    days,
			IsActive:      m.entryForm.Active,
			ReminderMin:   reminder,
		})
		return err
	}

	return m.store.Update(m.editingID, models.EntryPatch{
		Name:          &m.entryForm.Name,
		DepartureTime: &m.entryForm.Time,
		ActiveDays:    days,
		IsActive:      &m.entryForm.Active,
		ReminderMin:   &reminder,
	})
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.store.Remove(m.entryToDeleteID); err != nil {
				m.formError = err.Error()
			}
			m.entryToDeleteID = ""
			m.refresh()
			m.state = constants.StateList
		case "n", "N", "esc":
			m.entryToDeleteID = ""
			m.state = constants.StateList
		}
	}
	return m, nil
}

func newEntryForm(f *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Route name, e.g. \"Bus 42 to work\"").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}).
				Value(&f.Name),
			huh.NewInput().
				Title("Departure time").
				Description("HH:MM, 24-hour").
				Validate(func(s string) error {
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("expected HH:MM")
					}
					return nil
				}).
				Value(&f.Time),
			huh.NewInput().
				Title("Active days").
				Description("Comma-separated, e.g. mon,tue,wed,thu,fri").
				Validate(func(s string) error {
					_, err := utils.ParseWeekdays(s)
					return err
				}).
				Value(&f.Days),
			huh.NewInput().
				Title("Reminder lead time").
				Description("Minutes before departure").
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("expected a positive number")
					}
					return nil
				}).
				Value(&f.Reminder),
			huh.NewConfirm().
				Title("Reminders enabled").
				Value(&f.Active),
		),
	)
}
