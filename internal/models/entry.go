package models

import (
	"fmt"
	"time"

	"github.com/wrenhold/commute/internal/constants"
)

// CommuteEntry is one tracked recurring departure. JSON field names match the
// import/export file format.
type CommuteEntry struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	DepartureTime string         `json:"departureTime"` // HH:MM format
	ActiveDays    []time.Weekday `json:"activeDays"`    // 0=Sunday .. 6=Saturday
	IsActive      bool           `json:"isActive"`
	ReminderMin   int            `json:"reminderTime"` // minutes before departure
}

func (e *CommuteEntry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}

	if e.DepartureTime == "" {
		return fmt.Errorf("departure time cannot be empty")
	}

	// Validate time format (HH:MM)
	if _, err := time.Parse(constants.TimeFormat, e.DepartureTime); err != nil {
		return fmt.Errorf("invalid departure time format (expected HH:MM): %w", err)
	}

	if len(e.ActiveDays) == 0 {
		return fmt.Errorf("at least one active day must be specified")
	}
	for _, wd := range e.ActiveDays {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("invalid weekday: %d", wd)
		}
	}

	if e.ReminderMin <= 0 {
		return fmt.Errorf("reminder lead time must be positive")
	}

	return nil
}

// Clone returns a deep copy of the entry.
func (e CommuteEntry) Clone() CommuteEntry {
	c := e
	if e.ActiveDays != nil {
		c.ActiveDays = make([]time.Weekday, len(e.ActiveDays))
		copy(c.ActiveDays, e.ActiveDays)
	}
	return c
}

// EntryPatch carries partial field updates; nil fields are left untouched.
type EntryPatch struct {
	Name          *string
	DepartureTime *string
	ActiveDays    []time.Weekday
	IsActive      *bool
	ReminderMin   *int
}

// Apply merges the patch into the entry. The ID is never modified.
func (p EntryPatch) Apply(e *CommuteEntry) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.DepartureTime != nil {
		e.DepartureTime = *p.DepartureTime
	}
	if p.ActiveDays != nil {
		e.ActiveDays = make([]time.Weekday, len(p.ActiveDays))
		copy(e.ActiveDays, p.ActiveDays)
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.ReminderMin != nil {
		e.ReminderMin = *p.ReminderMin
	}
}
