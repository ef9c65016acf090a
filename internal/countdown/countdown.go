// Package countdown computes time-until-departure for schedule entries. All
// functions are pure over (entry, now); reminder dedupe state lives with the
// caller (see internal/watch).
package countdown

import (
	"fmt"
	"sort"
	"time"

	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/models"
)

// MinutesUntil returns the whole minutes remaining until today's departure at
// the given HH:MM time. ok is false when the departure instant is at or
// before now (already departed) or the time string does not parse. A
// departure is only ever evaluated against today's date, never tomorrow's.
func MinutesUntil(departure string, now time.Time) (int, bool) {
	t, err := time.Parse(constants.TimeFormat, departure)
	if err != nil {
		return 0, false
	}

	instant := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !instant.After(now) {
		return 0, false
	}

	return int(instant.Sub(now) / time.Minute), true
}

// ScheduledToday reports whether the entry runs on now's weekday.
func ScheduledToday(e models.CommuteEntry, now time.Time) bool {
	wd := now.Weekday()
	for _, d := range e.ActiveDays {
		if d == wd {
			return true
		}
	}
	return false
}

// ShouldFireReminder reports whether a reminder is due at this instant: the
// entry is active and scheduled today, the departure has not passed, the
// remaining minutes equal the configured lead time, and now falls in the
// first ReminderDebounceSec seconds of the minute. The predicate stays true
// across the whole debounce window; callers must dedupe.
func ShouldFireReminder(e models.CommuteEntry, now time.Time) bool {
	if !e.IsActive || !ScheduledToday(e, now) {
		return false
	}

	remaining, ok := MinutesUntil(e.DepartureTime, now)
	if !ok {
		return false
	}

	lead := e.ReminderMin
	if lead <= 0 {
		lead = constants.DefaultReminderMin
	}

	return remaining == lead && now.Second() < constants.ReminderDebounceSec
}

// NextUp selects the id of the soonest upcoming departure among entries that
// are active, scheduled today, and not yet departed. ok is false when no
// entry qualifies. Entries sharing a departure time keep their original
// relative order.
func NextUp(entries []models.CommuteEntry, now time.Time) (string, bool) {
	sorted := make([]models.CommuteEntry, len(entries))
	copy(sorted, entries)
	// Lexicographic HH:MM ordering is time-ordering-correct for 24h times.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DepartureTime < sorted[j].DepartureTime
	})

	for _, e := range sorted {
		if !e.IsActive || !ScheduledToday(e, now) {
			continue
		}
		if _, ok := MinutesUntil(e.DepartureTime, now); ok {
			return e.ID, true
		}
	}
	return "", false
}

// Describe renders the countdown text for an entry and whether it should be
// emphasized as urgent.
func Describe(e models.CommuteEntry, now time.Time) (string, bool) {
	if !ScheduledToday(e, now) {
		return "Not scheduled for today", false
	}

	remaining, ok := MinutesUntil(e.DepartureTime, now)
	if !ok {
		return "Departed", false
	}

	threshold := e.ReminderMin
	if threshold <= 0 {
		threshold = constants.DefaultUrgentThresholdMin
	}
	urgent := remaining <= threshold

	hours := remaining / 60
	mins := remaining % 60
	if hours > 0 {
		return fmt.Sprintf("Leaves in %dh %dm", hours, mins), urgent
	}
	return fmt.Sprintf("Leaves in %dm", mins), urgent
}
