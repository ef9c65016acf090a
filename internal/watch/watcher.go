// Package watch runs the reminder loop: a cancellable ticker that
// re-evaluates every entry against the current instant and fires each
// reminder exactly once.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/countdown"
	"github.com/wrenhold/commute/internal/logger"
	"github.com/wrenhold/commute/internal/models"
	"github.com/wrenhold/commute/internal/notifier"
)

// Notifier is the delivery collaborator; see internal/notifier.
type Notifier interface {
	Notify(title, body string) error
}

// EntrySource yields the entry snapshot evaluated on each tick.
type EntrySource interface {
	Entries() []models.CommuteEntry
}

type Watcher struct {
	source   EntrySource
	notifier Notifier
	interval time.Duration

	// fired keys (entryID|date|departure) suppress repeats across the
	// debounce window, which otherwise stays true for ~10 consecutive ticks
	fired     map[string]struct{}
	firedDate string
}

func New(source EntrySource, n Notifier, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = constants.WatchInterval
	}
	return &Watcher{
		source:   source,
		notifier: n,
		interval: interval,
		fired:    make(map[string]struct{}),
	}
}

// Run polls until the context is cancelled. The ticker is released on return.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Tick(time.Now())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			w.Tick(now)
		}
	}
}

// Tick evaluates all entries at the given instant and sends a notification
// for each entry whose reminder is due and has not fired yet. It returns the
// entries that fired.
func (w *Watcher) Tick(now time.Time) []models.CommuteEntry {
	w.pruneFired(now)

	var fired []models.CommuteEntry
	for _, entry := range w.source.Entries() {
		if !countdown.ShouldFireReminder(entry, now) {
			continue
		}

		key := fireKey(entry, now)
		if _, done := w.fired[key]; done {
			continue
		}
		w.fired[key] = struct{}{}
		fired = append(fired, entry)

		lead := entry.ReminderMin
		if lead <= 0 {
			lead = constants.DefaultReminderMin
		}
		body := fmt.Sprintf("Your %s leaves in %d minutes!", entry.Name, lead)
		if err := w.notifier.Notify("Time to leave!", body); err != nil {
			if errors.Is(err, notifier.ErrUnavailable) {
				logger.Debug("notification daemon unavailable", "entry", entry.ID)
			} else {
				logger.Warn("failed to send reminder", "entry", entry.ID, "error", err)
			}
			continue
		}
		logger.Info("reminder sent", "entry", entry.ID, "name", entry.Name)
	}

	return fired
}

// pruneFired drops keys from previous days so the set stays bounded.
func (w *Watcher) pruneFired(now time.Time) {
	date := now.Format(constants.DateFormat)
	if date != w.firedDate {
		w.fired = make(map[string]struct{})
		w.firedDate = date
	}
}

func fireKey(e models.CommuteEntry, now time.Time) string {
	return e.ID + "|" + now.Format(constants.DateFormat) + "|" + e.DepartureTime
}
