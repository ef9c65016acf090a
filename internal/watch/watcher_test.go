package watch

import (
	"errors"
	"testing"
	"time"

	"github.com/wrenhold/commute/internal/models"
	"github.com/wrenhold/commute/internal/notifier"
)

type stubSource struct {
	entries []models.CommuteEntry
}

func (s *stubSource) Entries() []models.CommuteEntry { return s.entries }

type recordingNotifier struct {
	titles []string
	bodies []string
	err    error
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return n.err
}

// 2026-03-04 is a Wednesday.
func wednesdayAt(hour, min, sec int) time.Time {
	return time.Date(2026, time.March, 4, hour, min, sec, 0, time.UTC)
}

func weekdayCommute() models.CommuteEntry {
	return models.CommuteEntry{
		ID:            "bus-42",
		Name:          "Bus 42 to work",
		DepartureTime: "09:00",
		ActiveDays:    []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		IsActive:      true,
		ReminderMin:   10,
	}
}

func TestTickFiresOncePerReminderWindow(t *testing.T) {
	source := &stubSource{entries: []models.CommuteEntry{weekdayCommute()}}
	n := &recordingNotifier{}
	w := New(source, n, time.Second)

	// The predicate is true for every second of the debounce window; only
	// the first tick may deliver.
	for sec := 0; sec < 10; sec++ {
		w.Tick(wednesdayAt(8, 50, sec))
	}

	if len(n.bodies) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(n.bodies))
	}
	if n.titles[0] != "Time to leave!" {
		t.Errorf("title = %q, want %q", n.titles[0], "Time to leave!")
	}
	if n.bodies[0] != "Your Bus 42 to work leaves in 10 minutes!" {
		t.Errorf("body = %q", n.bodies[0])
	}
}

func TestTickFiresAgainNextDay(t *testing.T) {
	source := &stubSource{entries: []models.CommuteEntry{weekdayCommute()}}
	n := &recordingNotifier{}
	w := New(source, n, time.Second)

	w.Tick(wednesdayAt(8, 50, 0))
	// Next active day, same wall-clock reminder instant
	w.Tick(time.Date(2026, time.March, 5, 8, 50, 0, 0, time.UTC))

	if len(n.bodies) != 2 {
		t.Errorf("notifications sent = %d, want 2 (one per day)", len(n.bodies))
	}
}

func TestTickOutsideWindowSendsNothing(t *testing.T) {
	source := &stubSource{entries: []models.CommuteEntry{weekdayCommute()}}
	n := &recordingNotifier{}
	w := New(source, n, time.Second)

	w.Tick(wednesdayAt(8, 49, 0))
	w.Tick(wednesdayAt(8, 50, 10))
	w.Tick(wednesdayAt(8, 51, 0))

	if len(n.bodies) != 0 {
		t.Errorf("notifications sent = %d, want 0", len(n.bodies))
	}
}

func TestTickMultipleEntries(t *testing.T) {
	first := weekdayCommute()
	second := weekdayCommute()
	second.ID = "train-7"
	second.Name = "Train 7"
	second.DepartureTime = "09:05"
	second.ReminderMin = 15

	source := &stubSource{entries: []models.CommuteEntry{first, second}}
	n := &recordingNotifier{}
	w := New(source, n, time.Second)

	// 08:50 is 10 min before the bus and 15 min before the train
	fired := w.Tick(wednesdayAt(8, 50, 2))

	if len(fired) != 2 {
		t.Fatalf("fired = %d entries, want 2", len(fired))
	}
	if len(n.bodies) != 2 {
		t.Errorf("notifications sent = %d, want 2", len(n.bodies))
	}
}

func TestTickDegradesWhenDaemonUnavailable(t *testing.T) {
	source := &stubSource{entries: []models.CommuteEntry{weekdayCommute()}}
	n := &recordingNotifier{err: notifier.ErrUnavailable}
	w := New(source, n, time.Second)

	fired := w.Tick(wednesdayAt(8, 50, 0))

	// Delivery failed but the reminder still counts as handled; the
	// debounce window must not retry it.
	if len(fired) != 1 {
		t.Fatalf("fired = %d entries, want 1", len(fired))
	}
	if got := w.Tick(wednesdayAt(8, 50, 1)); len(got) != 0 {
		t.Errorf("second tick fired %d entries, want 0", len(got))
	}
}

func TestTickOtherNotifyErrorsAreNonFatal(t *testing.T) {
	source := &stubSource{entries: []models.CommuteEntry{weekdayCommute()}}
	n := &recordingNotifier{err: errors.New("boom")}
	w := New(source, n, time.Second)

	if got := w.Tick(wednesdayAt(8, 50, 0)); len(got) != 1 {
		t.Errorf("fired = %d entries, want 1", len(got))
	}
}
