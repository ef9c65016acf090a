package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "commute"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/commute/commute.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultReminderMin is the lead time applied when an entry does not set one
	DefaultReminderMin = 5

	// DefaultUrgentThresholdMin drives emphasis styling when no lead time is configured
	DefaultUrgentThresholdMin = 15

	// ReminderDebounceSec bounds the firing window to the first seconds of the
	// target minute, given a once-per-second evaluation cadence
	ReminderDebounceSec = 10

	// WatchInterval is the default polling cadence for the reminder loop
	WatchInterval = time.Second

	// Notifier constants
	NotifierLockfileName   = "commute-notifyd.lock"
	NotifierExecutable     = "commute-notifyd"
	NotificationDurationMs = 5000

	// ExportFilePrefix is the stem of exported schedule files
	ExportFilePrefix = "commute-schedule-"

	// Session States
	StateList SessionState = iota
	StateEditing
	StateConfirmDelete
)
