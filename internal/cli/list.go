package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/wrenhold/commute/internal/countdown"
	"github.com/wrenhold/commute/internal/utils"
)

type ListCmd struct {
	ActiveOnly bool `help:"Show only entries with reminders enabled."`
}

func (c *ListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entries := ctx.Store.Entries()
	if len(entries) == 0 {
		fmt.Println("No commutes found")
		return nil
	}

	now := time.Now()
	nextUpID, _ := countdown.NextUp(entries, now)

	fmt.Printf("%-36s %-24s %-8s %-22s %-10s %s\n",
		"ID", "Name", "Time", "Days", "Reminder", "Countdown")
	fmt.Println(strings.Repeat("-", 118))

	for _, entry := range entries {
		if c.ActiveOnly && !entry.IsActive {
			continue
		}

		name := entry.Name
		if len(name) > 22 {
			name = name[:19] + "..."
		}
		if !entry.IsActive {
			name = "[paused] " + name
			if len(name) > 22 {
				name = name[:19] + "..."
			}
		}

		text, _ := countdown.Describe(entry, now)
		if entry.ID == nextUpID {
			text += "  << next up"
		}

		fmt.Printf("%-36s %-24s %-8s %-22s %-10s %s\n",
			entry.ID, name, entry.DepartureTime,
			utils.FormatWeekdays(entry.ActiveDays),
			fmt.Sprintf("%d min", entry.ReminderMin), text)
	}

	return nil
}
