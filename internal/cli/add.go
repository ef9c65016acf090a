package cli

import (
	"fmt"

	"github.com/wrenhold/commute/internal/models"
	"github.com/wrenhold/commute/internal/utils"
)

type AddCmd struct {
	Name     string `arg:"" help:"Route name, e.g. \"Bus 42 to work\"."`
	Time     string `short:"t" help:"Departure time (HH:MM)." required:""`
	Days     string `short:"d" help:"Comma-separated active weekdays (e.g., mon,tue,wed or 1,2,3)." required:""`
	Reminder int    `short:"r" help:"Reminder lead time in minutes." default:"5"`
	Paused   bool   `help:"Create the entry with reminders paused."`
}

func (c *AddCmd) Validate() error {
	if _, err := utils.ParseTime(c.Time); err != nil {
		return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	if c.Reminder < 1 {
		return fmt.Errorf("reminder lead time must be at least 1 minute")
	}
	return nil
}

func (c *AddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	days, err := utils.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	entry, err := ctx.Store.Create(models.CommuteEntry{
		Name:          c.Name,
		DepartureTime: c.Time,
		ActiveDays:    days,
		IsActive:      !c.Paused,
		ReminderMin:   c.Reminder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added commute: %s at %s on %s (ID: %s)\n",
		entry.Name, entry.DepartureTime, utils.FormatWeekdays(entry.ActiveDays), entry.ID)
	return nil
}
