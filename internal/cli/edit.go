package cli

import (
	"fmt"

	"github.com/wrenhold/commute/internal/models"
	"github.com/wrenhold/commute/internal/utils"
)

type EditCmd struct {
	ID       string `arg:"" help:"Entry ID to edit."`
	Name     string `help:"New route name."`
	Time     string `short:"t" help:"New departure time (HH:MM)."`
	Days     string `short:"d" help:"New comma-separated active weekdays."`
	Reminder int    `short:"r" help:"New reminder lead time in minutes."`
}

func (c *EditCmd) Validate() error {
	if c.Time != "" {
		if _, err := utils.ParseTime(c.Time); err != nil {
			return fmt.Errorf("invalid time format (expected HH:MM): %w", err)
		}
	}
	if c.Name == "" && c.Time == "" && c.Days == "" && c.Reminder == 0 {
		return fmt.Errorf("nothing to change")
	}
	return nil
}

func (c *EditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Store.Get(c.ID); !ok {
		fmt.Printf("No entry with ID %s\n", c.ID)
		return nil
	}

	var patch models.EntryPatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Time != "" {
		patch.DepartureTime = &c.Time
	}
	if c.Days != "" {
		days, err := utils.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		patch.ActiveDays = days
	}
	if c.Reminder != 0 {
		if c.Reminder < 1 {
			return fmt.Errorf("reminder lead time must be at least 1 minute")
		}
		patch.ReminderMin = &c.Reminder
	}

	if err := ctx.Store.Update(c.ID, patch); err != nil {
		return err
	}

	updated, _ := ctx.Store.Get(c.ID)
	fmt.Printf("Updated commute: %s at %s on %s\n",
		updated.Name, updated.DepartureTime, utils.FormatWeekdays(updated.ActiveDays))
	return nil
}
