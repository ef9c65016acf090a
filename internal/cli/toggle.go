package cli

import "fmt"

type ToggleCmd struct {
	ID string `arg:"" help:"Entry ID to pause or resume."`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if _, ok := ctx.Store.Get(c.ID); !ok {
		fmt.Printf("No entry with ID %s\n", c.ID)
		return nil
	}

	if err := ctx.Store.ToggleActive(c.ID); err != nil {
		return err
	}

	entry, _ := ctx.Store.Get(c.ID)
	status := "paused"
	if entry.IsActive {
		status = "active"
	}
	fmt.Printf("Commute %s is now %s\n", entry.Name, status)
	return nil
}
