package cli

import "fmt"

type DeleteCmd struct {
	ID string `arg:"" help:"Entry ID to delete."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	entry, ok := ctx.Store.Get(c.ID)
	if !ok {
		fmt.Printf("No entry with ID %s\n", c.ID)
		return nil
	}

	if err := ctx.Store.Remove(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted commute: %s at %s\n", entry.Name, entry.DepartureTime)
	return nil
}
