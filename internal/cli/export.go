package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/wrenhold/commute/internal/constants"
)

type ExportCmd struct {
	Out string `short:"o" help:"Output path. Defaults to commute-schedule-<date>.json in the working directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	path := c.Out
	if path == "" {
		path = constants.ExportFilePrefix + time.Now().Format(constants.DateFormat) + ".json"
	}

	snapshot := ctx.Store.ExportSnapshot()
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize schedule: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported %d commutes to %s\n", len(snapshot), path)
	return nil
}
