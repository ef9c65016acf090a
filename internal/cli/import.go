package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wrenhold/commute/internal/models"
)

type ImportCmd struct {
	File string `arg:"" help:"JSON schedule file to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	// Malformed JSON leaves the collection untouched
	var candidates []models.CommuteEntry
	if err := json.Unmarshal(data, &candidates); err != nil {
		return fmt.Errorf("failed to import file, invalid JSON: %w", err)
	}

	added, skipped, err := ctx.Store.ImportMerge(candidates)
	if err != nil {
		return err
	}

	fmt.Printf("Schedule imported: %d added, %d skipped\n", added, skipped)
	return nil
}
