package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/wrenhold/commute/internal/cli"
	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/errors"
	"github.com/wrenhold/commute/internal/logger"
	"github.com/wrenhold/commute/internal/schedule"
	"github.com/wrenhold/commute/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json for the JSON backend, anything else for SQLite)." type:"path" default:"~/.config/commute/commute.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize commute storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new commute entry."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit an existing commute entry."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a commute entry."`
	Toggle cli.ToggleCmd `cmd:"" help:"Pause or resume reminders for an entry."`
	List   cli.ListCmd   `cmd:"" help:"List all commute entries with countdowns."`
	Import cli.ImportCmd `cmd:"" help:"Merge a JSON schedule export into the collection."`
	Export cli.ExportCmd `cmd:"" help:"Export the schedule to a JSON file."`
	Watch  cli.WatchCmd  `cmd:"" help:"Run the headless reminder loop."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Recurring departure tracker / never miss your bus again"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Determine storage backend based on extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: schedule.NewStore(provider),
	}
	defer appCtx.Store.Close()

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
