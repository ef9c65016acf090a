package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/wrenhold/commute/internal/constants"
	"github.com/wrenhold/commute/internal/notifier"
	"github.com/wrenhold/commute/internal/watch"
)

type WatchCmd struct {
	Interval time.Duration `help:"Polling cadence." default:"1s"`
	DryRun   bool          `help:"Print reminders to stdout instead of sending them."`
}

// dryRunNotifier prints instead of delivering.
type dryRunNotifier struct{}

func (dryRunNotifier) Notify(title, body string) error {
	fmt.Printf("[DryRun] %s %s\n", title, body)
	return nil
}

func (c *WatchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	var n watch.Notifier = notifier.New()
	if c.DryRun {
		n = dryRunNotifier{}
	}

	interval := c.Interval
	if interval <= 0 {
		interval = constants.WatchInterval
	}

	w := watch.New(ctx.Store, n, interval)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %d commutes (interval %s). Press Ctrl+C to stop.\n",
		len(ctx.Store.Entries()), interval)

	err := w.Run(runCtx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
