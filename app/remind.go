package app

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/daemon"
	"github.com/personaplus/plus/internal/notify"
	"github.com/personaplus/plus/internal/pathutil"
	"github.com/personaplus/plus/internal/reminder"
	"github.com/personaplus/plus/store"
)

// watchDir returns the directory whose changes signal a store update.
func watchDir(driver, storagePath string) string {
	switch driver {
	case store.DriverMemory:
		return ""
	case store.DriverDiskv:
		return storagePath
	default:
		return filepath.Dir(storagePath)
	}
}

// remindAction runs in the foreground and sends reminders while objectives
// remain pending today. It stops on SIGINT or SIGTERM.
func (a *application) remindAction(ctx *cli.Context) error {
	if !a.cfg.Reminders.Enabled {
		pterm.Info.Println("Reminders are disabled in the config file")
		return nil
	}

	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	desktop := notify.NewDesktop(
		notify.WithIcon(pathutil.IconPath()),
		notify.WithLogger(a.logger),
	)
	defer desktop.Close()

	rc := a.cfg.Reminders

	scheduler := reminder.New(
		desktop,
		reminder.WithIterations(rc.Count),
		reminder.WithDelayRange(rc.MinDelay, rc.MaxDelay),
		reminder.WithHourRange(rc.EarliestHour, rc.LatestHour),
		reminder.WithTitle(rc.Title),
		reminder.WithLogger(a.logger),
	)

	opts := []daemon.Option{
		daemon.WithPollInterval(rc.PollInterval),
		daemon.WithClock(a.now),
		daemon.WithLogger(a.logger),
	}

	if dir := watchDir(a.cfg.Storage.Driver, a.storagePath); dir != "" {
		opts = append(opts, daemon.WithWatch(func(ctx context.Context) (<-chan struct{}, error) {
			return store.Watch(ctx, dir)
		}))
	}

	pterm.Info.Println("Reminding you of pending objectives. Press Ctrl+C to stop")

	return daemon.New(a.objectives, scheduler, opts...).Run(runCtx)
}
