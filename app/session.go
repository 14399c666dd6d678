package app

import (
	"github.com/gen2brain/beeep"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/pathutil"
	"github.com/personaplus/plus/internal/session"
	"github.com/personaplus/plus/report"
	"github.com/personaplus/plus/timer"
)

// startAction runs a session for an objective in the terminal.
func (a *application) startAction(ctx *cli.Context) error {
	id, err := objectiveID(ctx)
	if err != nil {
		return err
	}

	engine, err := session.Start(
		ctx.Context,
		a.objectives,
		id,
		session.WithLogger(a.logger),
		session.WithClock(a.now),
	)
	if err != nil {
		return err
	}

	icon := pathutil.IconPath()

	record, err := timer.Run(
		ctx.Context,
		engine,
		a.cfg,
		timer.WithLogger(a.logger),
		timer.WithNotifier(func(title, body string) error {
			return beeep.Notify(title, body, icon)
		}),
	)
	if err != nil {
		return err
	}

	report.Session(record)

	return engine.CompletionErr()
}
