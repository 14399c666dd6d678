// Package report prints the outcome of commands to the terminal
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/internal/osutil"
	"github.com/personaplus/plus/internal/session"
	"github.com/personaplus/plus/internal/ui"
)

func ObjectiveAdded(o objective.Objective) {
	pterm.Success.Printfln("objective %d added: %s", o.ID, describe(o))
}

func ObjectiveDone(id int) {
	pterm.Success.Printfln("objective %d marked as done for today", id)
}

func ObjectiveDeleted(id int) {
	pterm.Info.Printfln("objective %d deleted", id)
}

// Session summarises a finished or abandoned session.
func Session(r session.Record) {
	runTime := r.RunTime().Round(time.Second)

	if !r.Completed {
		pterm.Warning.Printfln(
			"%s session abandoned after %s",
			r.Exercise,
			runTime,
		)

		return
	}

	pterm.Success.Printfln(
		"%s session completed at %s: %d laps in %s",
		r.Exercise,
		ui.Highlight(r.EndTime.Format("15:04")),
		r.Laps,
		runTime,
	)
}

func describe(o objective.Objective) string {
	s := fmt.Sprintf("%s, %s", o.Exercise, o.Days)

	if detail := o.DetailOrDefault().String(); detail != "" {
		s += " (" + detail + ")"
	}

	return s
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with an error status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
