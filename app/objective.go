package app

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/logging"
	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/report"
)

// confirm asks the user to press ENTER before going ahead. Any other answer
// than an empty line or "y" cancels.
func confirm(in io.Reader, out io.Writer, prompt string) error {
	warning := pterm.Warning.Sprint(prompt + ". Press ENTER to proceed")

	fmt.Fprint(out, warning)

	reader := bufio.NewReader(in)

	answer, _ := reader.ReadString('\n')

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return nil
	default:
		return errNotConfirmed
	}
}

// doneAction marks an objective as done without running a session.
func (a *application) doneAction(ctx *cli.Context) error {
	id, err := objectiveID(ctx)
	if err != nil {
		return err
	}

	_, err = a.objectives.MarkDone(ctx.Context, id)
	if err != nil {
		return err
	}

	logging.Success(ctx.Context, a.logger, "objective marked as done", slog.Int("objective", id))
	report.ObjectiveDone(id)

	return nil
}

// deleteAction removes an objective. It requests for confirmation before
// proceeding with the operation.
func (a *application) deleteAction(ctx *cli.Context) error {
	id, err := objectiveID(ctx)
	if err != nil {
		return err
	}

	o, err := a.objectives.FindByID(ctx.Context, id)
	if err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		set := objective.NewSet()
		set.Put("0", o)

		now := a.now()
		_, err = printObjectives(a.out, set, now, now, true)
		if err != nil {
			return err
		}

		err = confirm(a.in, a.out, "The above objective will be deleted permanently")
		if err != nil {
			return err
		}
	}

	_, err = a.objectives.Remove(ctx.Context, id)
	if err != nil {
		return err
	}

	report.ObjectiveDeleted(id)

	return nil
}

// parseDays reads a comma-separated list of day names. An empty list means
// every day.
func parseDays(s string) (objective.Week, error) {
	var w objective.Week

	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		for i := range w {
			w[i] = true
		}

		return w, nil
	}

	for _, name := range strings.Split(s, ",") {
		d, ok := parseDay(name)
		if !ok {
			return w, errInvalidDay.Fmt(strings.TrimSpace(name))
		}

		w[d] = true
	}

	return w, nil
}

func parseDay(name string) (objective.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) < 3 {
		return 0, false
	}

	for d := objective.Monday; d <= objective.Sunday; d++ {
		full := strings.ToLower(time.Weekday((int(d) + 1) % 7).String())
		if strings.HasPrefix(full, name) {
			return d, true
		}
	}

	return 0, false
}

// detailFromFlags builds the exercise detail of a new objective.
func detailFromFlags(ctx *cli.Context, e objective.Exercise) objective.ExerciseDetail {
	switch e {
	case objective.PushUp:
		return objective.PushUpDetail{
			Amount: ctx.Int("amount"),
			Hands:  ctx.Int("hands"),
		}
	case objective.Lifting:
		return objective.LiftingDetail{
			BarWeight:  ctx.Float64("bar-weight"),
			LiftWeight: ctx.Float64("lift-weight"),
			Hands:      ctx.Int("hands"),
			Lifts:      ctx.Int("lifts"),
		}
	case objective.Running:
		return objective.RunningDetail{SpeedBracket: ctx.Int("speed")}
	default:
		return objective.DefaultDetail(e)
	}
}

func objectiveFromFlags(ctx *cli.Context) (objective.Objective, error) {
	days, err := parseDays(ctx.String("days"))
	if err != nil {
		return objective.Objective{}, err
	}

	e := objective.ParseExercise(ctx.String("exercise"))

	return objective.Objective{
		Exercise:     e,
		Detail:       detailFromFlags(ctx, e),
		Duration:     ctx.Int("duration"),
		Repetitions:  ctx.Int("reps"),
		Rests:        ctx.Int("rests"),
		RestDuration: ctx.Int("rest-duration"),
		Days:         days,
	}, nil
}

// addAction creates an objective from flags, or from a form when no
// exercise is given.
func (a *application) addAction(ctx *cli.Context) error {
	var (
		o   objective.Objective
		err error
	)

	if ctx.String("exercise") != "" {
		o, err = objectiveFromFlags(ctx)
	} else {
		o, err = promptObjective()
	}

	if err != nil {
		return err
	}

	_, added, err := a.objectives.Add(ctx.Context, o)
	if err != nil {
		return err
	}

	report.ObjectiveAdded(added)

	return nil
}
