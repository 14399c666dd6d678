package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	dps "github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/internal/timeutil"
	"github.com/personaplus/plus/internal/ui"
	"github.com/personaplus/plus/store"
)

const noObjectivesMsg = "No objectives yet. Add one with `plus add`"

// parseDate understands dates such as "tomorrow" or "next friday" relative
// to now.
func parseDate(s string, now time.Time) (time.Time, error) {
	dt, err := dps.Parse(&dps.Configuration{CurrentTime: now}, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errInvalidDate.Fmt(s).Wrap(err)
	}

	return dt.Time, nil
}

// statusOn classifies o for day. Done flags only describe today, so any other
// day reports due objectives as pending.
func statusOn(o objective.Objective, day, today time.Time) objective.Status {
	s := objective.StatusOf(o, objective.WeekdayOf(day))

	if s == objective.Done && timeutil.DayKey(day) != timeutil.DayKey(today) {
		return objective.Pending
	}

	return s
}

func sessionSummary(o objective.Objective) string {
	s := fmt.Sprintf("%d × %dm", max(o.Repetitions, 1), o.Duration)

	if o.Rests > 0 {
		s += fmt.Sprintf(", %d × %dm rest", o.Rests, o.RestDuration)
	}

	return s
}

// printObjectives prints a table of the objectives of set for day.
func printObjectives(
	w io.Writer,
	set *objective.Set,
	day, today time.Time,
	all bool,
) (int, error) {
	var rows [][]string

	for _, o := range set.All() {
		status := statusOn(o, day, today)
		if status == objective.NotToday && !all {
			continue
		}

		rows = append(rows, []string{
			strconv.Itoa(o.ID),
			string(o.Exercise),
			o.DetailOrDefault().String(),
			sessionSummary(o),
			o.Days.String(),
			ui.Status(status),
		})
	}

	if len(rows) == 0 {
		return 0, nil
	}

	header := []string{"ID", "EXERCISE", "DETAIL", "SESSION", "DAYS", "STATUS"}

	return len(rows), ui.PrintTable(w, header, rows)
}

// listAction handles the list command and prints the objectives due on a day.
func (a *application) listAction(ctx *cli.Context) error {
	today := a.now()
	day := today

	if d := ctx.String("date"); d != "" {
		var err error

		day, err = parseDate(d, today)
		if err != nil {
			return err
		}
	}

	set, err := a.objectives.LoadAll(ctx.Context)
	if err != nil {
		return err
	}

	a.welcome(ctx.Context)

	if set.Len() == 0 {
		pterm.Info.Println(noObjectivesMsg)
		return nil
	}

	n, err := printObjectives(a.out, set, day, today, ctx.Bool("all"))
	if err != nil {
		return err
	}

	if n == 0 {
		pterm.Info.Printfln(
			"Nothing due on %s. Use --all to see every objective",
			day.Format("Monday, Jan 02"),
		)

		return nil
	}

	if timeutil.DayKey(day) != timeutil.DayKey(today) {
		return nil
	}

	weekday := objective.WeekdayOf(today)

	if objective.AllResolvedToday(set, weekday) {
		pterm.Success.Println("Everything is done for today")
	} else {
		pending := len(objective.PendingToday(set, weekday))
		pterm.Info.Printfln("%d objectives pending today", pending)
	}

	return nil
}

// welcome greets the user. The banner is only shown on first launch.
func (a *application) welcome(ctx context.Context) {
	pairs, err := a.kv.MultiGet(ctx, []string{
		store.KeyUsername,
		store.KeyObjectives,
		store.KeyHasLaunched,
	})
	if err != nil {
		a.logger.WarnContext(ctx, "unable to read launch state", slog.Any("error", err))
		return
	}

	username, launched := pairs[0], pairs[2]

	if username.Found && username.Value != "" {
		pterm.DefaultBasicText.Println("Hi, " + ui.Highlight(username.Value) + "!")
	}

	if launched.Found {
		return
	}

	pterm.DefaultHeader.WithFullWidth().Println("Welcome to plus")
	pterm.Info.Println(
		"Add recurring objectives, start a session when one is due and " +
			"run `plus remind` to be nudged about what is left.",
	)

	if !username.Found || username.Value == "" {
		pterm.Info.Println("Tell plus your name with `plus profile --name <name>`")
	}

	err = a.kv.Set(ctx, store.KeyHasLaunched, "true")
	if err != nil {
		a.logger.WarnContext(ctx, "unable to record first launch", slog.Any("error", err))
	}
}
