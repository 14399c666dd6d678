package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	driverFlag = &cli.StringFlag{
		Name:  "driver",
		Usage: "Storage driver: bolt, diskv, sqlite or memory",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the store used by the storage driver",
	}

	ephemeralFlag = &cli.BoolFlag{
		Name:  "ephemeral",
		Usage: "Keep everything in memory for the duration of the command",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Minimum level of log records: debug, info, warn or error",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a completed session",
	}

	tickFlag = &cli.StringFlag{
		Name:  "tick",
		Usage: "How often the session timer updates (e.g. 1s)",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not play a chime at the end of laps and sessions",
	}

	allFlag = &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "Include objectives that are not due on the day",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "The name plus greets you with",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "Show the objectives of another day (e.g. 'tomorrow', 'next friday')",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	exerciseFlag = &cli.StringFlag{
		Name:    "exercise",
		Aliases: []string{"e"},
		Usage:   "Exercise kind: Meditation, Push Up, Lifting, Running or Walking",
	}

	durationFlag = &cli.IntFlag{
		Name:  "duration",
		Usage: "Length of a lap in minutes",
		Value: 10,
	}

	repsFlag = &cli.IntFlag{
		Name:  "reps",
		Usage: "Number of laps in a session",
		Value: 1,
	}

	restsFlag = &cli.IntFlag{
		Name:  "rests",
		Usage: "Number of rests in a session",
	}

	restDurationFlag = &cli.IntFlag{
		Name:  "rest-duration",
		Usage: "Length of a rest in minutes",
	}

	daysFlag = &cli.StringFlag{
		Name:  "days",
		Usage: "Comma-separated days the objective recurs on (e.g. mon,wed,fri). Defaults to every day",
	}

	amountFlag = &cli.IntFlag{
		Name:  "amount",
		Usage: "Push ups per lap",
	}

	handsFlag = &cli.IntFlag{
		Name:  "hands",
		Usage: "Hands used for push ups or lifting (1 or 2)",
		Value: 2,
	}

	barWeightFlag = &cli.Float64Flag{
		Name:  "bar-weight",
		Usage: "Weight of the bar in kilograms",
	}

	liftWeightFlag = &cli.Float64Flag{
		Name:  "lift-weight",
		Usage: "Weight lifted by each hand in kilograms",
	}

	liftsFlag = &cli.IntFlag{
		Name:  "lifts",
		Usage: "Lifts per lap",
	}

	speedFlag = &cli.IntFlag{
		Name:  "speed",
		Usage: "Running speed bracket, from 0 (brisk walk) to 11 (maximum speed)",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write to a file instead of the standard output",
	}

	clearFlag = &cli.BoolFlag{
		Name:  "clear",
		Usage: "Delete the journal after printing it",
	}
)
