package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/config"
	"github.com/personaplus/plus/internal/logging"
	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/internal/pathutil"
	"github.com/personaplus/plus/internal/ui"
	"github.com/personaplus/plus/store"
)

const (
	envNoColor     = "NO_COLOR"
	envPlusNoColor = "PLUS_NO_COLOR"
)

// application holds what the commands share once beforeAction has run.
type application struct {
	cfg        *config.Config
	kv         store.KV
	objectives *objective.Store
	// storagePath is where the store lives on disk, if anywhere
	storagePath string
	logger      *slog.Logger
	logCloser   io.Closer
	now         func() time.Time
	in          io.Reader
	out         io.Writer
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the plus app instance.
func Get() *cli.App {
	return newApp(&application{
		now: time.Now,
		in:  config.Stdin,
		out: config.Stdout,
	})
}

func newApp(a *application) *cli.App {
	idArg := "<objective id>"

	plusApp := &cli.App{
		Name: "plus",
		Usage: `
		Plus keeps track of recurring exercise objectives, times your sessions
		lap by lap and reminds you of what is still pending today.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the objectives due today",
				Flags:   []cli.Flag{allFlag, dateFlag},
				Action:  a.listAction,
			},
			{
				Name:      "start",
				Usage:     "Start a session for an objective",
				ArgsUsage: idArg,
				Action:    a.startAction,
			},
			{
				Name:      "done",
				Usage:     "Mark an objective as done for today",
				ArgsUsage: idArg,
				Action:    a.doneAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete an objective",
				ArgsUsage: idArg,
				Flags:     []cli.Flag{yesFlag},
				Action:    a.deleteAction,
			},
			{
				Name:  "add",
				Usage: "Add an objective. Without --exercise a form asks for the details",
				Flags: []cli.Flag{
					exerciseFlag,
					durationFlag,
					repsFlag,
					restsFlag,
					restDurationFlag,
					daysFlag,
					amountFlag,
					handsFlag,
					barWeightFlag,
					liftWeightFlag,
					liftsFlag,
					speedFlag,
				},
				Action: a.addAction,
			},
			{
				Name:   "profile",
				Usage:  "Show or set the name plus greets you with",
				Flags:  []cli.Flag{nameFlag},
				Action: a.profileAction,
			},
			{
				Name:   "remind",
				Usage:  "Send reminders while objectives are pending today",
				Action: a.remindAction,
			},
			{
				Name:   "export",
				Usage:  "Write the objectives as YAML",
				Flags:  []cli.Flag{outputFlag},
				Action: a.exportAction,
			},
			{
				Name:      "import",
				Usage:     "Replace the objectives with the ones in a YAML file",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{yesFlag},
				Action:    a.importAction,
			},
			{
				Name:   "logs",
				Usage:  "Print the journal of past events",
				Flags:  []cli.Flag{clearFlag},
				Action: a.logsAction,
			},
			{
				Name:   "reset",
				Usage:  "Delete every objective and the journal",
				Flags:  []cli.Flag{yesFlag},
				Action: a.resetAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: a.editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			driverFlag,
			dbFlag,
			ephemeralFlag,
			logLevelFlag,
			sessionCmdFlag,
			tickFlag,
			noSoundFlag,
			allFlag,
			dateFlag,
		},
		Action: a.listAction,
		Before: a.beforeAction,
		After:  a.afterAction,
	}

	return plusApp
}

func (a *application) beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PLUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envPlusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if ctx.Args().First() == "help" || ctx.Bool("help") {
		return nil
	}

	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	return a.open(ctx.Context, cfg)
}

// loadConfig layers the config file, the environment and the command-line
// flags. An ephemeral run never touches the config file.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if ctx.Bool("ephemeral") {
		return config.New(
			config.WithDefaults(),
			config.WithEnvConfig(),
			config.WithCLIConfig(ctx),
		)
	}

	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithEnvConfig(),
		config.WithCLIConfig(ctx),
	)
}

// open connects to the store described by cfg and sets up logging.
func (a *application) open(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg
	ui.DarkTheme = cfg.Display.DarkTheme

	storagePath := cfg.Storage.Path
	if storagePath == "" && cfg.Storage.Driver != store.DriverMemory {
		storagePath = pathutil.StoragePath(cfg.Storage.Driver)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	kv, err := store.Open(cfg.Storage.Driver, storagePath)
	if err != nil {
		return err
	}

	logOpts := logging.Options{
		Level: level,
	}

	if !cfg.System.Ephemeral {
		logOpts.Path = pathutil.LogFilePath()
	}

	if cfg.Log.Journal {
		logOpts.Journal = kv
	}

	logger, closer, err := logging.New(logOpts)
	if err != nil {
		_ = kv.Close()
		return err
	}

	slog.SetDefault(logger)

	a.kv = kv
	a.storagePath = storagePath
	a.logger = logger
	a.logCloser = closer
	a.objectives = objective.NewStore(
		kv,
		objective.WithClock(a.now),
		objective.WithStoreLogger(logger),
	)

	_, err = a.objectives.Rollover(ctx, a.now())

	return err
}

func (a *application) afterAction(ctx *cli.Context) error {
	if a.logger != nil {
		a.logger.DebugContext(ctx.Context, "exiting plus")
	}

	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}

	if a.kv != nil {
		return a.kv.Close()
	}

	return nil
}

// objectiveID parses the first argument as an objective id.
func objectiveID(ctx *cli.Context) (int, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return 0, errMissingID
	}

	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}
