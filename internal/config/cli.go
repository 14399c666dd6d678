package config

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/store"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Driver     string
	DBPath     string
	SessionCmd string
	LogLevel   string
	Tick       string
	NoSound    bool
	Ephemeral  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Only flags that were set override the config.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Driver:     ctx.String("driver"),
			DBPath:     ctx.String("db"),
			SessionCmd: ctx.String("session-cmd"),
			LogLevel:   ctx.String("log-level"),
			Tick:       ctx.String("tick"),
			NoSound:    ctx.Bool("no-sound"),
			Ephemeral:  ctx.Bool("ephemeral"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Driver != "" {
		c.Storage.Driver = opts.Driver
	}

	if opts.DBPath != "" {
		c.Storage.Path = opts.DBPath
	}

	if opts.Ephemeral {
		c.System.Ephemeral = true
		c.Storage.Driver = store.DriverMemory
	}

	if opts.SessionCmd != "" {
		c.Session.Cmd = opts.SessionCmd
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.Tick != "" {
		tick, err := time.ParseDuration(opts.Tick)
		if err != nil {
			return errInvalidCLIDuration.Fmt("tick", err)
		}

		c.Session.Tick = tick
	}

	if opts.NoSound {
		c.Session.Sound = false
	}

	return nil
}
