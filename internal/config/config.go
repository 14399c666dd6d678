// Package config loads plus settings from the config file, the environment
// and command-line flags, in that order of precedence
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Storage   StorageConfig  `mapstructure:"storage"   envPrefix:"STORAGE_"`
		Log       LogConfig      `mapstructure:"log"       envPrefix:"LOG_"`
		Session   SessionConfig  `mapstructure:"session"   envPrefix:"SESSION_"`
		System    SystemConfig   `mapstructure:"-"`
		Reminders ReminderConfig `mapstructure:"reminders" envPrefix:"REMINDERS_"`
		Display   DisplayConfig  `mapstructure:"display"   envPrefix:"DISPLAY_"`
	}

	// StorageConfig selects the key-value store.
	StorageConfig struct {
		Driver string `mapstructure:"driver" env:"DRIVER"`
		// Path overrides the default location of the store
		Path string `mapstructure:"path" env:"PATH"`
	}

	// ReminderConfig holds reminder settings.
	ReminderConfig struct {
		Title        string        `mapstructure:"title"         env:"TITLE"`
		MinDelay     time.Duration `mapstructure:"min_delay"     env:"MIN_DELAY"`
		MaxDelay     time.Duration `mapstructure:"max_delay"     env:"MAX_DELAY"`
		PollInterval time.Duration `mapstructure:"poll_interval" env:"POLL_INTERVAL"`
		Count        int           `mapstructure:"count"         env:"COUNT"`
		EarliestHour int           `mapstructure:"earliest_hour" env:"EARLIEST_HOUR"`
		LatestHour   int           `mapstructure:"latest_hour"   env:"LATEST_HOUR"`
		Enabled      bool          `mapstructure:"enabled"       env:"ENABLED"`
	}

	// SessionConfig holds session timer settings.
	SessionConfig struct {
		// Cmd runs after a session is completed
		Cmd   string        `mapstructure:"cmd"   env:"CMD"`
		Tick  time.Duration `mapstructure:"tick"  env:"TICK"`
		Sound bool          `mapstructure:"sound" env:"SOUND"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme" env:"DARK_THEME"`
		TwentyFourHour bool `mapstructure:"24hr_clock" env:"24HR_CLOCK"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level" env:"LEVEL"`
		// Journal mirrors log records into the store
		Journal bool `mapstructure:"journal" env:"JOURNAL"`
	}

	// SystemConfig holds settings that are not read from the config file.
	SystemConfig struct {
		ConfigPath string
		Ephemeral  bool
		// Prompted is set once first-run answers are held in the config
		Prompted bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
