package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/personaplus/plus/internal/config"
	"github.com/personaplus/plus/internal/reminder"
	"github.com/personaplus/plus/internal/testutil"
	"github.com/personaplus/plus/store"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig(configPath string) *config.Config {
	return &config.Config{
		Storage: config.StorageConfig{
			Driver: store.DriverBolt,
		},
		Reminders: config.ReminderConfig{
			Title:        reminder.DefaultTitle,
			MinDelay:     30 * time.Minute,
			MaxDelay:     time.Hour,
			PollInterval: time.Minute,
			Count:        2,
			EarliestHour: 11,
			LatestHour:   23,
			Enabled:      true,
		},
		Session: config.SessionConfig{
			Tick:  time.Second,
			Sound: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
		Log: config.LogConfig{
			Level:   "info",
			Journal: true,
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(configPath), cfg)

	_, err = os.Stat(configPath)
	require.NoError(t, err, "defaults must be written to a new config file")

	// reading the written file back yields the same settings
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		Storage: config.StorageConfig{
			Driver: store.DriverSQLite,
			Path:   "/tmp/plus-test.sqlite",
		},
		Reminders: config.ReminderConfig{
			Title:        "Objectives are waiting",
			MinDelay:     10 * time.Minute,
			MaxDelay:     20 * time.Minute,
			PollInterval: 30 * time.Second,
			Count:        3,
			EarliestHour: 9,
			LatestHour:   21,
		},
		Session: config.SessionConfig{
			Cmd:  "notify-send done",
			Tick: 500 * time.Millisecond,
		},
		Display: config.DisplayConfig{
			TwentyFourHour: true,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
		System: config.SystemConfig{
			ConfigPath: configPath,
		},
	}

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PLUS_STORAGE_DRIVER", "diskv")
	t.Setenv("PLUS_REMINDERS_COUNT", "5")
	t.Setenv("PLUS_REMINDERS_MIN_DELAY", "5m")
	t.Setenv("PLUS_SESSION_SOUND", "false")

	cfg, err := config.New(config.WithDefaults(), config.WithEnvConfig())
	require.NoError(t, err)

	assert.Equal(t, store.DriverDiskv, cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.Reminders.Count)
	assert.Equal(t, 5*time.Minute, cfg.Reminders.MinDelay)
	assert.Equal(t, time.Hour, cfg.Reminders.MaxDelay, "unset variables keep their value")
	assert.False(t, cfg.Session.Sound)
}

func TestCLIOverrides(t *testing.T) {
	f := flag.NewFlagSet("plus", flag.ContinueOnError)
	_ = f.String("driver", "", "")
	_ = f.String("tick", "", "")
	_ = f.Bool("ephemeral", false, "")
	_ = f.Bool("no-sound", false, "")

	require.NoError(t, f.Parse([]string{"--driver", "sqlite", "--tick", "2s", "--no-sound"}))

	ctx := cli.NewContext(&cli.App{}, f, nil)

	cfg, err := config.New(config.WithDefaults(), config.WithCLIConfig(ctx))
	require.NoError(t, err)

	assert.Equal(t, store.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 2*time.Second, cfg.Session.Tick)
	assert.False(t, cfg.Session.Sound)
	assert.False(t, cfg.System.Ephemeral)

	require.NoError(t, f.Set("ephemeral", "true"))

	cfg, err = config.New(config.WithDefaults(), config.WithCLIConfig(ctx))
	require.NoError(t, err)

	assert.True(t, cfg.System.Ephemeral)
	assert.Equal(t, store.DriverMemory, cfg.Storage.Driver)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Name   string
		Mutate func(c *config.Config)
	}{
		{
			Name:   "unknown driver",
			Mutate: func(c *config.Config) { c.Storage.Driver = "redis" },
		},
		{
			Name:   "too many reminders",
			Mutate: func(c *config.Config) { c.Reminders.Count = 11 },
		},
		{
			Name:   "inverted delays",
			Mutate: func(c *config.Config) { c.Reminders.MaxDelay = time.Minute },
		},
		{
			Name:   "inverted hours",
			Mutate: func(c *config.Config) { c.Reminders.EarliestHour = 23 },
		},
		{
			Name:   "hours past midnight",
			Mutate: func(c *config.Config) { c.Reminders.LatestHour = 25 },
		},
		{
			Name:   "tiny poll interval",
			Mutate: func(c *config.Config) { c.Reminders.PollInterval = time.Millisecond },
		},
		{
			Name:   "tick too long",
			Mutate: func(c *config.Config) { c.Session.Tick = time.Hour },
		},
		{
			Name:   "unknown log level",
			Mutate: func(c *config.Config) { c.Log.Level = "loud" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			c := defaultConfig("")
			require.NoError(t, c.Validate())

			tc.Mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
