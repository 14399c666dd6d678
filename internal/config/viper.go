package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/personaplus/plus/internal/reminder"
	"github.com/personaplus/plus/store"
)

// Keys of the config file.
const (
	keyStorageDriver         = "storage.driver"
	keyStoragePath           = "storage.path"
	keyRemindersEnabled      = "reminders.enabled"
	keyRemindersCount        = "reminders.count"
	keyRemindersMinDelay     = "reminders.min_delay"
	keyRemindersMaxDelay     = "reminders.max_delay"
	keyRemindersEarliestHour = "reminders.earliest_hour"
	keyRemindersLatestHour   = "reminders.latest_hour"
	keyRemindersTitle        = "reminders.title"
	keyRemindersPollInterval = "reminders.poll_interval"
	keySessionSound          = "session.sound"
	keySessionCmd            = "session.cmd"
	keySessionTick           = "session.tick"
	keyDarkTheme             = "display.dark_theme"
	keyTwentyFourHour        = "display.24hr_clock"
	keyLogLevel              = "log.level"
	keyLogJournal            = "log.journal"
)

// WithViperConfig returns an Option that loads configuration from the file
// at configPath. A file holding the defaults is written if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		c.System.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if c.System.Prompted {
			v.Set(keyStorageDriver, c.Storage.Driver)
			v.Set(keyRemindersEnabled, c.Reminders.Enabled)
			v.Set(keyRemindersCount, c.Reminders.Count)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// WithDefaults returns an Option that applies the default settings without
// touching the filesystem.
func WithDefaults() Option {
	return func(c *Config) error {
		v := viper.New()
		setDefaults(v)

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyStorageDriver, store.DriverBolt)
	v.SetDefault(keyStoragePath, "")
	v.SetDefault(keyRemindersEnabled, true)
	v.SetDefault(keyRemindersCount, 2)
	v.SetDefault(keyRemindersMinDelay, "30m")
	v.SetDefault(keyRemindersMaxDelay, "1h")
	v.SetDefault(keyRemindersEarliestHour, 11)
	v.SetDefault(keyRemindersLatestHour, 23)
	v.SetDefault(keyRemindersTitle, reminder.DefaultTitle)
	v.SetDefault(keyRemindersPollInterval, "1m")
	v.SetDefault(keySessionSound, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keySessionTick, "1s")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogJournal, true)
}

// loadViperConfig copies the settings held by v into c.
func loadViperConfig(v *viper.Viper, c *Config) error {
	err := v.Unmarshal(c)
	if err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
