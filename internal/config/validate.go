package config

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/personaplus/plus/store"
)

var (
	maxReminderCount = 10
	minPollInterval  = time.Second
	minTick          = 100 * time.Millisecond
	maxTick          = time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !slices.Contains(store.Drivers, c.Storage.Driver) {
		return errUnknownDriver.Fmt(
			c.Storage.Driver,
			strings.Join(store.Drivers, ", "),
		)
	}

	if err := c.validateReminders(); err != nil {
		return err
	}

	if c.Session.Tick < minTick || c.Session.Tick > maxTick {
		return errInvalidTick.Fmt(minTick, maxTick, c.Session.Tick)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateReminders() error {
	r := c.Reminders

	if r.Count < 0 || r.Count > maxReminderCount {
		return errInvalidCount.Fmt(0, maxReminderCount, r.Count)
	}

	if r.MinDelay <= 0 || r.MaxDelay < r.MinDelay {
		return errInvalidDelay.Fmt(r.MinDelay, r.MaxDelay)
	}

	if r.EarliestHour < 0 || r.LatestHour > 24 ||
		r.EarliestHour >= r.LatestHour {
		return errInvalidHours.Fmt(r.EarliestHour, r.LatestHour)
	}

	if r.PollInterval < minPollInterval {
		return errInvalidPoll.Fmt(minPollInterval, r.PollInterval)
	}

	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(c.Log.Level))
	if err != nil {
		return level, errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return level, nil
}
