package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/personaplus/plus/store"
)

const asciiLogo = `
██████╗ ██╗     ██╗   ██╗███████╗
██╔══██╗██║     ██║   ██║██╔════╝
██████╔╝██║     ██║   ██║███████╗
██╔═══╝ ██║     ██║   ██║╚════██║
██║     ███████╗╚██████╔╝███████║
╚═╝     ╚══════╝ ╚═════╝ ╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Driver         string
	ReminderCount  int
	EnableReminder bool
}

// WithPromptConfig returns an Option that asks for the most important
// settings when no config file exists yet. It must run before
// WithViperConfig so that the answers end up in the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Driver:         store.DriverBolt,
		ReminderCount:  2,
		EnableReminder: true,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure plus for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'plus edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should objectives be stored?").
				Options(
					huh.NewOption("Single database file (bolt)", store.DriverBolt).Selected(true),
					huh.NewOption("One file per key (diskv)", store.DriverDiskv),
					huh.NewOption("SQLite database", store.DriverSQLite),
				).
				Value(&opts.Driver),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remind you of pending objectives?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.EnableReminder),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Reminders per day").
				Options(
					huh.NewOption("1 reminder", 1),
					huh.NewOption("2 reminders", 2).Selected(true),
					huh.NewOption("3 reminders", 3),
					huh.NewOption("5 reminders", 5),
				).
				Value(&opts.ReminderCount),
		).WithHideFunc(func() bool {
			return !opts.EnableReminder
		}),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Storage.Driver = opts.Driver
	c.Reminders.Enabled = opts.EnableReminder
	c.Reminders.Count = opts.ReminderCount
	c.System.Prompted = true

	return nil
}
