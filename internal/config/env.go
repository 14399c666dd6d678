package config

import "github.com/caarlos0/env/v11"

// EnvPrefix prefixes every environment variable read by WithEnvConfig, for
// example PLUS_STORAGE_DRIVER or PLUS_REMINDERS_COUNT.
const EnvPrefix = "PLUS_"

// WithEnvConfig returns an Option that overrides settings with PLUS_*
// environment variables. Unset variables leave the current value alone.
func WithEnvConfig() Option {
	return func(c *Config) error {
		err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix})
		if err != nil {
			return errParseEnv.Wrap(err)
		}

		return nil
	}
}
