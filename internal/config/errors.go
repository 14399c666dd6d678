package config

import "github.com/personaplus/plus/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errParseEnv = &apperr.Error{
		Message: "reading PLUS_* environment variables failed",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q (expected one of %s)",
	}

	errInvalidCount = &apperr.Error{
		Message: "reminder count must be between %d and %d, got %d",
	}

	errInvalidDelay = &apperr.Error{
		Message: "reminder delays must satisfy 0 < min_delay <= max_delay, got %v and %v",
	}

	errInvalidHours = &apperr.Error{
		Message: "reminder hours must satisfy 0 <= earliest_hour < latest_hour <= 24, got %d and %d",
	}

	errInvalidPoll = &apperr.Error{
		Message: "poll interval must be at least %v, got %v",
	}

	errInvalidTick = &apperr.Error{
		Message: "session tick must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid duration for --%s: %v",
	}
)
