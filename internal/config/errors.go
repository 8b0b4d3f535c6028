package config

import "github.com/ayoisaiah/focustab/internal/apperr"

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

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %d and %d minutes",
	}

	errInvalidTimerMode = &apperr.Error{
		Message: "invalid timer mode %q: must be pomodoro or countup",
	}

	errInvalidDriver = &apperr.Error{
		Message: "invalid storage driver %q: must be bolt, sqlite, or redis",
	}

	errMissingRedisAddr = &apperr.Error{
		Message: "storage.redis_addr is required when the redis driver is selected",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level %q: must be debug, info, warn, or error",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to parse --since value %q",
	}
)
