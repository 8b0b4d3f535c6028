package server

import "github.com/ayoisaiah/focustab/internal/apperr"

var (
	errServe = &apperr.Error{
		Message: "the focus API stopped unexpectedly",
	}

	errInvalidBody = &apperr.Error{
		Message: "invalid request body",
	}

	errInvalidPhase = &apperr.Error{
		Message: "unknown phase %q",
	}

	errInvalidTimerMode = &apperr.Error{
		Message: "unknown timer mode %q",
	}

	errInvalidPomodoroPhase = &apperr.Error{
		Message: "unknown pomodoro phase %q",
	}

	errInvalidSeconds = &apperr.Error{
		Message: "seconds must be a non-negative integer",
	}

	errInvalidTime = &apperr.Error{
		Message: "%s must be an RFC 3339 timestamp",
	}

	errNoHistory = &apperr.Error{
		Message: "session history is not available",
	}

	errHistory = &apperr.Error{
		Message: "unable to read the session history",
	}
)
