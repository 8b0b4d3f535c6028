package app

import "github.com/ayoisaiah/focustab/internal/apperr"

var (
	errRestore = &apperr.Error{
		Message: "unable to restore the focus session",
	}

	errReadHistory = &apperr.Error{
		Message: "unable to read the session history",
	}

	errInvalidFormat = &apperr.Error{
		Message: "invalid format %q: must be table, json, or yaml",
	}

	errEditConfig = &apperr.Error{
		Message: "unable to open the config file in %s",
	}
)
