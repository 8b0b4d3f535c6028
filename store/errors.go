package store

import "github.com/ayoisaiah/focustab/internal/apperr"

var (
	// ErrInUse is returned when another focustab process holds the bolt
	// database.
	ErrInUse = &apperr.Error{
		Message: "is focustab already running? Only one instance can use the database at a time",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown storage driver %q: must be bolt, sqlite, or redis",
	}

	errOpenStore = &apperr.Error{
		Message: "unable to open %s store",
	}

	errMigrate = &apperr.Error{
		Message: "migration %d failed",
	}

	errDecode = &apperr.Error{
		Message: "stored %s is corrupt",
	}
)
