package notify

import "github.com/ayoisaiah/focustab/internal/apperr"

var (
	errPermission = &apperr.Error{
		Message: "notification permission not granted",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
