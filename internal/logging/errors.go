package logging

import "github.com/ayoisaiah/focustab/internal/apperr"

var errLogDir = &apperr.Error{
	Message: "unable to create the log directory for %s",
}
