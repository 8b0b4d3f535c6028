package focusmode

import "github.com/ayoisaiah/focustab/internal/apperr"

var errSessionCmd = &apperr.Error{
	Message: "unable to parse session command",
}
