package static

import "github.com/ayoisaiah/focustab/internal/apperr"

var errInstall = &apperr.Error{
	Message: "unable to install bundled file %s",
}
