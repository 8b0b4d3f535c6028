package sound

import "github.com/ayoisaiah/focustab/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file %s must be in mp3, ogg, flac, or wav format",
	}

	errReadSound = &apperr.Error{
		Message: "unable to read sound file %s",
	}

	errSpeaker = &apperr.Error{
		Message: "audio output unavailable",
	}
)
