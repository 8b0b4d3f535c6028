package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{
	Message: "%s duration must be between %d and %d minutes",
}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errSample.Fmt("focus", 1, 720)

	assert.Equal(t, "focus duration must be between 1 and 720 minutes", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.ErrorIs(t, err.Fmt(), errSample)
}

func TestWrapKeepsCause(t *testing.T) {
	base := &Error{Message: "reading config file failed"}

	err := base.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading config file failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, errors.Is(err, errSample))
}
