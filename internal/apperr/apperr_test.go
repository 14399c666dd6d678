package apperr_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/personaplus/plus/internal/apperr"
)

var errSentinel = &apperr.Error{Message: "objective %d not found"}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSentinel.Fmt(42)

	assert.Equal(t, "objective 42 not found", err.Error())
	assert.ErrorIs(t, err, errSentinel)
}

func TestWrapExposesCause(t *testing.T) {
	err := errSentinel.Fmt(7).Wrap(io.ErrUnexpectedEOF)

	assert.ErrorIs(t, err, errSentinel)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "objective 7 not found: unexpected EOF", err.Error())
}

func TestDistinctSentinels(t *testing.T) {
	other := &apperr.Error{Message: "objective %d not found"}

	assert.False(t, errors.Is(errSentinel.Fmt(1), other))
}
