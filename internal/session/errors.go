package session

import "github.com/personaplus/plus/internal/apperr"

var (
	// ErrObjectiveNotFound is returned when a session is started for an
	// objective that does not exist.
	ErrObjectiveNotFound = &apperr.Error{
		Message: "cannot start a session: objective %d does not exist",
	}

	// ErrCancelNotRequested is returned when a cancellation is confirmed
	// without being requested first.
	ErrCancelNotRequested = &apperr.Error{
		Message: "cancellation must be requested before it is confirmed",
	}
)
