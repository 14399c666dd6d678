package objective

import "github.com/personaplus/plus/internal/apperr"

var (
	// ErrStorageRead is returned when the objective set cannot be read or
	// decoded.
	ErrStorageRead = &apperr.Error{
		Message: "unable to read objectives",
	}

	// ErrStorageWrite is returned when the objective set cannot be written.
	ErrStorageWrite = &apperr.Error{
		Message: "unable to save objectives",
	}

	// ErrNotFound is returned when no objective has the requested id.
	ErrNotFound = &apperr.Error{
		Message: "objective %d not found",
	}

	// ErrInvalidObjective is returned when an objective breaks one of its
	// invariants.
	ErrInvalidObjective = &apperr.Error{
		Message: "invalid objective",
	}

	errInvalidDays = &apperr.Error{
		Message: "days must have exactly 7 entries, got %d",
	}

	errInvalidID = &apperr.Error{
		Message: "objective id must be positive, got %d",
	}

	errInvalidDuration = &apperr.Error{
		Message: "duration must be at least one minute, got %d",
	}

	errNegativeCount = &apperr.Error{
		Message: "%s cannot be negative, got %d",
	}

	errMissingRestDuration = &apperr.Error{
		Message: "rest duration must be at least one minute when rests are set, got %d",
	}

	errInvalidSet = &apperr.Error{
		Message: "objective set must be a mapping of keys to objectives",
	}
)
