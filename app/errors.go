package app

import "github.com/personaplus/plus/internal/apperr"

var (
	errMissingID = &apperr.Error{
		Message: "an objective id is required",
	}

	errInvalidID = &apperr.Error{
		Message: "invalid objective id: %s",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to understand the date %q",
	}

	errInvalidDay = &apperr.Error{
		Message: "unknown day %q, expected a day such as mon or tuesday",
	}

	errMissingFile = &apperr.Error{
		Message: "a file to import from is required",
	}

	errImport = &apperr.Error{
		Message: "unable to import objectives",
	}

	errEmptyName = &apperr.Error{
		Message: "the name cannot be empty",
	}

	errNotConfirmed = &apperr.Error{
		Message: "operation cancelled",
	}
)
