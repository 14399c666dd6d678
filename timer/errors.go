package timer

import "github.com/personaplus/plus/internal/apperr"

var errParseSessionCmd = &apperr.Error{
	Message: "unable to parse the session command",
}
