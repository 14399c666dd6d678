package reminder

import "github.com/personaplus/plus/internal/apperr"

// ErrNotifier is returned when the notification facility fails to schedule
// or cancel a reminder.
var ErrNotifier = &apperr.Error{
	Message: "notification facility failed",
}
