package reminder

import "context"

// Trigger is a time of day at which a notification fires.
type Trigger struct {
	Hour    int
	Minute  int
	Repeats bool
}

// Notification is a local notification request.
type Notification struct {
	Title   string
	Body    string
	Trigger Trigger
}

// Notifier delivers local notifications.
type Notifier interface {
	// Schedule registers n and returns an identifier that can be passed to
	// Cancel.
	Schedule(ctx context.Context, n Notification) (string, error)
	Cancel(ctx context.Context, id string) error
}

// DefaultTitle is the title of every reminder unless overridden.
const DefaultTitle = "Pending PersonaPlus objectives!"

// Messages is the catalog reminder bodies are drawn from.
var Messages = []string{
	"You know you got stuff to do!",
	"Daily objective means DAILY objective - go and do it!",
	"Time to give yourself a plus!",
	"You said you wanted to give yourself a plus - get up!",
	"The only difference between us and a regular task list? We're way more fun to check!",
	"I'm like your mom: I won't stop till' you make it.",
	"Give yourself a plus before, mute your phone after.",
	"The only notification that doesn't make you waste time.",
	"No, not another TikTok notification this time. Move your body!",
	"They're called 'objectives' for a reason: you have to accomplish them!",
	"No, I won't stop sending notifications until you stop ignoring your path to success",
	"Trust me, you'll feel better later.",
	"Just one more session pls, love u <3",
	"You downloaded this app for a reason. Don't give it up.",
	"It's that time again!",
}
