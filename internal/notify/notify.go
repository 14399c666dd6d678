// Package notify delivers reminders as desktop notifications
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/google/uuid"

	"github.com/personaplus/plus/internal/apperr"
	"github.com/personaplus/plus/internal/reminder"
	"github.com/personaplus/plus/internal/timeutil"
)

var errInvalidTrigger = &apperr.Error{
	Message: "invalid trigger %02d:%02d",
}

// SendFunc displays a single notification.
type SendFunc func(title, body, icon string) error

// Desktop schedules notifications inside the running process and shows them
// with the desktop notification service once their trigger time arrives.
// Scheduled notifications do not survive the process.
type Desktop struct {
	send    SendFunc
	now     func() time.Time
	after   func(ctx context.Context, d time.Duration) error
	logger  *slog.Logger
	pending map[string]context.CancelFunc
	icon    string
	wg      sync.WaitGroup
	mu      sync.Mutex
}

// Option configures a Desktop notifier.
type Option func(*Desktop)

// WithSender replaces the function that displays notifications.
func WithSender(send SendFunc) Option {
	return func(d *Desktop) {
		d.send = send
	}
}

// WithClock overrides the clock used to compute trigger times.
func WithClock(now func() time.Time) Option {
	return func(d *Desktop) {
		d.now = now
	}
}

// WithAfter replaces the function used to wait for a trigger time.
func WithAfter(after func(ctx context.Context, d time.Duration) error) Option {
	return func(d *Desktop) {
		d.after = after
	}
}

// WithIcon sets the icon shown next to notifications.
func WithIcon(path string) Option {
	return func(d *Desktop) {
		d.icon = path
	}
}

// WithLogger sets the logger of the notifier.
func WithLogger(l *slog.Logger) Option {
	return func(d *Desktop) {
		d.logger = l
	}
}

// NewDesktop returns a notifier backed by the desktop notification service.
func NewDesktop(opts ...Option) *Desktop {
	d := &Desktop{
		send:    beeep.Notify,
		now:     time.Now,
		after:   timeutil.Sleep,
		logger:  slog.Default(),
		pending: make(map[string]context.CancelFunc),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NextOccurrence returns when a trigger fires next after now.
func NextOccurrence(now time.Time, t reminder.Trigger) time.Time {
	return timeutil.NextAt(now, t.Hour, t.Minute)
}

// Schedule arms n and returns its identifier. The notification keeps firing
// daily while its trigger repeats.
func (d *Desktop) Schedule(
	ctx context.Context,
	n reminder.Notification,
) (string, error) {
	if n.Trigger.Hour < 0 || n.Trigger.Hour > 23 ||
		n.Trigger.Minute < 0 || n.Trigger.Minute > 59 {
		return "", errInvalidTrigger.Fmt(n.Trigger.Hour, n.Trigger.Minute)
	}

	id := uuid.NewString()

	// the notification outlives the request that scheduled it
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	d.mu.Lock()
	d.pending[id] = cancel
	d.mu.Unlock()

	d.wg.Add(1)

	go d.run(runCtx, id, n)

	return id, nil
}

func (d *Desktop) run(ctx context.Context, id string, n reminder.Notification) {
	defer d.wg.Done()
	defer d.forget(id)

	for {
		now := d.now()
		next := NextOccurrence(now, n.Trigger)

		if err := d.after(ctx, next.Sub(now)); err != nil {
			return
		}

		err := d.send(n.Title, n.Body, d.icon)
		if err != nil {
			d.logger.Error(
				"unable to display notification",
				slog.String("id", id),
				slog.Any("error", err),
			)
		}

		if !n.Trigger.Repeats {
			return
		}
	}
}

func (d *Desktop) forget(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cancel, ok := d.pending[id]; ok {
		cancel()
		delete(d.pending, id)
	}
}

// Cancel disarms the notification with the given identifier. Unknown
// identifiers are ignored.
func (d *Desktop) Cancel(_ context.Context, id string) error {
	d.forget(id)
	return nil
}

// Pending returns the number of armed notifications.
func (d *Desktop) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.pending)
}

// Close disarms every notification and waits for them to wind down.
func (d *Desktop) Close() error {
	d.mu.Lock()

	for id, cancel := range d.pending {
		cancel()
		delete(d.pending, id)
	}

	d.mu.Unlock()

	d.wg.Wait()

	return nil
}
