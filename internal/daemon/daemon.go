// Package daemon keeps reminders in step with the objective store while the
// process runs
package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/personaplus/plus/internal/objective"
)

const (
	defaultPollInterval = time.Minute
	stopTimeout         = 10 * time.Second
)

// Objectives is the part of the objective store the watcher needs.
type Objectives interface {
	Rollover(ctx context.Context, today time.Time) (*objective.Set, error)
}

// Scheduler is toggled by the number of pending objectives.
type Scheduler interface {
	Start(ctx context.Context, pending int) error
	Stop(ctx context.Context) error
}

// WatchFunc returns a channel that signals store changes.
type WatchFunc func(ctx context.Context) (<-chan struct{}, error)

// Watcher re-evaluates pending objectives whenever the store changes or the
// poll interval elapses, and turns reminders on or off accordingly.
type Watcher struct {
	objectives Objectives
	scheduler  Scheduler
	watch      WatchFunc
	now        func() time.Time
	logger     *slog.Logger
	poll       time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithWatch sets the source of store change signals.
func WithWatch(watch WatchFunc) Option {
	return func(w *Watcher) {
		w.watch = watch
	}
}

// WithPollInterval sets how often the store is re-read without a change
// signal. The poll also catches the change of day.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.poll = d
		}
	}
}

// WithClock overrides the clock.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		w.now = now
	}
}

// WithLogger sets the logger of the watcher.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = l
	}
}

// New returns a Watcher.
func New(objectives Objectives, scheduler Scheduler, opts ...Option) *Watcher {
	w := &Watcher{
		objectives: objectives,
		scheduler:  scheduler,
		now:        time.Now,
		logger:     slog.Default(),
		poll:       defaultPollInterval,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run evaluates the store until ctx is done. Reminders are stopped before it
// returns.
func (w *Watcher) Run(ctx context.Context) error {
	var changes <-chan struct{}

	if w.watch != nil {
		c, err := w.watch(ctx)
		if err != nil {
			w.logger.WarnContext(
				ctx,
				"unable to watch the store, falling back to polling",
				slog.Any("error", err),
				slog.Duration("poll", w.poll),
			)
		} else {
			changes = c
		}
	}

	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	w.Sync(ctx)

	for {
		select {
		case <-ctx.Done():
			stopCtx, cancel := context.WithTimeout(
				context.WithoutCancel(ctx),
				stopTimeout,
			)
			defer cancel()

			return w.scheduler.Stop(stopCtx)
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}

			w.Sync(ctx)
		case <-ticker.C:
			w.Sync(ctx)
		}
	}
}

// Sync resets objectives done on a previous day and starts or stops the
// scheduler depending on what is pending today.
func (w *Watcher) Sync(ctx context.Context) {
	now := w.now()

	set, err := w.objectives.Rollover(ctx, now)
	if err != nil {
		w.logger.ErrorContext(
			ctx,
			"unable to load objectives",
			slog.Any("error", err),
		)

		return
	}

	pending := objective.PendingToday(set, objective.WeekdayOf(now))

	w.logger.DebugContext(
		ctx,
		"evaluated pending objectives",
		slog.Int("pending", len(pending)),
		slog.Int("total", set.Len()),
	)

	err = w.scheduler.Start(ctx, len(pending))
	if err != nil {
		w.logger.ErrorContext(
			ctx,
			"unable to update reminders",
			slog.Any("error", err),
		)
	}
}
