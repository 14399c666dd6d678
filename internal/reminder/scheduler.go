// Package reminder schedules local notifications that nudge the user while
// objectives are still pending for the day
package reminder

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/personaplus/plus/internal/timeutil"
)

const (
	defaultIterations   = 2
	defaultMinDelay     = 30 * time.Minute
	defaultMaxDelay     = time.Hour
	defaultEarliestHour = 11
	defaultLatestHour   = 23
)

// closed is returned by Done when no loop was ever started.
var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)

	return c
}()

// Scheduler schedules a small batch of randomised reminders and cancels
// every one of them when asked to stop. The identifiers it scheduled are
// owned by the instance.
type Scheduler struct {
	notifier     Notifier
	logger       *slog.Logger
	rnd          *rand.Rand
	after        func(ctx context.Context, d time.Duration) error
	cancel       context.CancelFunc
	done         chan struct{}
	title        string
	messages     []string
	ids          []string
	iterations   int
	minDelay     time.Duration
	maxDelay     time.Duration
	earliestHour int
	latestHour   int
	active       bool
	mu           sync.Mutex
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithIterations sets how many reminders a single run schedules.
func WithIterations(n int) Option {
	return func(s *Scheduler) {
		s.iterations = n
	}
}

// WithDelayRange sets the bounds of the random pause between two reminders.
// The upper bound is exclusive.
func WithDelayRange(minDelay, maxDelay time.Duration) Option {
	return func(s *Scheduler) {
		s.minDelay = minDelay
		s.maxDelay = maxDelay
	}
}

// WithHourRange sets the hours of the day reminders may fire at. The upper
// bound is exclusive.
func WithHourRange(earliest, latest int) Option {
	return func(s *Scheduler) {
		s.earliestHour = earliest
		s.latestHour = latest
	}
}

// WithMessages replaces the message catalog.
func WithMessages(messages []string) Option {
	return func(s *Scheduler) {
		if len(messages) > 0 {
			s.messages = messages
		}
	}
}

// WithTitle sets the title of every reminder.
func WithTitle(title string) Option {
	return func(s *Scheduler) {
		if title != "" {
			s.title = title
		}
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Scheduler) {
		s.rnd = r
	}
}

// WithAfter replaces the delay between two reminders. after must return
// early with a non-nil error once ctx is done.
func WithAfter(after func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Scheduler) {
		s.after = after
	}
}

// WithLogger sets the logger of the scheduler.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = l
	}
}

// New returns a Scheduler that delivers reminders through notifier.
func New(notifier Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		notifier:     notifier,
		logger:       slog.Default(),
		after:        timeutil.Sleep,
		title:        DefaultTitle,
		messages:     Messages,
		iterations:   defaultIterations,
		minDelay:     defaultMinDelay,
		maxDelay:     defaultMaxDelay,
		earliestHour: defaultEarliestHour,
		latestHour:   defaultLatestHour,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rnd == nil {
		s.rnd = rand.New(
			rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano())),
		)
	}

	return s
}

// Start schedules reminders if pending objectives remain. A count of zero
// stops the scheduler instead. Starting an active scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context, pending int) error {
	if pending <= 0 {
		return s.Stop(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return nil
	}

	loopCtx, cancel := context.WithCancel(ctx)

	s.active = true
	s.cancel = cancel
	s.done = make(chan struct{})

	s.logger.InfoContext(
		ctx,
		"reminders enabled",
		slog.Int("pending", pending),
		slog.Int("iterations", s.iterations),
	)

	go s.loop(loopCtx, s.done)

	return nil
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for i := range s.iterations {
		if ctx.Err() != nil {
			return
		}

		n := Notification{
			Title: s.title,
			Body:  s.messages[s.rnd.IntN(len(s.messages))],
			Trigger: Trigger{
				Hour:    s.earliestHour + s.intN(s.latestHour-s.earliestHour),
				Minute:  s.rnd.IntN(60),
				Repeats: true,
			},
		}

		id, err := s.notifier.Schedule(ctx, n)
		if err != nil {
			s.logger.ErrorContext(
				ctx,
				"unable to schedule reminder",
				slog.Int("iteration", i),
				slog.Any("error", ErrNotifier.Wrap(err)),
			)
		} else {
			s.mu.Lock()
			s.ids = append(s.ids, id)
			s.mu.Unlock()

			s.logger.InfoContext(
				ctx,
				"reminder scheduled",
				slog.String("id", id),
				slog.Int("hour", n.Trigger.Hour),
				slog.Int("minute", n.Trigger.Minute),
			)
		}

		delay := s.minDelay + time.Duration(s.int64N(int64(s.maxDelay-s.minDelay)))

		if err := s.after(ctx, delay); err != nil {
			return
		}
	}
}

func (s *Scheduler) intN(n int) int {
	if n <= 0 {
		return 0
	}

	return s.rnd.IntN(n)
}

func (s *Scheduler) int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}

	return s.rnd.Int64N(n)
}

// Stop ends the scheduling loop, waits for it to exit and cancels every
// reminder scheduled so far. The identifier list is cleared even if some
// cancellations fail. Stopping an idle scheduler does nothing. If ctx ends
// before the loop has exited the scheduler stays active, so that Start does
// not launch a second loop, and a later Stop completes the work.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	if s.done == done {
		s.cancel = nil
		s.active = false
	}

	ids := s.ids
	s.ids = nil
	s.mu.Unlock()

	var errs []error

	for _, id := range ids {
		err := s.notifier.Cancel(ctx, id)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(ids) > 0 {
		s.logger.InfoContext(
			ctx,
			"reminders disabled",
			slog.Int("cancelled", len(ids)-len(errs)),
		)
	}

	if len(errs) > 0 {
		return ErrNotifier.Wrap(errors.Join(errs...))
	}

	return nil
}

// Running reports whether reminders are active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// Scheduled returns the identifiers of the reminders scheduled so far.
func (s *Scheduler) Scheduled() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)

	return ids
}

// Done returns a channel that is closed once the current scheduling loop has
// exited.
func (s *Scheduler) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done == nil {
		return closed
	}

	return s.done
}
