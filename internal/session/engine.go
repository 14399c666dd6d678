package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/personaplus/plus/internal/objective"
)

// Engine drives a session through its laps. Time only moves when Tick is
// called, so the caller owns the clock. An Engine is not safe for concurrent
// use.
type Engine struct {
	completionErr  error
	repo           Repository
	logger         *slog.Logger
	now            func() time.Time
	startTime      time.Time
	endTime        time.Time
	obj            objective.Objective
	timeline       []Timeline
	lapLength      time.Duration
	remaining      time.Duration
	elapsed        time.Duration
	state          State
	lapsRemaining  int
	restsRemaining int
	laps           int
	cancelPending  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger of the engine.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithClock overrides the wall clock used for the session timeline.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Start looks up the objective with the given id and returns a running
// engine for it.
func Start(
	ctx context.Context,
	repo Repository,
	id int,
	opts ...Option,
) (*Engine, error) {
	o, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, objective.ErrNotFound) {
			return nil, ErrObjectiveNotFound.Fmt(id).Wrap(err)
		}

		return nil, err
	}

	e := &Engine{
		repo:           repo,
		logger:         slog.Default(),
		now:            time.Now,
		obj:            o,
		state:          Running,
		lapLength:      o.LapLength(),
		remaining:      o.LapLength(),
		lapsRemaining:  o.Repetitions,
		restsRemaining: o.Rests,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.startTime = e.now()
	e.openSegment()

	e.logger.InfoContext(
		ctx,
		"session started",
		slog.Int("objective", o.ID),
		slog.String("exercise", string(o.Exercise)),
		slog.Int("repetitions", o.Repetitions),
		slog.Duration("lap", e.lapLength),
	)

	return e, nil
}

func (e *Engine) openSegment() {
	t := e.now()
	e.timeline = append(e.timeline, Timeline{StartTime: t, EndTime: t})
}

func (e *Engine) closeSegment() {
	if e.state != Running || len(e.timeline) == 0 {
		return
	}

	e.timeline[len(e.timeline)-1].EndTime = e.now()
}

// Tick advances the countdown by d. It is ignored unless the session is
// running and no cancellation is awaiting confirmation.
func (e *Engine) Tick(ctx context.Context, d time.Duration) Event {
	if e.state != Running || e.cancelPending || d <= 0 {
		return EventNone
	}

	step := min(d, e.remaining)
	e.elapsed += step
	e.remaining -= step

	if e.remaining > 0 {
		return EventTick
	}

	return e.CompleteLap(ctx)
}

// CompleteLap ends the current lap. Once no laps remain the session is
// completed and the objective is marked as done.
func (e *Engine) CompleteLap(ctx context.Context) Event {
	if e.Terminal() {
		return EventNone
	}

	e.laps++

	if e.lapsRemaining > 0 {
		e.lapsRemaining--
	}

	if e.lapsRemaining == 0 {
		e.complete(ctx)
		return EventCompleted
	}

	e.remaining = e.lapLength

	e.logger.DebugContext(
		ctx,
		"lap completed",
		slog.Int("objective", e.obj.ID),
		slog.Int("laps_remaining", e.lapsRemaining),
	)

	return EventLap
}

func (e *Engine) complete(ctx context.Context) {
	e.closeSegment()
	e.state = Completed
	e.cancelPending = false
	e.remaining = 0
	e.endTime = e.now()

	_, err := e.repo.MarkDone(ctx, e.obj.ID)
	if err != nil {
		e.completionErr = err

		e.logger.ErrorContext(
			ctx,
			"session completed but the objective could not be marked as done",
			slog.Int("objective", e.obj.ID),
			slog.Any("error", err),
		)

		return
	}

	e.logger.InfoContext(
		ctx,
		"session completed",
		slog.Int("objective", e.obj.ID),
		slog.Duration("elapsed", e.elapsed),
	)
}

// TogglePause switches between running and paused.
func (e *Engine) TogglePause() {
	switch e.state {
	case Running:
		e.closeSegment()
		e.state = Paused
	case Paused:
		e.state = Running
		e.openSegment()
	}
}

// OpenHelp pauses the session while help is shown.
func (e *Engine) OpenHelp() {
	if e.state != Running && e.state != Paused {
		return
	}

	e.closeSegment()
	e.state = HelpPaused
}

// CloseHelp dismisses help and resumes the session, even if it was paused
// when help was opened.
func (e *Engine) CloseHelp() {
	if e.state != HelpPaused {
		return
	}

	e.state = Running
	e.openSegment()
}

// RequestCancel asks for the session to be abandoned. Nothing happens until
// the request is confirmed.
func (e *Engine) RequestCancel() {
	if e.Terminal() {
		return
	}

	e.cancelPending = true
}

// AbortCancel withdraws a pending cancellation.
func (e *Engine) AbortCancel() {
	e.cancelPending = false
}

// ConfirmCancel abandons the session. The objective is left untouched.
func (e *Engine) ConfirmCancel() error {
	if !e.cancelPending {
		return ErrCancelNotRequested
	}

	e.closeSegment()
	e.cancelPending = false
	e.state = Cancelled
	e.endTime = e.now()

	e.logger.Info(
		"session cancelled",
		slog.Int("objective", e.obj.ID),
		slog.Duration("elapsed", e.elapsed),
	)

	return nil
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Objective returns the objective the session runs for.
func (e *Engine) Objective() objective.Objective {
	return e.obj
}

// LapsRemaining returns the number of laps left before completion.
func (e *Engine) LapsRemaining() int {
	return e.lapsRemaining
}

// RestsRemaining returns the rests of the objective. Laps never consume them.
func (e *Engine) RestsRemaining() int {
	return e.restsRemaining
}

// Remaining returns the time left in the current lap.
func (e *Engine) Remaining() time.Duration {
	return e.remaining
}

// LapLength returns the length of a lap.
func (e *Engine) LapLength() time.Duration {
	return e.lapLength
}

// Elapsed returns the running time accumulated over all laps.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// Progress returns how far the current lap is, between 0 and 1.
func (e *Engine) Progress() float64 {
	if e.lapLength <= 0 || e.state == Completed {
		return 1
	}

	return 1 - float64(e.remaining)/float64(e.lapLength)
}

// CancelPending reports whether a cancellation awaits confirmation.
func (e *Engine) CancelPending() bool {
	return e.cancelPending
}

// Terminal reports whether the session has ended.
func (e *Engine) Terminal() bool {
	return e.state == Completed || e.state == Cancelled
}

// CompletionErr returns the error that prevented the objective from being
// marked as done, if any.
func (e *Engine) CompletionErr() error {
	return e.completionErr
}

// Record summarises the session so far.
func (e *Engine) Record() Record {
	timeline := make([]Timeline, len(e.timeline))
	copy(timeline, e.timeline)

	end := e.endTime
	if end.IsZero() {
		end = e.now()
	}

	return Record{
		StartTime:   e.startTime,
		EndTime:     end,
		Exercise:    e.obj.Exercise,
		Timeline:    timeline,
		ObjectiveID: e.obj.ID,
		Laps:        e.laps,
		Completed:   e.state == Completed,
	}
}
