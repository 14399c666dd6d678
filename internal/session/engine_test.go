package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/internal/session"
)

var errWrite = errors.New("write failed")

type fakeRepo struct {
	failDone   error
	objectives map[int]objective.Objective
	done       []int
}

func (r *fakeRepo) FindByID(_ context.Context, id int) (objective.Objective, error) {
	o, ok := r.objectives[id]
	if !ok {
		return objective.Objective{}, objective.ErrNotFound.Fmt(id)
	}

	return o, nil
}

func (r *fakeRepo) MarkDone(_ context.Context, id int) (*objective.Set, error) {
	r.done = append(r.done, id)

	if r.failDone != nil {
		return nil, r.failDone
	}

	return objective.NewSet(), nil
}

func newRepo(o objective.Objective) *fakeRepo {
	return &fakeRepo{objectives: map[int]objective.Objective{o.ID: o}}
}

func pushUps(reps int) objective.Objective {
	return objective.Objective{
		ID:           4,
		Exercise:     objective.PushUp,
		Detail:       objective.PushUpDetail{Amount: 10, Hands: 2},
		Duration:     1,
		Repetitions:  reps,
		Rests:        2,
		RestDuration: 1,
		Days:         objective.Week{true, true, true, true, true, true, true},
	}
}

func startEngine(t *testing.T, repo *fakeRepo, id int) *session.Engine {
	t.Helper()

	e, err := session.Start(
		context.Background(),
		repo,
		id,
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	return e
}

func TestStartMissingObjective(t *testing.T) {
	repo := newRepo(pushUps(1))

	e, err := session.Start(context.Background(), repo, 99)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, session.ErrObjectiveNotFound)
	assert.ErrorIs(t, err, objective.ErrNotFound)
}

func TestStartInitialState(t *testing.T) {
	e := startEngine(t, newRepo(pushUps(3)), 4)

	assert.Equal(t, session.Running, e.State())
	assert.Equal(t, 3, e.LapsRemaining())
	assert.Equal(t, 2, e.RestsRemaining())
	assert.Equal(t, time.Minute, e.LapLength())
	assert.Equal(t, time.Minute, e.Remaining())
	assert.InDelta(t, 0, e.Progress(), 0.0001)
}

func TestLapsUntilCompletion(t *testing.T) {
	testCases := []struct {
		Name  string
		Reps  int
		Fires int
	}{
		{Name: "three repetitions take three laps", Reps: 3, Fires: 3},
		{Name: "one repetition takes one lap", Reps: 1, Fires: 1},
		{Name: "zero repetitions complete on the first lap", Reps: 0, Fires: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(pushUps(tc.Reps))
			e := startEngine(t, repo, 4)

			for i := 1; i < tc.Fires; i++ {
				assert.Equal(t, session.EventLap, e.CompleteLap(ctx))
				assert.Equal(t, session.Running, e.State())
			}

			assert.Equal(t, session.EventCompleted, e.CompleteLap(ctx))
			assert.Equal(t, session.Completed, e.State())

			// further laps are ignored
			assert.Equal(t, session.EventNone, e.CompleteLap(ctx))
			assert.Equal(t, session.EventNone, e.Tick(ctx, time.Minute))
			assert.Equal(t, []int{4}, repo.done)
		})
	}
}

func TestLapsKeepRests(t *testing.T) {
	ctx := context.Background()
	e := startEngine(t, newRepo(pushUps(3)), 4)

	require.Equal(t, 2, e.RestsRemaining())

	assert.Equal(t, session.EventLap, e.CompleteLap(ctx))
	assert.Equal(t, session.EventLap, e.CompleteLap(ctx))

	assert.Equal(t, session.Running, e.State())
	assert.Equal(t, 1, e.LapsRemaining())
	assert.Equal(t, 2, e.RestsRemaining())
}

func TestTickDrivesLaps(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(pushUps(2))
	e := startEngine(t, repo, 4)

	for range 59 {
		require.Equal(t, session.EventTick, e.Tick(ctx, time.Second))
	}

	assert.Equal(t, time.Second, e.Remaining())
	assert.Equal(t, session.EventLap, e.Tick(ctx, time.Second))
	assert.Equal(t, time.Minute, e.Remaining())
	assert.Equal(t, 1, e.LapsRemaining())
	assert.Equal(t, 2, e.RestsRemaining())

	// an oversized tick does not overshoot the lap
	assert.Equal(t, session.EventCompleted, e.Tick(ctx, time.Hour))
	assert.Equal(t, 2*time.Minute, e.Elapsed())
	assert.Equal(t, []int{4}, repo.done)

	record := e.Record()
	assert.True(t, record.Completed)
	assert.Equal(t, 2, record.Laps)
	assert.Equal(t, 4, record.ObjectiveID)
}

func TestPauseIgnoresTicks(t *testing.T) {
	ctx := context.Background()
	e := startEngine(t, newRepo(pushUps(1)), 4)

	e.TogglePause()
	require.Equal(t, session.Paused, e.State())

	for range 120 {
		assert.Equal(t, session.EventNone, e.Tick(ctx, time.Second))
	}

	assert.Equal(t, time.Minute, e.Remaining())

	e.TogglePause()
	assert.Equal(t, session.Running, e.State())
	assert.Equal(t, session.EventTick, e.Tick(ctx, time.Second))
	assert.Equal(t, 59*time.Second, e.Remaining())
}

func TestHelpResumesSession(t *testing.T) {
	ctx := context.Background()

	for _, paused := range []bool{false, true} {
		e := startEngine(t, newRepo(pushUps(1)), 4)

		if paused {
			e.TogglePause()
		}

		e.OpenHelp()
		require.Equal(t, session.HelpPaused, e.State())
		assert.Equal(t, session.EventNone, e.Tick(ctx, time.Second))

		// pausing has no effect while help is shown
		e.TogglePause()
		assert.Equal(t, session.HelpPaused, e.State())

		e.CloseHelp()
		assert.Equal(t, session.Running, e.State(), "paused before help: %t", paused)
	}
}

func TestCancelNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(pushUps(2))
	e := startEngine(t, repo, 4)

	err := e.ConfirmCancel()
	assert.ErrorIs(t, err, session.ErrCancelNotRequested)
	assert.Equal(t, session.Running, e.State())

	e.RequestCancel()
	assert.True(t, e.CancelPending())
	assert.Equal(t, session.EventNone, e.Tick(ctx, time.Second))

	e.AbortCancel()
	assert.False(t, e.CancelPending())
	assert.Equal(t, session.Running, e.State())
	assert.Equal(t, session.EventTick, e.Tick(ctx, time.Second))

	e.RequestCancel()
	require.NoError(t, e.ConfirmCancel())

	assert.Equal(t, session.Cancelled, e.State())
	assert.True(t, e.Terminal())
	assert.Empty(t, repo.done, "a cancelled session must not mark the objective")
	assert.Equal(t, session.EventNone, e.CompleteLap(ctx))
	assert.False(t, e.Record().Completed)
}

func TestCompletionFailureKeepsCompletedState(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(pushUps(1))
	repo.failDone = objective.ErrStorageWrite.Wrap(errWrite)

	e := startEngine(t, repo, 4)

	assert.Equal(t, session.EventCompleted, e.CompleteLap(ctx))
	assert.Equal(t, session.Completed, e.State())
	assert.ErrorIs(t, e.CompletionErr(), objective.ErrStorageWrite)
	assert.Equal(t, []int{4}, repo.done)
}

func TestRecordExcludesPauses(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, time.June, 26, 8, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	e, err := session.Start(
		ctx,
		newRepo(pushUps(1)),
		4,
		session.WithClock(now),
		session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	clock = clock.Add(20 * time.Second)
	e.TogglePause()

	clock = clock.Add(5 * time.Minute)
	e.TogglePause()

	clock = clock.Add(40 * time.Second)
	e.CompleteLap(ctx)

	record := e.Record()
	assert.Equal(t, time.Minute, record.RunTime())
	assert.Len(t, record.Timeline, 2)
	assert.Equal(t, 6*time.Minute, record.EndTime.Sub(record.StartTime))
}
