package notify_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personaplus/plus/internal/notify"
	"github.com/personaplus/plus/internal/reminder"
)

func TestNextOccurrence(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, time.June, 26, 14, 30, 0, 0, loc)

	testCases := []struct {
		Name    string
		Trigger reminder.Trigger
		Want    time.Time
	}{
		{
			Name:    "later today",
			Trigger: reminder.Trigger{Hour: 18, Minute: 5},
			Want:    time.Date(2024, time.June, 26, 18, 5, 0, 0, loc),
		},
		{
			Name:    "earlier in the day fires tomorrow",
			Trigger: reminder.Trigger{Hour: 11, Minute: 0},
			Want:    time.Date(2024, time.June, 27, 11, 0, 0, 0, loc),
		},
		{
			Name:    "the current minute fires tomorrow",
			Trigger: reminder.Trigger{Hour: 14, Minute: 30},
			Want:    time.Date(2024, time.June, 27, 14, 30, 0, 0, loc),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := notify.NextOccurrence(now, tc.Trigger)
			assert.True(t, tc.Want.Equal(got), "expected %s, but got: %s", tc.Want, got)
		})
	}
}

type recorder struct {
	sent chan string
}

func (r *recorder) send(title, body, _ string) error {
	r.sent <- title + ": " + body
	return nil
}

func newDesktop(r *recorder, after func(context.Context, time.Duration) error) *notify.Desktop {
	return notify.NewDesktop(
		notify.WithSender(r.send),
		notify.WithAfter(after),
		notify.WithClock(func() time.Time {
			return time.Date(2024, time.June, 26, 9, 0, 0, 0, time.UTC)
		}),
		notify.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestScheduleFiresAtTrigger(t *testing.T) {
	r := &recorder{sent: make(chan string, 1)}
	waits := make(chan time.Duration, 1)

	d := newDesktop(r, func(_ context.Context, d time.Duration) error {
		waits <- d
		return nil
	})

	id, err := d.Schedule(context.Background(), reminder.Notification{
		Title:   "Reminder",
		Body:    "move",
		Trigger: reminder.Trigger{Hour: 11, Minute: 15},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	assert.Equal(t, 2*time.Hour+15*time.Minute, <-waits)
	assert.Equal(t, "Reminder: move", <-r.sent)

	require.NoError(t, d.Close())
	assert.Equal(t, 0, d.Pending())
}

func TestCancelDisarms(t *testing.T) {
	r := &recorder{sent: make(chan string, 1)}
	var once sync.Once
	armed := make(chan struct{})

	d := newDesktop(r, func(ctx context.Context, _ time.Duration) error {
		once.Do(func() { close(armed) })
		<-ctx.Done()

		return ctx.Err()
	})

	id, err := d.Schedule(context.Background(), reminder.Notification{
		Title:   "Reminder",
		Trigger: reminder.Trigger{Hour: 12, Repeats: true},
	})
	require.NoError(t, err)

	<-armed
	assert.Equal(t, 1, d.Pending())

	require.NoError(t, d.Cancel(context.Background(), id))
	require.NoError(t, d.Cancel(context.Background(), "unknown"))
	require.NoError(t, d.Close())

	assert.Equal(t, 0, d.Pending())
	assert.Empty(t, r.sent)
}

func TestScheduleRejectsInvalidTrigger(t *testing.T) {
	d := newDesktop(&recorder{}, func(context.Context, time.Duration) error {
		return nil
	})

	_, err := d.Schedule(context.Background(), reminder.Notification{
		Trigger: reminder.Trigger{Hour: 24},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, d.Pending())
}
