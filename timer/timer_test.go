package timer

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personaplus/plus/internal/config"
	"github.com/personaplus/plus/internal/objective"
	"github.com/personaplus/plus/internal/session"
	"github.com/personaplus/plus/internal/sound"
	"github.com/personaplus/plus/store"
)

type harness struct {
	model    *Model
	store    *objective.Store
	played   [][]sound.Note
	ran      []string
	notified []string
	id       int
}

func pushUps(reps int) objective.Objective {
	return objective.Objective{
		Exercise:     objective.PushUp,
		Detail:       objective.PushUpDetail{Amount: 15, Hands: 2},
		Duration:     1,
		Repetitions:  reps,
		Rests:        1,
		RestDuration: 2,
		Days:         objective.Week{true, true, true, true, true, true, true},
	}
}

func newHarness(t *testing.T, o objective.Objective) *harness {
	t.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := objective.NewStore(store.NewMemory(), objective.WithStoreLogger(logger))

	_, added, err := s.Add(ctx, o)
	require.NoError(t, err)

	engine, err := session.Start(ctx, s, added.ID, session.WithLogger(logger))
	require.NoError(t, err)

	cfg := &config.Config{
		Session: config.SessionConfig{
			Cmd:  "echo done",
			Tick: 30 * time.Second,
		},
	}

	h := &harness{store: s, id: added.ID}

	h.model = New(
		ctx,
		engine,
		cfg,
		WithLogger(logger),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithPlayer(func(notes []sound.Note) error {
			h.played = append(h.played, notes)
			return nil
		}),
		WithRunner(func(_ context.Context, command string) error {
			h.ran = append(h.ran, command)
			return nil
		}),
		WithNotifier(func(title, _ string) error {
			h.notified = append(h.notified, title)
			return nil
		}),
	)

	h.model.every = func(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		return func() tea.Msg {
			return fn(time.Time{})
		}
	}

	return h
}

// runCmd runs cmd and every command it batches, returning the messages they
// produce.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, runCmd(c)...)
	}

	return msgs
}

func (h *harness) send(msg tea.Msg) []tea.Msg {
	_, cmd := h.model.Update(msg)
	return runCmd(cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func hasMsg[T any](msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(T); ok {
			return true
		}
	}

	return false
}

func TestInitTicks(t *testing.T) {
	h := newHarness(t, pushUps(1))

	msgs := runCmd(h.model.Init())
	assert.True(t, hasMsg[tickMsg](msgs))
}

func TestTicksCompleteSession(t *testing.T) {
	h := newHarness(t, pushUps(1))

	msgs := h.send(tickMsg{})
	assert.True(t, hasMsg[tickMsg](msgs))
	assert.Equal(t, session.Running, h.model.engine.State())
	assert.Equal(t, "00:30", h.model.formatTimeRemaining())

	msgs = h.send(tickMsg{})
	assert.False(t, hasMsg[tickMsg](msgs))
	assert.True(t, hasMsg[soundMsg](msgs))
	assert.Equal(t, session.Completed, h.model.engine.State())

	assert.Equal(t, [][]sound.Note{sound.Completed}, h.played)
	assert.Equal(t, []string{"echo done"}, h.ran)
	assert.Equal(t, []string{"Push Up session completed"}, h.notified)
	assert.Contains(t, completedMessages, h.model.message)

	o, err := h.store.FindByID(context.Background(), h.id)
	require.NoError(t, err)
	assert.True(t, o.WasDone)

	view := h.model.View()
	assert.Contains(t, view, "Session completed")
	assert.Contains(t, view, h.model.message)

	assert.Empty(t, h.send(tickMsg{}))
}

func TestLapPlaysChime(t *testing.T) {
	h := newHarness(t, pushUps(2))
	h.model.tick = time.Minute

	assert.Contains(t, h.model.View(), "lap 1/2")
	assert.Contains(t, h.model.View(), "1 rests of 2 mins")

	msgs := h.send(tickMsg{})
	assert.True(t, hasMsg[tickMsg](msgs))
	assert.Equal(t, [][]sound.Note{sound.Lap}, h.played)
	assert.Equal(t, 1, h.model.engine.LapsRemaining())
	assert.Contains(t, h.model.View(), "lap 2/2")
	assert.Contains(t, h.model.View(), "1 rests of 2 mins")
	assert.Empty(t, h.ran)
}

func TestMutedSession(t *testing.T) {
	h := newHarness(t, pushUps(1))
	h.model.play = nil
	h.model.tick = time.Minute

	msgs := h.send(tickMsg{})
	assert.False(t, hasMsg[soundMsg](msgs))
	assert.Empty(t, h.played)
	assert.Equal(t, session.Completed, h.model.engine.State())
}

func TestPauseKey(t *testing.T) {
	h := newHarness(t, pushUps(1))

	h.send(runes("p"))
	assert.Equal(t, session.Paused, h.model.engine.State())
	assert.Contains(t, h.model.View(), "[Paused]")

	msgs := h.send(tickMsg{})
	assert.True(t, hasMsg[tickMsg](msgs), "ticks keep flowing while paused")
	assert.Equal(t, time.Minute, h.model.engine.Remaining())

	h.send(runes("p"))
	assert.Equal(t, session.Running, h.model.engine.State())
}

func TestHelpKey(t *testing.T) {
	h := newHarness(t, pushUps(1))

	h.send(runes("p"))
	h.send(runes("?"))
	assert.Equal(t, session.HelpPaused, h.model.engine.State())

	view := h.model.View()
	assert.Contains(t, view, "Help with push up")
	assert.Contains(t, view, "plank")

	h.send(runes("p"))
	assert.Equal(t, session.HelpPaused, h.model.engine.State())

	h.send(runes("h"))
	assert.Equal(t, session.Running, h.model.engine.State())
}

func TestCancelNeedsConfirmation(t *testing.T) {
	h := newHarness(t, pushUps(1))

	h.model.Update(runes("q"))
	require.NotNil(t, h.model.confirm)
	assert.True(t, h.model.engine.CancelPending())

	h.send(tickMsg{})
	assert.Equal(t, time.Minute, h.model.engine.Remaining())

	assert.Nil(t, h.model.resolveCancel(false))
	assert.Nil(t, h.model.confirm)
	assert.False(t, h.model.engine.CancelPending())
	assert.Equal(t, session.Running, h.model.engine.State())

	h.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, h.model.confirm)

	msgs := runCmd(h.model.resolveCancel(true))
	assert.True(t, hasMsg[tea.QuitMsg](msgs))
	assert.Equal(t, session.Cancelled, h.model.engine.State())
	assert.Empty(t, h.model.View())

	o, err := h.store.FindByID(context.Background(), h.id)
	require.NoError(t, err)
	assert.False(t, o.WasDone)
	assert.Empty(t, h.ran)
}

func TestCtrlCAbandons(t *testing.T) {
	h := newHarness(t, pushUps(1))

	msgs := h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, hasMsg[tea.QuitMsg](msgs))
	assert.Equal(t, session.Cancelled, h.model.engine.State())
	assert.False(t, h.model.engine.Record().Completed)
}

func TestExitAfterCompletion(t *testing.T) {
	h := newHarness(t, pushUps(1))
	h.model.tick = time.Minute

	h.send(tickMsg{})
	require.Equal(t, session.Completed, h.model.engine.State())

	assert.Empty(t, h.send(runes("p")))

	msgs := h.send(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, hasMsg[tea.QuitMsg](msgs))
}

func TestWindowSizeCapsProgressWidth(t *testing.T) {
	h := newHarness(t, pushUps(1))

	h.send(tea.WindowSizeMsg{Width: 60})
	assert.Equal(t, 60-padding*2-4, h.model.progress.Width)

	h.send(tea.WindowSizeMsg{Width: 300})
	assert.Equal(t, maxWidth, h.model.progress.Width)
}

func TestHelpText(t *testing.T) {
	for _, e := range objective.Exercises {
		assert.NotEqual(t, noHelpText, HelpText(e), e)
	}

	assert.Equal(t, noHelpText, HelpText(objective.Exercise("Yoga")))
}

func TestRunSessionCmd(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, runSessionCmd(ctx, ""))
	assert.NoError(t, runSessionCmd(ctx, "   "))
	assert.ErrorIs(t, runSessionCmd(ctx, `echo "unterminated`), errParseSessionCmd)
}
