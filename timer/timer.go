// Package timer runs a session in the terminal
package timer

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/personaplus/plus/internal/config"
	"github.com/personaplus/plus/internal/session"
	"github.com/personaplus/plus/internal/sound"
)

type (
	tickMsg time.Time

	soundMsg struct {
		err error
	}

	sessionCmdMsg struct {
		err error
	}

	notifyMsg struct {
		err error
	}
)

// PlayFunc plays a chime.
type PlayFunc func(notes []sound.Note) error

// NotifyFunc shows a desktop notification.
type NotifyFunc func(title, body string) error

// RunFunc runs the command configured to follow a completed session.
type RunFunc func(ctx context.Context, command string) error

// Model is the bubbletea model of a running session.
type Model struct {
	ctx        context.Context
	engine     *session.Engine
	logger     *slog.Logger
	play       PlayFunc
	notify     NotifyFunc
	run        RunFunc
	rand       *rand.Rand
	every      func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	confirm    *huh.Form
	style      Style
	help       help.Model
	progress   progress.Model
	message    string
	sessionCmd string
	timeFormat string
	tick       time.Duration
	giveUp     bool
}

// Option configures a Model.
type Option func(*Model)

// WithPlayer replaces the function that plays chimes. A nil player mutes
// the session.
func WithPlayer(play PlayFunc) Option {
	return func(m *Model) {
		m.play = play
	}
}

// WithNotifier shows a desktop notification when the session is completed.
func WithNotifier(notify NotifyFunc) Option {
	return func(m *Model) {
		m.notify = notify
	}
}

// WithRunner replaces the function that runs the post-session command.
func WithRunner(run RunFunc) Option {
	return func(m *Model) {
		m.run = run
	}
}

// WithRand sets the source used to pick the completion message.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) {
		m.rand = r
	}
}

// WithLogger sets the logger of the model.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// New returns a model that drives engine using the session and display
// settings of cfg.
func New(
	ctx context.Context,
	engine *session.Engine,
	cfg *config.Config,
	opts ...Option,
) *Model {
	m := &Model{
		ctx:        ctx,
		engine:     engine,
		logger:     slog.Default(),
		run:        runSessionCmd,
		rand:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		every:      tea.Tick,
		style:      DefaultStyle(cfg.Display.DarkTheme),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient()),
		sessionCmd: cfg.Session.Cmd,
		timeFormat: "03:04:05 PM",
		tick:       cfg.Session.Tick,
	}

	if cfg.Display.TwentyFourHour {
		m.timeFormat = "15:04:05"
	}

	if m.tick <= 0 {
		m.tick = time.Second
	}

	if cfg.Session.Sound {
		m.play = sound.Play
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run shows the session until it is completed or abandoned and returns its
// record.
func Run(
	ctx context.Context,
	engine *session.Engine,
	cfg *config.Config,
	opts ...Option,
) (session.Record, error) {
	m := New(ctx, engine, cfg, opts...)

	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithInput(config.Stdin),
		tea.WithOutput(config.Stdout),
	)

	_, err := p.Run()

	return engine.Record(), err
}

func (m *Model) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd keeps ticking while the session is paused. The engine ignores
// ticks it should not count.
func (m *Model) tickCmd() tea.Cmd {
	return m.every(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) chime(notes []sound.Note) tea.Cmd {
	if m.play == nil {
		return nil
	}

	play := m.play

	return func() tea.Msg {
		return soundMsg{err: play(notes)}
	}
}
