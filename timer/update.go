package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/personaplus/plus/internal/session"
	"github.com/personaplus/plus/internal/sound"
)

// handleTick advances the session by one tick.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.engine.Terminal() {
		return m, nil
	}

	switch m.engine.Tick(m.ctx, m.tick) {
	case session.EventLap:
		return m, tea.Batch(m.tickCmd(), m.chime(sound.Lap))
	case session.EventCompleted:
		return m, m.onCompleted()
	}

	return m, m.tickCmd()
}

func (m *Model) onCompleted() tea.Cmd {
	m.confirm = nil
	m.message = completedMessage(m.rand)

	return m.postSession()
}

func (m *Model) chimeCompleted() tea.Cmd {
	return m.chime(sound.Completed)
}

// askCancel shows the dialog that confirms a cancellation.
func (m *Model) askCancel() tea.Cmd {
	m.engine.RequestCancel()

	m.giveUp = false
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Are you sure?").
				Description("The session will not count towards your objective.").
				Affirmative("Yes, I give up").
				Negative("Nevermind").
				Value(&m.giveUp),
		),
	).WithShowHelp(false)

	return m.confirm.Init()
}

// resolveCancel closes the confirmation dialog.
func (m *Model) resolveCancel(giveUp bool) tea.Cmd {
	m.confirm = nil

	if !giveUp {
		m.engine.AbortCancel()
		return nil
	}

	if err := m.engine.ConfirmCancel(); err != nil {
		m.logger.Warn("unable to cancel session", slog.Any("error", err))
		return nil
	}

	return tea.Quit
}

// abandon cancels the session without asking.
func (m *Model) abandon() tea.Cmd {
	if !m.engine.Terminal() {
		m.engine.RequestCancel()
		_ = m.engine.ConfirmCancel()
	}

	return tea.Quit
}

func (m *Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirm.Update(msg)

	f, ok := form.(*huh.Form)
	if !ok {
		return m, cmd
	}

	m.confirm = f

	switch m.confirm.State {
	case huh.StateCompleted:
		return m, m.resolveCancel(m.giveUp)
	case huh.StateAborted:
		return m, m.resolveCancel(false)
	}

	return m, cmd
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.abandon) {
		return m, m.abandon()
	}

	if m.engine.Terminal() {
		if key.Matches(msg, defaultKeymap.exit) {
			return m, tea.Quit
		}

		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	if m.engine.State() == session.HelpPaused {
		if key.Matches(msg, defaultKeymap.help, defaultKeymap.cancel) {
			m.engine.CloseHelp()
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		m.engine.TogglePause()
	case key.Matches(msg, defaultKeymap.help):
		m.engine.OpenHelp()
	case key.Matches(msg, defaultKeymap.cancel):
		return m, m.askCancel()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case soundMsg:
		if msg.err != nil {
			m.logger.Warn("unable to play sound", slog.Any("error", msg.err))
		}

		return m, nil

	case sessionCmdMsg:
		if msg.err != nil {
			m.logger.Error("session command failed", slog.Any("error", msg.err))
		}

		return m, nil

	case notifyMsg:
		if msg.err != nil {
			m.logger.Warn("unable to display notification", slog.Any("error", msg.err))
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	m.logger.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	return m, nil
}
