package timer

import (
	"context"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"
)

// runSessionCmd executes the specified command.
func runSessionCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, cmdSlice[0], cmdSlice[1:]...)

	return cmd.Run()
}

// postSession returns the commands that follow a completed session.
func (m *Model) postSession() tea.Cmd {
	cmds := []tea.Cmd{m.chimeCompleted()}

	if m.sessionCmd != "" {
		ctx, run, command := m.ctx, m.run, m.sessionCmd

		cmds = append(cmds, func() tea.Msg {
			return sessionCmdMsg{err: run(ctx, command)}
		})
	}

	if m.notify != nil {
		notify := m.notify
		title := string(m.engine.Objective().Exercise) + " session completed"
		body := m.message

		cmds = append(cmds, func() tea.Msg {
			return notifyMsg{err: notify(title, body)}
		})
	}

	return tea.Batch(cmds...)
}
