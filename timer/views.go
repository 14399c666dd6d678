package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/personaplus/plus/internal/session"
	"github.com/personaplus/plus/internal/timeutil"
)

// formatTimeRemaining returns the time left in the lap formatted as "MM:SS".
func (m *Model) formatTimeRemaining() string {
	mins, secs := timeutil.SecsToMinsAndSecs(m.engine.Remaining().Seconds())

	return fmt.Sprintf("%02d:%02d", mins, secs)
}

func (m *Model) lapView() string {
	total := m.engine.Objective().Repetitions
	if total <= 0 {
		return "lap 1"
	}

	return fmt.Sprintf("lap %d/%d", total-m.engine.LapsRemaining()+1, total)
}

func (m *Model) headerView() string {
	var s strings.Builder

	o := m.engine.Objective()

	s.WriteString(m.style.Title.Render(o.Exercise.Activity()))

	if detail := o.DetailOrDefault().String(); detail != "" {
		s.WriteString(m.style.Secondary.Render(detail))
	}

	return s.String()
}

func (m *Model) timerView() string {
	var s strings.Builder

	s.WriteString(m.headerView())

	switch m.engine.State() {
	case session.Paused:
		s.WriteString(m.style.Hint.Render("[Paused]"))
	default:
		end := m.engine.Record().EndTime.Add(m.engine.Remaining())
		s.WriteString(m.style.Hint.Render("until " + end.Format(m.timeFormat)))
	}

	s.WriteString(m.style.Hint.Render("(" + m.lapView() + ")"))

	if rests := m.engine.RestsRemaining(); rests > 0 {
		s.WriteString(m.style.Hint.Render(fmt.Sprintf(
			"%d rests of %d mins",
			rests,
			m.engine.Objective().RestDuration,
		)))
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(m.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.engine.Progress()))

	return s.String()
}

func (m *Model) helpView() string {
	var s strings.Builder

	o := m.engine.Objective()

	s.WriteString(m.style.Title.Render("Help with " + strings.ToLower(string(o.Exercise))))
	s.WriteString("\n\n")
	s.WriteString(m.style.Help.Render(HelpText(o.Exercise)))
	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.help,
	}))

	return s.String()
}

func (m *Model) completedView() string {
	var s strings.Builder

	s.WriteString(m.style.Main.Render("Session completed"))
	s.WriteString("\n\n" + m.style.Secondary.Render(m.message))

	if err := m.engine.CompletionErr(); err != nil {
		s.WriteString("\n\n" + m.style.Error.Render(err.Error()))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.exit,
	}))

	return s.String()
}

func (m *Model) View() string {
	switch m.engine.State() {
	case session.Cancelled:
		return ""
	case session.Completed:
		return m.style.Base.Render(m.completedView())
	case session.HelpPaused:
		return m.style.Base.Render(m.helpView())
	}

	view := m.timerView()

	if m.confirm != nil {
		view += "\n\n" + m.confirm.View()
	} else {
		view += "\n\n" + m.help.View(defaultKeymap)
	}

	return m.style.Base.Render(view)
}
