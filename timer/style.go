package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the session view.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyle returns the styles for a dark or light terminal background.
func DefaultStyle(dark bool) Style {
	accent := lipgloss.Color("#1D9BF0")
	secondary := lipgloss.Color("#5C5C5C")
	hint := lipgloss.Color("#8A8A8A")

	if dark {
		accent = lipgloss.Color("#7DC4F5")
		secondary = lipgloss.Color("#D0D0D0")
		hint = lipgloss.Color("244")
	}

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Title:     lipgloss.NewStyle().Foreground(accent).Bold(true).MarginRight(1),
		Main:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint).MarginLeft(1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#E84855")),
		Help:      lipgloss.NewStyle().Foreground(secondary).Width(maxWidth),
	}
}
