package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	help       key.Binding
	cancel     key.Binding
	abandon    key.Binding
	exit       key.Binding
}

// ShortHelp returns the bindings shown below a running session.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.help, k.cancel}
}

// FullHelp returns every binding.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.help},
		{k.cancel, k.abandon},
	}
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	help: key.NewBinding(
		key.WithKeys("h", "?"),
		key.WithHelp("h", "help"),
	),
	cancel: key.NewBinding(
		key.WithKeys("q", "esc"),
		key.WithHelp("q", "give up"),
	),
	abandon: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit now"),
	),
	exit: key.NewBinding(
		key.WithKeys("enter", "q", "esc"),
		key.WithHelp("enter", "exit"),
	),
}
