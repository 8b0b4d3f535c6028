package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	reset      key.Binding
	add        key.Binding
	subtract   key.Binding
	done       key.Binding
	mode       key.Binding
	pomodoro   key.Binding
	exit       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	add: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "add 5 min"),
	),
	subtract: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "remove 5 min"),
	),
	done: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "done"),
	),
	mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode"),
	),
	pomodoro: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "focus/break"),
	),
	exit: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("q", "exit focus"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.done, k.exit, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.reset, k.add, k.subtract},
		{k.done, k.mode, k.pomodoro},
		{k.exit, k.quit},
	}
}
