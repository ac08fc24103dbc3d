package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Step       key.Binding
	Short      key.Binding
	Long       key.Binding
	Reset      key.Binding
	History    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Short, k.Long, k.Reset, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Short, k.Long},
		{k.Reset, k.History, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Step: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "move 1 (-3)"),
		),
		Short: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "move 1-3 (-1)"),
		),
		Long: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "move 4-7 (-2)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		History: key.NewBinding(
			key.WithKeys("tab", "h"),
			key.WithHelp("tab", "history"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ActionFor translates a key message to the action it picks, if any.
func (k KeyMap) ActionFor(msg tea.KeyMsg) (engine.Action, bool) {
	switch {
	case key.Matches(msg, k.Step):
		return engine.ActionStep, true
	case key.Matches(msg, k.Short):
		return engine.ActionShort, true
	case key.Matches(msg, k.Long):
		return engine.ActionLong, true
	}
	return 0, false
}
