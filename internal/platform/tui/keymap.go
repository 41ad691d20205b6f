package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns WASD (either case) plus arrow keys for steering.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("↓/s", "down"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Start, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Keys without a binding map to ActionNone.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	}
	return core.ActionNone, false
}

// SetupKeyMap defines the bindings of the setup screen.
type SetupKeyMap struct {
	PrevField key.Binding
	NextField key.Binding
	PrevValue key.Binding
	NextValue key.Binding
	Start     key.Binding
	Quit      key.Binding
}

// DefaultSetupKeyMap returns the setup screen bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		PrevField: key.NewBinding(
			key.WithKeys("up", "w", "W", "shift+tab"),
			key.WithHelp("↑/w", "prev field"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down", "s", "S", "tab"),
			key.WithHelp("↓/s", "next field"),
		),
		PrevValue: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "prev option"),
		),
		NextValue: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "next option"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextValue, k.Start, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevField, k.NextField},
		{k.PrevValue, k.NextValue},
		{k.Start, k.Quit},
	}
}
