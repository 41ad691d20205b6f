package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionStart        // Enter on the setup screen
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a >= ActionLeft && a <= ActionDown
}
