package core

// Action represents a semantic game action, abstracted from physical key presses
// and gestures. Platform input adapters produce actions; the host applies them.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, K, Up arrow, swipe up
	ActionDown         // S, J, Down arrow, swipe down
	ActionLeft         // A, H, Left arrow, swipe left
	ActionRight        // D, L, Right arrow, swipe right
	ActionStart        // Enter, Space, R - start or restart a game
	ActionPause        // P - stop/resume the tick source
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four headings.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}
