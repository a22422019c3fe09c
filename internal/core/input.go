package core

// Action represents a semantic game action, abstracted from physical key presses.
// The host maps keys to actions and the engine only ever sees actions.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, A - shift piece one column left
	ActionRight           // Right arrow, D - shift piece one column right
	ActionSoftDrop        // Down arrow, S - move piece one row down
	ActionRotate          // Up arrow, W - rotate piece clockwise
	ActionPause           // P, Escape - pause/unpause game
	ActionRestart         // R key - start a new game
	ActionQuit            // Q, Ctrl+C - exit
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseMove maps a single script character to a movement action.
// Used by the headless simulator: l, r, d and u stand for left, right,
// soft drop and rotate; any other rune maps to ActionNone.
func ParseMove(r rune) Action {
	switch r {
	case 'l', 'L':
		return ActionLeft
	case 'r', 'R':
		return ActionRight
	case 'd', 'D':
		return ActionSoftDrop
	case 'u', 'U':
		return ActionRotate
	default:
		return ActionNone
	}
}
