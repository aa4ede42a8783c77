package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionJump              // Space, Up, W, left click - jump while running, restart after game over
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - dump the current frame to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
