package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - tilt left
	ActionRight          // D, Right arrow - tilt right
	ActionJump           // Space, W, Up - first touch that launches the ball
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame plus an optional
// acceleration sample from the tilt source.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Tilt is a unit-less acceleration sample. Only meaningful when HasTilt is set;
	// a frame without a sample is treated as zero tilt.
	Tilt    Vec2
	HasTilt bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetTilt records an acceleration sample for this frame.
func (f *InputFrame) SetTilt(x, y float64) {
	f.Tilt = Vec2{X: x, Y: y}
	f.HasTilt = true
}

// TiltSample returns the acceleration sample, or zero if none was supplied.
func (f InputFrame) TiltSample() Vec2 {
	if !f.HasTilt {
		return Vec2{}
	}
	return f.Tilt
}

// Clear resets all actions and the tilt sample for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tilt = Vec2{}
	f.HasTilt = false
}
