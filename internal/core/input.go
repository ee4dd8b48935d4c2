package core

// Action represents a semantic game command, abstracted from physical key
// presses. The platform maps keys to actions; the game only sees intents.
type Action int

const (
	ActionNone        Action = iota
	ActionForward            // W, Up - step along the heading
	ActionBackward           // S, Down - step against the heading
	ActionStrafeLeft         // A - step perpendicular, left of heading
	ActionStrafeRight        // D - step perpendicular, right of heading
	ActionTurnLeft           // Left arrow - rotate heading counter-clockwise
	ActionTurnRight          // Right arrow - rotate heading clockwise
	ActionWidenFOV           // + - widen the field of view
	ActionNarrowFOV          // - - narrow the field of view
	ActionToggleMap          // M - show/hide the map inset
	ActionPause              // P - pause/unpause
	ActionRestart            // R - restart with a fresh maze
	ActionQuit               // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionForward:
		return "Forward"
	case ActionBackward:
		return "Backward"
	case ActionStrafeLeft:
		return "StrafeLeft"
	case ActionStrafeRight:
		return "StrafeRight"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionWidenFOV:
		return "WidenFOV"
	case ActionNarrowFOV:
		return "NarrowFOV"
	case ActionToggleMap:
		return "ToggleMap"
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

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
