package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, K, Up arrow
	ActionDown               // S, J, Down arrow
	ActionLeft               // A, H, Left arrow
	ActionRight              // D, L, Right arrow
	ActionUndo               // U, Z, Backspace - one step back in history
	ActionRedo               // Y, Ctrl+R - one step forward in history
	ActionBackToPush         // [ - back to the previous push
	ActionForwardPush        // ] - forward to the next push
	ActionBackToStart        // Home
	ActionToEnd              // End
	ActionAutoPlay           // Space - toggle auto-play
	ActionRestart            // R - restart from the initial position
	ActionBack               // B, Escape - back to the level picker
	ActionQuit               // Q, Ctrl+C
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
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionBackToPush:
		return "BackToPush"
	case ActionForwardPush:
		return "ForwardPush"
	case ActionBackToStart:
		return "BackToStart"
	case ActionToEnd:
		return "ToEnd"
	case ActionAutoPlay:
		return "AutoPlay"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Actions are kept in arrival order so several key presses between two
// ticks replay in the order they were typed.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
