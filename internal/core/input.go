package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // Space - pause game / toggle autoplay
	ActionSpeedUp           // + - faster playback (tic-tac-toe)
	ActionSpeedDown         // - - slower playback (tic-tac-toe)
	ActionResetStats        // X - zero cumulative stats (tic-tac-toe)
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
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionResetStats:
		return "ResetStats"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is a directional intent.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame represents the input state collected between two simulation ticks.
// Plain actions accumulate in a set; directional intents go through a
// single-slot mailbox where the latest value wins, so mashing arrow keys
// between ticks never queues stale turns.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	dir Action // Latest buffered direction, ActionNone if none
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
// Directional actions are routed to the direction mailbox.
func (f *InputFrame) Set(a Action) {
	if a.IsDirection() {
		f.SetDirection(a)
		return
	}
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

// SetDirection stores a directional intent, replacing any previous one.
// Non-directional actions are ignored.
func (f *InputFrame) SetDirection(a Action) {
	if !a.IsDirection() {
		return
	}
	f.dir = a
}

// Direction returns the buffered directional intent for this frame,
// or ActionNone if no direction key was pressed.
func (f InputFrame) Direction() Action {
	return f.dir
}

// Clear resets all actions and the direction mailbox for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.dir = ActionNone
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.dir = f.dir
	return clone
}
