package core

import "time"

// Action is a semantic input, decoupled from the physical key.
type Action int

const (
	ActionNone       Action = iota
	ActionFire              // F - toggle the trigger (terminals have no key-up)
	ActionSpaceout          // Space - spend a full charge
	ActionPause             // P, Esc
	ActionRestart           // R
	ActionCheckpoint        // F5 - keep an in-memory snapshot
	ActionRewind            // F9 - return to the last snapshot
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionSpaceout:
		return "Spaceout"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionCheckpoint:
		return "Checkpoint"
	case ActionRewind:
		return "Rewind"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the latest mouse state in screen cells.
// The platform keeps it between frames; games read it every step.
type Pointer struct {
	X, Y  int
	Down  bool // Primary button held
	Valid bool // At least one mouse event has been seen
}

// InputFrame is everything a game receives for one frame.
type InputFrame struct {
	// Actions triggered since the previous frame.
	Actions map[Action]bool
	Pointer Pointer
	// Elapsed is the wall-clock time since the previous frame.
	Elapsed time.Duration
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

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets the one-shot actions and the elapsed time.
// The pointer is sticky and survives.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Elapsed = 0
}

// Clone returns a deep copy.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Elapsed = f.Elapsed
	return clone
}
