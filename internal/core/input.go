package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A - held while steering left
	ActionMoveRight        // Right arrow, D - held while steering right
	ActionFire             // Space - fire one bullet
	ActionStart            // Enter or mouse click - start a round
	ActionPause            // P - pause/unpause gameplay
	ActionBack             // B, Escape - go back to menu
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen position in cells.
type Point struct {
	X, Y float64
}

// InputFrame represents the decoded input for one simulation tick.
type InputFrame struct {
	// Actions holds edge-triggered actions that happened this frame.
	Actions map[Action]bool

	// Holds records level changes: true on press, false on release.
	// Absent actions keep their previous level.
	Holds map[Action]bool

	// Pointer is where a start request was made. Nil for keyboard starts.
	Pointer *Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Holds:   make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetAt marks an action as triggered at a pointer position.
func (f *InputFrame) SetAt(a Action, x, y float64) {
	f.Set(a)
	f.Pointer = &Point{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Hold records a press (true) or release (false) of a held action.
func (f *InputFrame) Hold(a Action, pressed bool) {
	if f.Holds == nil {
		f.Holds = make(map[Action]bool)
	}
	f.Holds[a] = pressed
}

// Held reports the level change recorded for a held action this frame.
// ok is false when the action's level did not change.
func (f InputFrame) Held(a Action) (pressed, ok bool) {
	if f.Holds == nil {
		return false, false
	}
	pressed, ok = f.Holds[a]
	return pressed, ok
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Holds {
		delete(f.Holds, k)
	}
	f.Pointer = nil
}
