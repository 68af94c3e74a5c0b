package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space - select
	ActionBack           // Esc, B - leave a menu
	ActionRestart        // R - new board
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C
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
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a position in screen cells.
type Point struct {
	X, Y int
}

// InputFrame collects the input received between two ticks: triggered
// actions and at most one pointer click.
type InputFrame struct {
	Actions map[Action]bool
	click   *Point
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
	return f.Actions[a]
}

// SetClick records a pointer click at screen position (x, y).
// A later click in the same frame replaces an earlier one.
func (f *InputFrame) SetClick(x, y int) {
	f.click = &Point{X: x, Y: y}
}

// Click returns the pointer click of this frame, if any.
func (f InputFrame) Click() (Point, bool) {
	if f.click == nil {
		return Point{}, false
	}
	return *f.click, true
}

// Empty reports whether nothing was received this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.click == nil
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.click = nil
}
