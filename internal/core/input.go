package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move north
	ActionDown            // S, Down arrow - move south
	ActionLeft            // A, Left arrow - move west
	ActionRight           // D, Right arrow - move east
	ActionInteract        // Space - open chest/door or throw knife
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
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
	case ActionInteract:
		return "Interact"
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

// IsDirectional reports whether the action is one of the four movement keys.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// Pointer is a mouse position in screen cells.
type Pointer struct {
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions holds actions that were triggered (pressed) during this frame.
	Actions map[Action]bool

	// Held holds actions whose key is considered down during this frame.
	// Terminals only report presses, so the platform derives this from a HoldTracker.
	Held map[Action]bool

	// Click is set when the pointer was released this frame.
	Click *Pointer

	// Hover is set when the pointer moved this frame.
	Hover *Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held down for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsDown returns true if the action is held or was pressed this frame.
func (f InputFrame) IsDown(a Action) bool {
	if f.Has(a) {
		return true
	}
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// AnyDirectionDown reports whether any movement key is down.
func (f InputFrame) AnyDirectionDown() bool {
	return f.IsDown(ActionUp) || f.IsDown(ActionDown) || f.IsDown(ActionLeft) || f.IsDown(ActionRight)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Click = nil
	f.Hover = nil
}

// HoldTracker keeps directional keys "down" for a number of ticks after each press.
// Terminal key repeat fills the gaps while a key is physically held.
type HoldTracker struct {
	ticks     int
	remaining map[Action]int
}

// NewHoldTracker creates a tracker that holds each press for the given number of ticks.
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks < 1 {
		ticks = 1
	}
	return &HoldTracker{
		ticks:     ticks,
		remaining: make(map[Action]int),
	}
}

// Press refreshes the hold window for an action.
// Pressing a direction releases the opposite one so reversals are immediate.
func (h *HoldTracker) Press(a Action) {
	switch a {
	case ActionUp:
		delete(h.remaining, ActionDown)
	case ActionDown:
		delete(h.remaining, ActionUp)
	case ActionLeft:
		delete(h.remaining, ActionRight)
	case ActionRight:
		delete(h.remaining, ActionLeft)
	}
	h.remaining[a] = h.ticks
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	for k := range h.remaining {
		delete(h.remaining, k)
	}
}

// Apply marks all currently held actions on the frame and ages them by one tick.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		f.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}
