package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionCharge         // Space - charge while held, rush on release
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
	ActionDebug          // 1, F1 - toggle debug overlay
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
	case ActionCharge:
		return "Charge"
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
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Holdable reports whether the action describes a sustained key (movement,
// charge) rather than a one-shot press.
func (a Action) Holdable() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight, ActionCharge:
		return true
	}
	return false
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered (or are held) during this frame.
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

// HoldTracker turns a stream of key-press events into held-key state.
//
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held for window ticks after its most recent press. The window
// has to outlast the terminal's initial auto-repeat delay or a held key
// flickers off once before repeats start arriving.
type HoldTracker struct {
	window    int
	tick      int
	lastPress map[Action]int
}

// NewHoldTracker creates a tracker with the given hold window in ticks.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window:    window,
		lastPress: make(map[Action]int),
	}
}

// Press records a press of a holdable action at the current tick.
// Pressing a direction releases the opposite direction immediately.
func (h *HoldTracker) Press(a Action) {
	if !a.Holdable() {
		return
	}
	if opp := opposite(a); opp != ActionNone {
		delete(h.lastPress, opp)
	}
	h.lastPress[a] = h.tick
}

// Release forgets an action.
func (h *HoldTracker) Release(a Action) {
	delete(h.lastPress, a)
}

// Held reports whether the action is currently considered held.
func (h *HoldTracker) Held(a Action) bool {
	last, ok := h.lastPress[a]
	return ok && h.tick-last <= h.window
}

// Apply sets every held action on the frame.
func (h *HoldTracker) Apply(frame *InputFrame) {
	for a := range h.lastPress {
		if h.Held(a) {
			frame.Set(a)
		}
	}
}

// Advance moves the tracker to the next tick and drops expired keys.
func (h *HoldTracker) Advance() {
	h.tick++
	for a, last := range h.lastPress {
		if h.tick-last > h.window {
			delete(h.lastPress, a)
		}
	}
}

// Reset forgets all held keys.
func (h *HoldTracker) Reset() {
	for a := range h.lastPress {
		delete(h.lastPress, a)
	}
}

func opposite(a Action) Action {
	switch a {
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}
