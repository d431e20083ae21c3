package core

import "sync/atomic"

// Action represents a semantic game action, abstracted from physical keys,
// touches or gamepad buttons.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionShoot          // F, Z - fire a projectile
	ActionJump           // Space - primary action (jump, flap)
	ActionPause          // P - pause/unpause
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
	ActionConfirm        // Enter
	ActionBack           // B, Esc
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down", "Shoot", "Jump",
	"Pause", "Restart", "Quit", "Confirm", "Back",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// Actions lists every real action, in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount-1)
	for a := ActionLeft; a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// InputFrame is an immutable snapshot of which actions are held during one
// simulation step. It is a plain value so steps stay deterministic.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has returns true if the given action is held in this frame.
func (f InputFrame) Has(a Action) bool {
	if a >= actionCount {
		return false
	}
	return f.bits&(1<<a) != 0
}

// Empty reports whether no action is held.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear releases all actions.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// InputState is the live pressed-state of every action.
// Input adapters write it from any goroutine; the loop reads it once per frame
// through Frame. Each flag is only ever overwritten, never read-modify-written.
type InputState struct {
	pressed [actionCount]atomic.Bool
}

// NewInputState creates an input state with every action released.
func NewInputState() *InputState {
	return &InputState{}
}

// Set overwrites the pressed flag of an action.
func (s *InputState) Set(a Action, down bool) {
	if a == ActionNone || a >= actionCount {
		return
	}
	s.pressed[a].Store(down)
}

// Press marks an action as held (key-down, pointer-down).
func (s *InputState) Press(a Action) {
	s.Set(a, true)
}

// Release marks an action as released (key-up, pointer-up).
func (s *InputState) Release(a Action) {
	s.Set(a, false)
}

// Pressed reports whether an action is currently held.
func (s *InputState) Pressed(a Action) bool {
	if a >= actionCount {
		return false
	}
	return s.pressed[a].Load()
}

// Frame takes the per-frame snapshot consumed by the update phase.
func (s *InputState) Frame() InputFrame {
	var f InputFrame
	for a := ActionLeft; a < actionCount; a++ {
		if s.pressed[a].Load() {
			f.Set(a)
		}
	}
	return f
}

// Reset releases every action.
func (s *InputState) Reset() {
	for a := range s.pressed {
		s.pressed[a].Store(false)
	}
}
