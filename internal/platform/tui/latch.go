package tui

import (
	"time"

	"github.com/vovakirdan/frameloop/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last
// key-down. Terminals report no key-up, so auto-repeat must arrive within
// this window for the action to stay pressed.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyLatch turns terminal key presses into held actions on an InputState.
// It releases an action once no press for it has been seen for the hold
// window. It is used from the Bubble Tea goroutine only.
type KeyLatch struct {
	state *core.InputState
	hold  time.Duration
	now   func() time.Time
	until map[core.Action]time.Time
}

// NewKeyLatch creates a latch writing to state.
func NewKeyLatch(state *core.InputState, hold time.Duration) *KeyLatch {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyLatch{
		state: state,
		hold:  hold,
		now:   time.Now,
		until: make(map[core.Action]time.Time),
	}
}

// Press marks the action held and extends its deadline.
func (l *KeyLatch) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	l.until[a] = l.now().Add(l.hold)
	l.state.Press(a)
}

// Expire releases every action whose deadline has passed.
func (l *KeyLatch) Expire() {
	now := l.now()
	for a, deadline := range l.until {
		if !now.Before(deadline) {
			l.state.Release(a)
			delete(l.until, a)
		}
	}
}

// ReleaseAll releases every latched action.
func (l *KeyLatch) ReleaseAll() {
	for a := range l.until {
		l.state.Release(a)
		delete(l.until, a)
	}
}
