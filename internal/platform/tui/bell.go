package tui

import (
	"io"
	"sync"

	"github.com/ErikKalkoken/go-set"

	"github.com/vovakirdan/frameloop/internal/engine"
)

// DefaultBellEvents are the events that ring the terminal bell.
var DefaultBellEvents = set.Of(engine.EventHit, engine.EventGameOver, engine.EventWin)

// Bell is an engine.SoundPlayer that rings the terminal bell. Writes happen
// on a separate goroutine so Play never blocks a frame; rings arriving while
// one is still being written are dropped.
type Bell struct {
	out    io.Writer
	events set.Set[string]

	mu   sync.Mutex
	busy bool
	wg   sync.WaitGroup
}

var _ engine.SoundPlayer = (*Bell)(nil)

// NewBell creates a bell writing to out for the given events.
func NewBell(out io.Writer, events set.Set[string]) *Bell {
	return &Bell{out: out, events: events}
}

// Play rings the bell if event is in the bell's set.
func (b *Bell) Play(event string) {
	if b == nil || b.out == nil || !b.events.Contains(event) {
		return
	}
	b.mu.Lock()
	if b.busy {
		b.mu.Unlock()
		return
	}
	b.busy = true
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		//nolint:errcheck // a missed bell is harmless
		io.WriteString(b.out, "\a")
		b.mu.Lock()
		b.busy = false
		b.mu.Unlock()
	}()
}

// Wait blocks until pending rings are written.
func (b *Bell) Wait() {
	b.wg.Wait()
}
