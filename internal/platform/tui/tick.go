// Package tui hosts engine loops in the terminal with Bubble Tea, locally or
// over SSH. It handles the frame ticker, input mapping, and the menu flow.
package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run the pending frame of one scheduler.
type TickMsg struct {
	id   uint64
	Time time.Time
}

var schedulerIDs atomic.Uint64

// tickCmd returns a Bubble Tea command that fires once after one frame
// interval at the given rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{id: id, Time: t}
	})
}

// TeaScheduler is an engine.Scheduler that runs frames on the Bubble Tea
// event goroutine. Schedule stores the frame; the model turns it into a tick
// command with Cmd and runs it with Fire when the TickMsg arrives. At most
// one tick is in flight.
type TeaScheduler struct {
	id   uint64
	rate int

	mu      sync.Mutex
	pending func()
	armed   bool
}

// NewTeaScheduler creates a scheduler ticking at rate frames per second.
func NewTeaScheduler(rate int) *TeaScheduler {
	return &TeaScheduler{id: schedulerIDs.Add(1), rate: rate}
}

// Schedule replaces the pending frame.
func (s *TeaScheduler) Schedule(frame func()) {
	s.mu.Lock()
	s.pending = frame
	s.mu.Unlock()
}

// Cmd returns a tick command if a frame is pending and no tick is in flight.
func (s *TeaScheduler) Cmd() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil || s.armed {
		return nil
	}
	s.armed = true
	return tickCmd(s.id, s.rate)
}

// Owns reports whether msg was produced by this scheduler.
func (s *TeaScheduler) Owns(msg TickMsg) bool {
	return msg.id == s.id
}

// Fire runs the pending frame, if any.
func (s *TeaScheduler) Fire() {
	s.mu.Lock()
	frame := s.pending
	s.pending = nil
	s.armed = false
	s.mu.Unlock()

	if frame != nil {
		frame()
	}
}
