package engine

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Scheduler runs a frame function "before the next repaint". Implementations
// must never run two frames at once.
type Scheduler interface {
	Schedule(frame func())
}

// ManualScheduler queues frames until the caller advances it. Tests and the
// headless simulator use it to step a loop without a clock.
type ManualScheduler struct {
	mu    sync.Mutex
	queue []func()
}

// NewManualScheduler creates an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule queues a frame.
func (s *ManualScheduler) Schedule(frame func()) {
	s.mu.Lock()
	s.queue = append(s.queue, frame)
	s.mu.Unlock()
}

// Pending returns the number of queued frames.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// RunNext runs the oldest queued frame. It returns false if none was queued.
func (s *ManualScheduler) RunNext() bool {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return false
	}
	frame := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	s.mu.Unlock()

	frame()
	return true
}

// Run runs up to n queued frames, including frames queued while running.
// It returns how many ran.
func (s *ManualScheduler) Run(n int) int {
	ran := 0
	for ran < n && s.RunNext() {
		ran++
	}
	return ran
}

// RateScheduler runs frames on a worker goroutine, paced to a fixed rate.
type RateScheduler struct {
	limiter *rate.Limiter
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	wake    chan struct{}

	mu    sync.Mutex
	queue []func()
}

// NewRateScheduler starts a scheduler running at most fps frames per second.
func NewRateScheduler(fps int) *RateScheduler {
	if fps <= 0 {
		fps = 60
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &RateScheduler{
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(fps)), 1),
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
		wake:    make(chan struct{}, 1),
	}
	go s.run()
	return s
}

// Schedule queues a frame for the worker.
func (s *RateScheduler) Schedule(frame func()) {
	s.mu.Lock()
	s.queue = append(s.queue, frame)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Close stops the worker after the frame in progress, dropping queued frames.
func (s *RateScheduler) Close() {
	s.cancel()
	<-s.done
}

func (s *RateScheduler) run() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.wake:
		}
		for {
			frame := s.pop()
			if frame == nil {
				break
			}
			if err := s.limiter.Wait(s.ctx); err != nil {
				return
			}
			frame()
		}
	}
}

func (s *RateScheduler) pop() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return nil
	}
	frame := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return frame
}
