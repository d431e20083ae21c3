package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/frameloop/internal/core"
)

func TestManualSchedulerOrder(t *testing.T) {
	s := NewManualScheduler()
	var got []int
	s.Schedule(func() { got = append(got, 1) })
	s.Schedule(func() {
		got = append(got, 2)
		s.Schedule(func() { got = append(got, 3) })
	})

	assert.Equal(t, 2, s.Pending())
	assert.Equal(t, 3, s.Run(10))
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.False(t, s.RunNext())
}

func TestRateSchedulerRunsLoop(t *testing.T) {
	s := NewRateScheduler(1000)
	defer s.Close()

	l := New(Rules{}, Options{
		Scheduler: s,
		Config:    core.RuntimeConfig{ScreenW: 10, ScreenH: 10, Seed: 1},
		MaxFrames: 20,
	})
	l.Start()

	select {
	case <-l.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not finish")
	}
	assert.Equal(t, StateStopped, l.State())
	assert.Equal(t, uint64(20), l.Snapshot().Frame)
}

func TestRateSchedulerCloseDropsQueue(t *testing.T) {
	s := NewRateScheduler(1)
	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		s.Schedule(func() { ran.Add(1) })
	}
	require.Eventually(t, func() bool { return ran.Load() >= 1 }, 2*time.Second, 5*time.Millisecond)
	s.Close()

	assert.Less(t, ran.Load(), int32(5))
}
