package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeaSchedulerArmsOneTick(t *testing.T) {
	s := NewTeaScheduler(60)
	assert.Nil(t, s.Cmd(), "nothing pending")

	ran := 0
	s.Schedule(func() { ran++ })
	require.NotNil(t, s.Cmd())
	assert.Nil(t, s.Cmd(), "a tick is already in flight")

	s.Fire()
	assert.Equal(t, 1, ran)
	assert.Nil(t, s.Cmd(), "frame did not reschedule")

	s.Fire()
	assert.Equal(t, 1, ran, "fire without a pending frame is a no-op")
}

func TestTeaSchedulerRescheduleFromFrame(t *testing.T) {
	s := NewTeaScheduler(60)
	count := 0
	var frame func()
	frame = func() {
		count++
		if count < 3 {
			s.Schedule(frame)
		}
	}
	s.Schedule(frame)

	for s.Cmd() != nil {
		s.Fire()
	}
	assert.Equal(t, 3, count)
}

func TestTeaSchedulerOwnsItsTicks(t *testing.T) {
	a := NewTeaScheduler(60)
	b := NewTeaScheduler(60)
	assert.True(t, a.Owns(TickMsg{id: a.id}))
	assert.False(t, a.Owns(TickMsg{id: b.id}))
}
