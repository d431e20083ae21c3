package core

import (
	"sync"
	"testing"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionShoot)

	if !f.Has(ActionLeft) || !f.Has(ActionShoot) {
		t.Error("frame should hold Left and Shoot")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not hold Right")
	}

	f.Set(ActionNone)
	if f.Has(ActionNone) {
		t.Error("ActionNone must never be set")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should release everything")
	}
}

func TestInputFrameIsValue(t *testing.T) {
	a := NewInputFrame(ActionJump)
	b := a
	b.Set(ActionPause)

	if a.Has(ActionPause) {
		t.Error("copies must not share state")
	}
}

func TestInputStatePressRelease(t *testing.T) {
	s := NewInputState()
	s.Press(ActionUp)
	s.Press(ActionShoot)
	s.Release(ActionShoot)

	if !s.Pressed(ActionUp) {
		t.Error("Up should be pressed")
	}
	if s.Pressed(ActionShoot) {
		t.Error("Shoot should be released")
	}

	f := s.Frame()
	if !f.Has(ActionUp) || f.Has(ActionShoot) {
		t.Errorf("snapshot mismatch: %+v", f)
	}

	// Later writes do not leak into an existing snapshot.
	s.Press(ActionDown)
	if f.Has(ActionDown) {
		t.Error("snapshot changed after the fact")
	}

	s.Reset()
	if !s.Frame().Empty() {
		t.Error("Reset should release everything")
	}
}

func TestInputStateConcurrentWriters(t *testing.T) {
	s := NewInputState()
	var wg sync.WaitGroup
	for _, a := range Actions() {
		wg.Add(1)
		go func(a Action) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Set(a, i%2 == 0)
				_ = s.Frame()
			}
		}(a)
	}
	wg.Wait()

	// Every writer finished on a release (i = 999 is odd).
	if !s.Frame().Empty() {
		t.Error("all actions should end released")
	}
}

func TestActionString(t *testing.T) {
	if ActionShoot.String() != "Shoot" {
		t.Errorf("String() = %q", ActionShoot.String())
	}
	if Action(200).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
	if len(Actions()) != int(actionCount)-1 {
		t.Error("Actions should list every real action")
	}
}
