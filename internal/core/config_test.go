package core

import "testing"

func TestNormalized(t *testing.T) {
	got := RuntimeConfig{ScreenW: -1, TickRate: 0, Seed: 9}.Normalized()
	want := RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9}
	if got != want {
		t.Errorf("Normalized() = %+v, want %+v", got, want)
	}
}

func TestFrameScale(t *testing.T) {
	tests := []struct {
		rate   int
		scale  float64
		frames int // Frames(90)
	}{
		{60, 1, 90},
		{30, 2, 45},
		{120, 0.5, 180},
		{0, 1, 90},
	}
	for _, tt := range tests {
		cfg := RuntimeConfig{TickRate: tt.rate}
		if got := cfg.FrameScale(); got != tt.scale {
			t.Errorf("rate %d: FrameScale() = %v, want %v", tt.rate, got, tt.scale)
		}
		if got := cfg.Frames(90); got != tt.frames {
			t.Errorf("rate %d: Frames(90) = %d, want %d", tt.rate, got, tt.frames)
		}
	}
}

func TestFramesNeverZero(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 10}
	if got := cfg.Frames(1); got != 1 {
		t.Errorf("Frames(1) at 10fps = %d, want 1", got)
	}
}
