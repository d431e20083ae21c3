package core

import "math"

// RuntimeConfig contains host settings passed to a game at initialization.
// Games use this to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // World width in cells
	ScreenH  int   // World height in cells
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Normalized fills zero or invalid fields from DefaultConfig.
// Seed is left untouched; hosts decide how to pick a random seed.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// BaseTickRate is the rate per-frame game settings are tuned for.
const BaseTickRate = 60

// FrameScale converts per-frame speeds tuned at BaseTickRate to this
// config's tick rate: speeds multiply by it, accelerations by its square.
func (c RuntimeConfig) FrameScale() float64 {
	return float64(BaseTickRate) / float64(c.Normalized().TickRate)
}

// Frames converts a frame count tuned at BaseTickRate to this tick rate.
func (c RuntimeConfig) Frames(n int) int {
	return max(int(math.Round(float64(n)/c.FrameScale())), 1)
}
