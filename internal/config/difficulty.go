package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/frames.
func (d *DifficultyManager) Level(score int, frames uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base speed from base to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(base float64, score int, frames uint64) float64 {
	return base * (1.0 + d.Level(score, frames)*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks a gap as difficulty rises, never below floor.
func (d *DifficultyManager) GapSize(base, floor, score int, frames uint64) int {
	reduction := int(d.Level(score, frames) * float64(d.cfg.Scaling.GapReduction))
	return max(base-reduction, floor)
}

// Spacing shrinks the distance between obstacles, never below 15 cells.
func (d *DifficultyManager) Spacing(base, score int, frames uint64) int {
	reduction := int(d.Level(score, frames) * float64(d.cfg.Scaling.SpacingReduction))
	return max(base-reduction, 15)
}

// Interval shortens a spawn interval in frames, never below 1.
func (d *DifficultyManager) Interval(base, score int, frames uint64) int {
	share := clampF(d.Level(score, frames)*d.cfg.Scaling.IntervalReduction, 0.0, 0.9)
	return max(int(math.Round(float64(base)*(1.0-share))), 1)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
