// Package config provides YAML-based game settings loading and
// difficulty management for the bundled rule sets.
package config

import "fmt"

// FlappyConfig contains all settings for the flappy rule set.
// Speeds and accelerations are in cells per frame.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters for flappy.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// FlappyObstacles defines pipe parameters for flappy.
type FlappyObstacles struct {
	PipeWidth    int `yaml:"pipe_width"`
	PipeSpacing  int `yaml:"pipe_spacing"`
	MinGapSize   int `yaml:"min_gap_size"`
	MaxGapSize   int `yaml:"max_gap_size"`
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// FlappyPlayer defines the bird's position and hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ShooterConfig contains all settings for the shooter rule set.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Gameplay   ShooterGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the ship and its gun.
type ShooterPlayer struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	Cooldown    int     `yaml:"cooldown"` // frames between shots
}

// ShooterEnemies defines enemy waves.
type ShooterEnemies struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // frames between waves
	WaveSize      int     `yaml:"wave_size"`
	Points        int     `yaml:"points"`
}

// ShooterGameplay defines health and scoring rules.
type ShooterGameplay struct {
	Health        int `yaml:"health"`
	ContactDamage int `yaml:"contact_damage"`
	EscapeDamage  int `yaml:"escape_damage"`
	WinScore      int `yaml:"win_score"` // 0 plays until health runs out
}

// DodgeConfig contains all settings for the dodge rule set.
type DodgeConfig struct {
	Player     DodgePlayer      `yaml:"player"`
	Hazards    DodgeHazards     `yaml:"hazards"`
	Gameplay   DodgeGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgePlayer defines the player's circle.
type DodgePlayer struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// DodgeHazards defines drifting rocks and gems.
type DodgeHazards struct {
	RockRadius    float64 `yaml:"rock_radius"`
	GemRadius     float64 `yaml:"gem_radius"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"`
	GemChance     float64 `yaml:"gem_chance"` // share of spawns that are gems
}

// DodgeGameplay defines health and scoring rules.
type DodgeGameplay struct {
	Health     int `yaml:"health"`
	RockDamage int `yaml:"rock_damage"`
	GemPoints  int `yaml:"gem_points"`
}

// DinoConfig contains all settings for the dino runner rule set.
type DinoConfig struct {
	Physics    DinoPhysics      `yaml:"physics"`
	Obstacles  DinoObstacles    `yaml:"obstacles"`
	Player     DinoPlayer       `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DinoPhysics defines jump physics and running speed.
type DinoPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseSpeed    float64 `yaml:"base_speed"`
}

// DinoObstacles defines cactus sizes and the distance between them.
type DinoObstacles struct {
	MinWidth   int `yaml:"min_width"`
	MaxWidth   int `yaml:"max_width"`
	MinHeight  int `yaml:"min_height"`
	MaxHeight  int `yaml:"max_height"`
	MinSpacing int `yaml:"min_spacing"`
	MaxSpacing int `yaml:"max_spacing"`
}

// DinoPlayer defines the runner's position and hitbox.
type DinoPlayer struct {
	X            int `yaml:"x"`
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"` // rows below the ground line
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      int     `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	SpacingReduction  int     `yaml:"spacing_reduction"`  // Spacing reduction at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Share of a spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply modifies the difficulty section based on a preset. An empty preset
// keeps the loaded values.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	switch preset {
	case "":
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
