package config

import "embed"

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultFlappyConfig returns the built-in flappy settings, used when the
// embedded YAML cannot be read.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      0.012,
			JumpImpulse:  -0.35,
			MaxFallSpeed: 0.5,
			BaseSpeed:    0.4,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:    5,
			PipeSpacing:  36,
			MinGapSize:   7,
			MaxGapSize:   10,
			TopMargin:    2,
			BottomMargin: 3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.8,
				GapReduction:     3,
				SpacingReduction: 12,
			},
		},
	}
}

// DefaultShooterConfig returns the built-in shooter settings.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Width:       5,
			Height:      1,
			Speed:       0.8,
			BulletSpeed: 0.9,
			Cooldown:    12,
		},
		Enemies: ShooterEnemies{
			Width:         3,
			Height:        1,
			Speed:         0.08,
			SpawnInterval: 150,
			WaveSize:      5,
			Points:        10,
		},
		Gameplay: ShooterGameplay{
			Health:        100,
			ContactDamage: 20,
			EscapeDamage:  10,
			WinScore:      0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 5400,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.6,
			},
		},
	}
}

// DefaultDodgeConfig returns the built-in dodge settings.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Player: DodgePlayer{
			Radius: 1.0,
			Speed:  0.6,
		},
		Hazards: DodgeHazards{
			RockRadius:    1.0,
			GemRadius:     0.6,
			Speed:         0.3,
			SpawnInterval: 20,
			GemChance:     0.25,
		},
		Gameplay: DodgeGameplay{
			Health:     100,
			RockDamage: 20,
			GemPoints:  5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 3600,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.2,
				IntervalReduction: 0.5,
			},
		},
	}
}

// DefaultDinoConfig returns the built-in dino runner settings.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:      0.025,
			JumpImpulse:  -0.65,
			MaxFallSpeed: 0.8,
			BaseSpeed:    0.4,
		},
		Obstacles: DinoObstacles{
			MinWidth:   1,
			MaxWidth:   3,
			MinHeight:  1,
			MaxHeight:  3,
			MinSpacing: 30,
			MaxSpacing: 60,
		},
		Player: DinoPlayer{
			X:            8,
			Width:        3,
			Height:       2,
			GroundOffset: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 20,
			},
		},
	}
}
