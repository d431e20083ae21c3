package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir is the per-user settings directory under the home directory.
const Dir = ".frameloop"

// Load reads settings for a game, layered over the embedded defaults.
// Search order: customPath -> ~/.frameloop/configs/<id>.yaml ->
// ./configs/<id>.yaml -> embedded default -> fallback.
//
// Only a broken customPath is an error; unreadable or malformed files found
// by the search are skipped.
func Load[T any](gameID, customPath string, fallback T) (T, error) {
	base := fallback
	if data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml"); err == nil {
		var cfg T = fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			base = cfg
		}
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decodeStrict(data, base)
		if err != nil {
			return base, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(gameID) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg T = base
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}
	return base, nil
}

// decodeStrict decodes over base and rejects unknown keys, so typos in an
// explicitly requested file are reported instead of silently ignored.
func decodeStrict[T any](data []byte, base T) (T, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, err
	}
	return cfg, nil
}

func searchPaths(gameID string) []string {
	name := gameID + ".yaml"
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, Dir, "configs", name))
	}
	return append(paths, filepath.Join("configs", name))
}

// LoadFlappy loads flappy settings and applies a difficulty preset.
func LoadFlappy(customPath string, preset DifficultyPreset) (FlappyConfig, error) {
	cfg, err := Load("flappy", customPath, DefaultFlappyConfig())
	cfg.Difficulty.Apply(preset)
	return cfg, err
}

// LoadShooter loads shooter settings and applies a difficulty preset.
// Easy and hard also change the player's health.
func LoadShooter(customPath string, preset DifficultyPreset) (ShooterConfig, error) {
	cfg, err := Load("shooter", customPath, DefaultShooterConfig())
	cfg.Difficulty.Apply(preset)
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Health = 150
	case DifficultyHard:
		cfg.Gameplay.Health = 60
	}
	return cfg, err
}

// LoadDodge loads dodge settings and applies a difficulty preset.
func LoadDodge(customPath string, preset DifficultyPreset) (DodgeConfig, error) {
	cfg, err := Load("dodge", customPath, DefaultDodgeConfig())
	cfg.Difficulty.Apply(preset)
	return cfg, err
}

// LoadDino loads dino runner settings and applies a difficulty preset.
func LoadDino(customPath string, preset DifficultyPreset) (DinoConfig, error) {
	cfg, err := Load("dino", customPath, DefaultDinoConfig())
	cfg.Difficulty.Apply(preset)
	return cfg, err
}

// Embedded returns the raw embedded default file for a game.
func Embedded(gameID string) ([]byte, error) {
	data, err := defaultsFS.ReadFile("defaults/" + gameID + ".yaml")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: no defaults for %q", gameID)
	}
	return data, err
}
