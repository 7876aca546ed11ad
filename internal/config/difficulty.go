package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// Description returns a one-line summary of the preset.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "5 ships, slower fleet, gentle speedup"
	case DifficultyNormal:
		return "config as loaded"
	case DifficultyHard:
		return "2 ships, faster fleet, steep speedup"
	default:
		return ""
	}
}

// ParsePreset converts a name to a preset. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", name)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Alien.Speed *= 0.75
		cfg.Gameplay.SpeedupScale = 1.05
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Alien.Speed *= 1.5
		cfg.Gameplay.SpeedupScale = 1.2
	}
}
