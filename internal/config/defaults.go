package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Invaders configuration.
// It mirrors defaults/invaders.yaml.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Ship: InvadersShip{
			Width:  5,
			Height: 2,
			Speed:  0.5,
		},
		Bullet: InvadersBullet{
			Width:   1,
			Height:  1,
			Speed:   0.75,
			Allowed: 3,
		},
		Alien: InvadersAlien{
			Width:  4,
			Height: 2,
			Speed:  0.15,
			Points: 50,
		},
		Fleet: InvadersFleet{
			DropStep: 1,
		},
		Gameplay: InvadersGameplay{
			Lives:        3,
			SpeedupScale: 1.1,
			HitPauseMS:   500,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `presets --dump`.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
