// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders platform.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the Invaders game.
type InvadersConfig struct {
	Ship     InvadersShip     `yaml:"ship"`
	Bullet   InvadersBullet   `yaml:"bullet"`
	Alien    InvadersAlien    `yaml:"alien"`
	Fleet    InvadersFleet    `yaml:"fleet"`
	Gameplay InvadersGameplay `yaml:"gameplay"`
}

// InvadersShip defines the player ship.
type InvadersShip struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Cells per tick
}

// InvadersBullet defines player bullets.
type InvadersBullet struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Speed   float64 `yaml:"speed"`   // Cells per tick, upward
	Allowed int     `yaml:"allowed"` // Max live bullets
}

// InvadersAlien defines a single alien of the fleet.
type InvadersAlien struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`  // Cells per tick, horizontal
	Points int     `yaml:"points"` // Score per destroyed alien
}

// InvadersFleet defines fleet-wide movement.
type InvadersFleet struct {
	DropStep float64 `yaml:"drop_step"` // Cells dropped on every edge bounce
}

// InvadersGameplay defines round and wave rules.
type InvadersGameplay struct {
	Lives        int     `yaml:"lives"`
	SpeedupScale float64 `yaml:"speedup_scale"` // Speed multiplier per cleared wave
	HitPauseMS   int     `yaml:"hit_pause_ms"`  // Gameplay pause after losing a ship
}

// Validate checks that the configuration describes a playable game.
func (c InvadersConfig) Validate() error {
	var errs []error

	if c.Ship.Width <= 0 || c.Ship.Height <= 0 {
		errs = append(errs, fmt.Errorf("ship size must be positive, got %dx%d", c.Ship.Width, c.Ship.Height))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, fmt.Errorf("bullet size must be positive, got %dx%d", c.Bullet.Width, c.Bullet.Height))
	}
	if c.Alien.Width <= 0 || c.Alien.Height <= 0 {
		errs = append(errs, fmt.Errorf("alien size must be positive, got %dx%d", c.Alien.Width, c.Alien.Height))
	}
	if c.Ship.Speed <= 0 || c.Bullet.Speed <= 0 || c.Alien.Speed <= 0 {
		errs = append(errs, errors.New("ship, bullet and alien speeds must be positive"))
	}
	if c.Bullet.Allowed < 1 {
		errs = append(errs, fmt.Errorf("bullet.allowed must be at least 1, got %d", c.Bullet.Allowed))
	}
	if c.Alien.Points < 0 {
		errs = append(errs, fmt.Errorf("alien.points must not be negative, got %d", c.Alien.Points))
	}
	if c.Fleet.DropStep < 0 {
		errs = append(errs, fmt.Errorf("fleet.drop_step must not be negative, got %v", c.Fleet.DropStep))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.SpeedupScale <= 1 {
		errs = append(errs, fmt.Errorf("gameplay.speedup_scale must be greater than 1, got %v", c.Gameplay.SpeedupScale))
	}
	if c.Gameplay.HitPauseMS < 0 {
		errs = append(errs, fmt.Errorf("gameplay.hit_pause_ms must not be negative, got %d", c.Gameplay.HitPauseMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invaders config: %w", errors.Join(errs...))
	}
	return nil
}
