package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Settings holds the tunables the simulation reads every tick.
// Static fields never change after construction. The three speeds are
// dynamic and only change through InitializeDynamic and IncreaseSpeed.
type Settings struct {
	ScreenW float64
	ScreenH float64

	ShipW, ShipH     float64
	BulletW, BulletH float64
	AlienW, AlienH   float64

	BulletsAllowed int
	AlienPoints    int
	DropStep       float64
	ShipLimit      int
	SpeedupScale   float64
	HitPause       time.Duration

	ShipSpeed   float64
	BulletSpeed float64
	AlienSpeed  float64

	baseShipSpeed   float64
	baseBulletSpeed float64
	baseAlienSpeed  float64
}

// NewSettings builds settings for a screen from a game config.
func NewSettings(cfg config.InvadersConfig, screenW, screenH int) *Settings {
	s := &Settings{
		ScreenW: float64(screenW),
		ScreenH: float64(screenH),

		ShipW:   float64(cfg.Ship.Width),
		ShipH:   float64(cfg.Ship.Height),
		BulletW: float64(cfg.Bullet.Width),
		BulletH: float64(cfg.Bullet.Height),
		AlienW:  float64(cfg.Alien.Width),
		AlienH:  float64(cfg.Alien.Height),

		BulletsAllowed: cfg.Bullet.Allowed,
		AlienPoints:    cfg.Alien.Points,
		DropStep:       cfg.Fleet.DropStep,
		ShipLimit:      cfg.Gameplay.Lives,
		SpeedupScale:   cfg.Gameplay.SpeedupScale,
		HitPause:       time.Duration(cfg.Gameplay.HitPauseMS) * time.Millisecond,

		baseShipSpeed:   cfg.Ship.Speed,
		baseBulletSpeed: cfg.Bullet.Speed,
		baseAlienSpeed:  cfg.Alien.Speed,
	}
	s.InitializeDynamic()
	return s
}

// InitializeDynamic restores the speeds a round starts with.
func (s *Settings) InitializeDynamic() {
	s.ShipSpeed = s.baseShipSpeed
	s.BulletSpeed = s.baseBulletSpeed
	s.AlienSpeed = s.baseAlienSpeed
}

// IncreaseSpeed scales every dynamic speed by SpeedupScale.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
}
