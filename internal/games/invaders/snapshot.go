package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot is a read-only copy of everything the renderer needs.
// Slices are copies, so holding a snapshot never aliases simulation state.
type Snapshot struct {
	Tick           uint64
	Mode           Mode
	ScreenW        float64
	ScreenH        float64
	Ship           core.Rect
	Bullets        []core.Rect
	Aliens         []core.Rect
	FleetDirection float64
	AlienSpeed     float64
	Stats          Stats
	HighScore      int
	Paused         bool
	HitPaused      bool
	PlayButton     core.Rect
}

// Snapshot returns the current state of the simulation.
func (s *Simulation) Snapshot() Snapshot {
	f := s.field

	bullets := make([]core.Rect, 0, f.projectiles.Len())
	for _, b := range f.projectiles.Bullets() {
		bullets = append(bullets, b.Rect)
	}
	aliens := make([]core.Rect, 0, f.fleet.Len())
	for _, a := range f.fleet.Aliens() {
		aliens = append(aliens, a.Rect)
	}

	return Snapshot{
		Tick:           s.tick,
		Mode:           s.states.Mode(),
		ScreenW:        f.settings.ScreenW,
		ScreenH:        f.settings.ScreenH,
		Ship:           f.ship.Rect,
		Bullets:        bullets,
		Aliens:         aliens,
		FleetDirection: f.fleet.Direction(),
		AlienSpeed:     f.settings.AlienSpeed,
		Stats:          s.score.Stats(),
		HighScore:      s.score.HighScore(),
		Paused:         s.paused,
		HitPaused:      s.HitPaused(),
		PlayButton:     s.playButton,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// The round ID is excluded since it is random by default.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stats.ShipsLeft) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FleetDirection)
	h = h*31 + math.Float64bits(snap.AlienSpeed)
	h = hashRect(h, snap.Ship)

	for _, r := range snap.Bullets {
		h = hashRect(h, r)
	}
	for _, r := range snap.Aliens {
		h = hashRect(h, r)
	}
	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	return h*31 + math.Float64bits(r.H)
}
