package invaders

// Resolver applies the consequences of overlaps on the play field.
type Resolver struct {
	field  *playfield
	score  *ScoreTracker
	states *StateMachine
}

// ResolveBulletAlienCollisions removes every bullet that overlaps an alien
// and every alien that overlaps a bullet, each exactly once. Overlaps are
// judged on the positions at the start of the pass. The score grows by
// AlienPoints per destroyed alien and is reported once. It returns the
// number of aliens destroyed.
func (r *Resolver) ResolveBulletAlienCollisions() int {
	bullets := r.field.projectiles.Bullets()
	aliens := r.field.fleet.Aliens()
	if len(bullets) == 0 || len(aliens) == 0 {
		return 0
	}

	deadBullets := make([]bool, len(bullets))
	deadAliens := make([]bool, len(aliens))
	hit := false

	for i, b := range bullets {
		for j, a := range aliens {
			if b.Intersects(a.Rect) {
				deadBullets[i] = true
				deadAliens[j] = true
				hit = true
			}
		}
	}
	if !hit {
		return 0
	}

	r.field.projectiles.removeMarked(deadBullets)
	destroyed := r.field.fleet.removeMarked(deadAliens)
	r.score.RecordScore(r.field.settings.AlienPoints * destroyed)
	return destroyed
}

// ResolveWaveCompletion starts the next wave when the fleet is gone:
// bullets cleared, fleet rebuilt, speeds increased and level incremented.
func (r *Resolver) ResolveWaveCompletion() bool {
	if !r.field.fleet.Empty() {
		return false
	}

	r.field.projectiles.Clear()
	r.field.rebuildFleet()
	r.field.settings.IncreaseSpeed()
	r.score.RecordLevelUp()
	return true
}

// ResolveShipAlienCollision registers a hit when an alien touches the ship.
func (r *Resolver) ResolveShipAlienCollision() bool {
	if !r.field.fleet.Collides(r.field.ship.Rect) {
		return false
	}
	r.states.RegisterShipHit()
	return true
}

// ResolveAliensReachedBottom registers a hit when an alien reaches the bottom.
func (r *Resolver) ResolveAliensReachedBottom() bool {
	if !r.field.fleet.ReachedBottom(r.field.settings.ScreenH) {
		return false
	}
	r.states.RegisterShipHit()
	return true
}

// resolveLoss checks both loss conditions against the surviving fleet.
// A ship hit rebuilds the fleet, so at most one hit is registered per tick.
func (r *Resolver) resolveLoss() bool {
	if r.ResolveShipAlienCollision() {
		return true
	}
	return r.ResolveAliensReachedBottom()
}
