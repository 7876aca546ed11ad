package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Projectiles owns the live bullets and enforces the bullet cap.
type Projectiles struct {
	bullets []Bullet
	allowed int
	w, h    float64
}

// NewProjectiles creates an empty bullet set capped at allowed.
func NewProjectiles(allowed int, w, h float64) *Projectiles {
	return &Projectiles{
		bullets: make([]Bullet, 0, allowed),
		allowed: allowed,
		w:       w,
		h:       h,
	}
}

// Fire spawns a bullet at the ship's top center. At the cap the request is
// dropped and Fire returns false.
func (p *Projectiles) Fire(ship *Ship) bool {
	if len(p.bullets) >= p.allowed {
		return false
	}
	cx, _ := ship.Center()
	p.bullets = append(p.bullets, Bullet{Entity{core.NewRect(cx-p.w/2, ship.Y, p.w, p.h)}})
	return true
}

// Advance moves every bullet up by speed and drops those at or above the top.
func (p *Projectiles) Advance(speed float64) {
	kept := p.bullets[:0]
	for _, b := range p.bullets {
		b.Y -= speed
		if b.Y <= 0 {
			continue
		}
		kept = append(kept, b)
	}
	p.bullets = kept
}

// Clear removes every bullet.
func (p *Projectiles) Clear() {
	p.bullets = p.bullets[:0]
}

// Len returns the number of live bullets.
func (p *Projectiles) Len() int {
	return len(p.bullets)
}

// Bullets returns the live bullets. The slice is owned by the manager.
func (p *Projectiles) Bullets() []Bullet {
	return p.bullets
}

func (p *Projectiles) removeMarked(dead []bool) {
	kept := p.bullets[:0]
	for i, b := range p.bullets {
		if !dead[i] {
			kept = append(kept, b)
		}
	}
	p.bullets = kept
}
