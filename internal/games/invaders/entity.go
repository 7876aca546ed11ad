package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity is anything with a bounding box on the play field.
type Entity struct {
	core.Rect
}

// Ship is the player's ship. It steers while a move intent is held.
type Ship struct {
	Entity
	movingLeft  bool
	movingRight bool
}

// NewShip creates a ship of the given size, not yet positioned.
func NewShip(w, h float64) *Ship {
	return &Ship{Entity: Entity{core.NewRect(0, 0, w, h)}}
}

// SetMoving records the held level of a move intent.
func (s *Ship) SetMoving(a core.Action, pressed bool) {
	switch a {
	case core.ActionMoveLeft:
		s.movingLeft = pressed
	case core.ActionMoveRight:
		s.movingRight = pressed
	}
}

// Direction returns -1, 0 or +1 from the held move intents.
func (s *Ship) Direction() float64 {
	var d float64
	if s.movingRight {
		d++
	}
	if s.movingLeft {
		d--
	}
	return d
}

// Update moves the ship by speed in the held direction, keeping it on screen.
func (s *Ship) Update(speed, screenW float64) {
	if s.movingRight && s.Right() < screenW {
		s.X += speed
	}
	if s.movingLeft && s.X > 0 {
		s.X -= speed
	}
	s.X = core.ClampF(s.X, 0, screenW-s.W)
}

// CenterOn places the ship at the bottom center of the screen.
func (s *Ship) CenterOn(screenW, screenH float64) {
	s.X = (screenW - s.W) / 2
	s.Y = screenH - s.H
}

// Bullet travels straight up from where it was fired.
type Bullet struct {
	Entity
}

// Alien is one member of the fleet.
type Alien struct {
	Entity
}

// TouchesEdge reports whether the alien has reached the screen edge it is heading for.
func (a Alien) TouchesEdge(direction, screenW float64) bool {
	if direction > 0 {
		return a.Right() >= screenW
	}
	return a.X <= 0
}
