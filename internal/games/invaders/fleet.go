package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Fleet is the grid of aliens. Direction and drop step are fleet-wide.
type Fleet struct {
	aliens    []Alien
	direction float64
	dropStep  float64
	screenW   float64
}

// NewFleet creates an empty fleet heading right.
func NewFleet(dropStep float64) *Fleet {
	return &Fleet{direction: 1, dropStep: dropStep}
}

// Build replaces the fleet with a fresh grid of w x h aliens for a W x H screen.
//
// The grid starts at (w, h). Columns step by 2w while x < W-2w and rows step
// by 2h while y < H-3h, so a screen too small for one row yields no aliens.
func (f *Fleet) Build(w, h, screenW, screenH float64) {
	f.screenW = screenW
	f.aliens = f.aliens[:0]

	for y := h; y < screenH-3*h; y += 2 * h {
		for x := w; x < screenW-2*w; x += 2 * w {
			f.aliens = append(f.aliens, Alien{Entity{core.NewRect(x, y, w, h)}})
		}
	}
}

// CheckEdges reverses the fleet and drops every alien when any alien has
// reached the edge it is heading for. It reports whether that happened.
func (f *Fleet) CheckEdges() bool {
	for _, a := range f.aliens {
		if a.TouchesEdge(f.direction, f.screenW) {
			f.changeDirection()
			return true
		}
	}
	return false
}

func (f *Fleet) changeDirection() {
	for i := range f.aliens {
		f.aliens[i].Y += f.dropStep
	}
	f.direction = -f.direction
}

// Advance moves every alien horizontally by speed in the fleet direction.
func (f *Fleet) Advance(speed float64) {
	dx := speed * f.direction
	for i := range f.aliens {
		f.aliens[i].X += dx
	}
}

// ResetDirection points the fleet right again, as at the start of a round.
func (f *Fleet) ResetDirection() {
	f.direction = 1
}

// Direction returns the fleet-wide direction, +1 for right and -1 for left.
func (f *Fleet) Direction() float64 {
	return f.direction
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	f.aliens = f.aliens[:0]
}

// Empty reports whether the wave has been destroyed.
func (f *Fleet) Empty() bool {
	return len(f.aliens) == 0
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.aliens)
}

// Aliens returns the live aliens. The slice is owned by the fleet.
func (f *Fleet) Aliens() []Alien {
	return f.aliens
}

// Collides reports whether any alien overlaps r.
func (f *Fleet) Collides(r core.Rect) bool {
	for _, a := range f.aliens {
		if a.Intersects(r) {
			return true
		}
	}
	return false
}

// ReachedBottom reports whether any alien's bottom edge is at or below screenH.
func (f *Fleet) ReachedBottom(screenH float64) bool {
	for _, a := range f.aliens {
		if a.Bottom() >= screenH {
			return true
		}
	}
	return false
}

// removeMarked drops the aliens whose index is set in dead and returns how many went.
func (f *Fleet) removeMarked(dead []bool) int {
	kept := f.aliens[:0]
	removed := 0
	for i, a := range f.aliens {
		if dead[i] {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	f.aliens = kept
	return removed
}
