package invaders

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Play button size in cells.
const (
	PlayButtonW = 14
	PlayButtonH = 3
)

// playfield groups the entities a round mutates.
type playfield struct {
	settings    *Settings
	ship        *Ship
	fleet       *Fleet
	projectiles *Projectiles
}

func (p *playfield) rebuildFleet() {
	s := p.settings
	p.fleet.Build(s.AlienW, s.AlienH, s.ScreenW, s.ScreenH)
}

// reset clears bullets and aliens, builds a new fleet and re-centers the ship.
func (p *playfield) reset() {
	p.projectiles.Clear()
	p.fleet.Clear()
	p.rebuildFleet()
	p.ship.CenterOn(p.settings.ScreenW, p.settings.ScreenH)
}

// Simulation advances one game of Invaders a tick at a time.
// It is not safe for concurrent use.
type Simulation struct {
	field    *playfield
	score    *ScoreTracker
	states   *StateMachine
	resolver *Resolver
	pause    suspension

	tickDuration time.Duration
	playButton   core.Rect
	paused       bool
	quit         bool
	tick         uint64
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRoundIDs replaces the generator used for round identifiers.
func WithRoundIDs(gen func() string) Option {
	return func(s *Simulation) {
		s.states.newRoundID = gen
	}
}

// NewSimulation wires a simulation around the given settings and collaborators.
// A nil store keeps the high score in memory and a nil presenter is ignored.
func NewSimulation(settings *Settings, store HighScoreStore, presenter Presenter, tickRate int, opts ...Option) *Simulation {
	if store == nil {
		store = &MemoryHighScore{}
	}
	if presenter == nil {
		presenter = nopPresenter{}
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	field := &playfield{
		settings:    settings,
		ship:        NewShip(settings.ShipW, settings.ShipH),
		fleet:       NewFleet(settings.DropStep),
		projectiles: NewProjectiles(settings.BulletsAllowed, settings.BulletW, settings.BulletH),
	}
	field.rebuildFleet()
	field.ship.CenterOn(settings.ScreenW, settings.ScreenH)

	s := &Simulation{
		field:        field,
		score:        NewScoreTracker(store, settings.ShipLimit),
		tickDuration: time.Second / time.Duration(tickRate),
		playButton: core.NewRect(
			float64(int((settings.ScreenW-PlayButtonW)/2)),
			float64(int((settings.ScreenH-PlayButtonH)/2)),
			PlayButtonW, PlayButtonH,
		),
	}
	s.states = &StateMachine{
		field:      field,
		score:      s.score,
		presenter:  presenter,
		pause:      &s.pause,
		newRoundID: uuid.NewString,
	}
	s.resolver = &Resolver{field: field, score: s.score, states: s.states}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step consumes one frame of intents and advances gameplay by one tick.
//
// Intents are always handled. Gameplay only advances while a round is
// active, not paused by the player and not inside the post-hit pause.
func (s *Simulation) Step(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		s.quit = true
		return
	}

	for _, a := range []core.Action{core.ActionMoveLeft, core.ActionMoveRight} {
		if pressed, ok := in.Held(a); ok {
			s.field.ship.SetMoving(a, pressed)
		}
	}

	if in.Has(core.ActionStart) && s.states.Mode() != ModeActive && s.onPlayButton(in.Pointer) {
		s.paused = false
		s.states.Start()
	}

	if s.states.Mode() != ModeActive {
		return
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	s.pause.advance(s.tickDuration)
	if s.pause.active() {
		return
	}
	s.tick++

	f := s.field
	if in.Has(core.ActionFire) {
		f.projectiles.Fire(f.ship)
	}

	f.ship.Update(f.settings.ShipSpeed, f.settings.ScreenW)

	f.projectiles.Advance(f.settings.BulletSpeed)
	s.resolver.ResolveBulletAlienCollisions()
	s.resolver.ResolveWaveCompletion()

	f.fleet.CheckEdges()
	f.fleet.Advance(f.settings.AlienSpeed)
	s.resolver.resolveLoss()
}

// onPlayButton reports whether a start request lands on the play button.
// Keyboard starts carry no pointer and always count.
func (s *Simulation) onPlayButton(p *core.Point) bool {
	if p == nil {
		return true
	}
	return s.playButton.Contains(p.X, p.Y)
}

// Mode returns the current game mode.
func (s *Simulation) Mode() Mode {
	return s.states.Mode()
}

// Stats returns the current round counters.
func (s *Simulation) Stats() Stats {
	return s.score.Stats()
}

// QuitRequested reports whether a quit intent has been seen.
func (s *Simulation) QuitRequested() bool {
	return s.quit
}

// Paused reports whether the player paused the round.
func (s *Simulation) Paused() bool {
	return s.paused
}

// HitPaused reports whether gameplay is suspended after losing a ship.
func (s *Simulation) HitPaused() bool {
	return s.states.Mode() == ModeActive && s.pause.active()
}

// PlayButton returns the area that accepts pointer start requests.
func (s *Simulation) PlayButton() core.Rect {
	return s.playButton
}
