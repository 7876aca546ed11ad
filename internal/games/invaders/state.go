package invaders

import "time"

// Mode is the high-level state of the game.
type Mode int

const (
	ModeInactive Mode = iota // Waiting for the first start
	ModeActive               // A round is being played
	ModeEnded                // All ships lost, waiting for a restart
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeInactive:
		return "inactive"
	case ModeActive:
		return "active"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// suspension is a gameplay pause measured in simulated time.
type suspension struct {
	now      time.Duration
	resumeAt time.Duration
}

func (s *suspension) advance(dt time.Duration) {
	s.now += dt
}

func (s *suspension) suspend(d time.Duration) {
	s.resumeAt = s.now + d
}

func (s *suspension) active() bool {
	return s.now < s.resumeAt
}

func (s *suspension) cancel() {
	s.resumeAt = s.now
}

// StateMachine owns the mode and performs the resets that go with each
// transition. Calls that are invalid in the current mode do nothing.
type StateMachine struct {
	mode       Mode
	field      *playfield
	score      *ScoreTracker
	presenter  Presenter
	pause      *suspension
	newRoundID func() string
}

// Mode returns the current mode.
func (m *StateMachine) Mode() Mode {
	return m.mode
}

// Start begins a new round from Inactive or Ended. It returns false when a
// round is already active.
func (m *StateMachine) Start() bool {
	if m.mode == ModeActive {
		return false
	}

	m.field.settings.InitializeDynamic()
	m.score.Reset(m.newRoundID())
	m.field.fleet.ResetDirection()
	m.field.reset()
	m.pause.cancel()

	m.mode = ModeActive
	m.presenter.SetCursorVisible(false)
	return true
}

// RegisterShipHit takes a ship away. With ships left the field is rebuilt
// and gameplay is suspended for the hit pause, otherwise the round ends.
func (m *StateMachine) RegisterShipHit() {
	if m.mode != ModeActive {
		return
	}

	left := m.score.Stats().ShipsLeft - 1
	m.score.RecordShipsLeft(left)

	if left > 0 {
		m.field.reset()
		m.pause.suspend(m.field.settings.HitPause)
		return
	}

	m.mode = ModeEnded
	m.presenter.SetCursorVisible(true)
}
