package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestStartRequiresPlayButton(t *testing.T) {
	s := newTestSim(nil)
	btn := s.PlayButton()

	miss := core.NewInputFrame()
	miss.SetAt(core.ActionStart, 0, 0)
	s.Step(miss)
	if s.Mode() != ModeInactive {
		t.Fatalf("click outside the play button started the round")
	}

	hit := core.NewInputFrame()
	hit.SetAt(core.ActionStart, btn.X+1, btn.Y+1)
	s.Step(hit)
	if s.Mode() != ModeActive {
		t.Errorf("click on the play button did not start the round, mode=%v", s.Mode())
	}
}

func TestPlayButtonCentered(t *testing.T) {
	s := newTestSim(nil)
	btn := s.PlayButton()
	if btn.W != PlayButtonW || btn.H != PlayButtonH {
		t.Errorf("play button size = %vx%v", btn.W, btn.H)
	}
	if btn.X != 33 || btn.Y != 10 {
		t.Errorf("play button at (%v, %v), expected (33, 10)", btn.X, btn.Y)
	}
}

func TestInactiveIgnoresGameplay(t *testing.T) {
	s := newTestSim(nil)
	before := s.Snapshot()

	for range 10 {
		s.Step(input(core.ActionFire, core.ActionPause))
	}

	after := s.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("inactive simulation should not advance")
	}
	if after.Paused {
		t.Error("pause should not toggle while inactive")
	}
}

func TestQuitIntent(t *testing.T) {
	s := startedSim(nil)
	s.Step(input(core.ActionQuit))
	if !s.QuitRequested() {
		t.Error("QuitRequested() = false after a quit intent")
	}
}

func TestPlayerPause(t *testing.T) {
	s := startedSim(nil)
	s.Step(input(core.ActionPause))
	if !s.Paused() {
		t.Fatal("Paused() = false after pause intent")
	}

	before := s.Snapshot()
	for range 5 {
		s.Step(input(core.ActionFire))
	}
	after := s.Snapshot()
	if after.Hash() != before.Hash() {
		t.Error("gameplay advanced while paused")
	}

	s.Step(input(core.ActionPause))
	if s.Paused() {
		t.Error("second pause intent should resume")
	}
}

func TestFireThroughStep(t *testing.T) {
	s := startedSim(nil)
	for range 3 {
		s.Step(input(core.ActionFire))
	}
	if n := len(s.Snapshot().Bullets); n != 3 {
		t.Fatalf("live bullets = %d, expected 3", n)
	}

	for range 2 {
		s.Step(input(core.ActionFire))
		if n := len(s.Snapshot().Bullets); n != 3 {
			t.Errorf("live bullets = %d, fire at the cap must be dropped", n)
		}
	}
}

func TestShipSteeringAndClamp(t *testing.T) {
	s := startedSim(nil)
	x0 := s.field.ship.X

	right := core.NewInputFrame()
	right.Hold(core.ActionMoveRight, true)
	s.Step(right)
	if s.field.ship.X != x0+0.5 {
		t.Errorf("ship x = %v, expected %v", s.field.ship.X, x0+0.5)
	}

	// Level stays held without further frames.
	for range 200 {
		s.Step(input())
	}
	if r := s.field.ship.Right(); r > testScreenW {
		t.Errorf("ship right edge = %v, past the screen", r)
	}

	release := core.NewInputFrame()
	release.Hold(core.ActionMoveRight, false)
	s.Step(release)
	x := s.field.ship.X
	s.Step(input())
	if s.field.ship.X != x {
		t.Error("ship kept moving after release")
	}
}

func TestOppositeHoldsCancel(t *testing.T) {
	s := startedSim(nil)
	x0 := s.field.ship.X

	in := core.NewInputFrame()
	in.Hold(core.ActionMoveLeft, true)
	in.Hold(core.ActionMoveRight, true)
	s.Step(in)

	if s.field.ship.Direction() != 0 {
		t.Errorf("Direction() = %v, expected 0", s.field.ship.Direction())
	}
	if s.field.ship.X != x0 {
		t.Errorf("ship moved to %v with both directions held", s.field.ship.X)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := startedSim(nil)
	s.Step(input(core.ActionFire))

	snap := s.Snapshot()
	snap.Aliens[0].X = -100
	snap.Bullets[0].Y = -100

	if s.field.fleet.Aliens()[0].X == -100 || s.field.projectiles.Bullets()[0].Y == -100 {
		t.Error("mutating a snapshot changed simulation state")
	}
}

func TestRoundIDsFromUUID(t *testing.T) {
	s := NewSimulation(NewSettings(testConfig(), testScreenW, testScreenH), nil, nil, 60)
	s.Step(input(core.ActionStart))
	first := s.Stats().RoundID
	if len(first) != 36 {
		t.Errorf("RoundID = %q, expected a UUID", first)
	}

	s.score.RecordShipsLeft(1)
	s.states.RegisterShipHit()
	s.Step(input(core.ActionStart))
	if s.Stats().RoundID == first {
		t.Error("each round should get a new RoundID")
	}
}

func TestSimulationDeterminism(t *testing.T) {
	frames := make([]core.InputFrame, 600)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch {
		case i == 0:
			frames[i].Set(core.ActionStart)
		case i%7 == 0:
			frames[i].Set(core.ActionFire)
		}
		if i%90 == 1 {
			frames[i].Hold(core.ActionMoveLeft, i%180 == 1)
			frames[i].Hold(core.ActionMoveRight, i%180 != 1)
		}
	}

	run := func() Snapshot {
		s := newTestSim(nil)
		for _, in := range frames {
			s.Step(in)
		}
		return s.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Stats.Score != snap2.Stats.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Stats.Score, snap2.Stats.Score)
	}
}
