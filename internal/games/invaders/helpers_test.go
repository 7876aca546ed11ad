package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	testScreenW = 80
	testScreenH = 24
)

func testConfig() config.InvadersConfig {
	return config.DefaultInvadersConfig()
}

// newTestSim builds an 80x24 simulation with a fixed round ID.
func newTestSim(mutate func(*config.InvadersConfig), opts ...Option) *Simulation {
	cfg := config.DefaultInvadersConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	opts = append([]Option{WithRoundIDs(func() string { return "round-1" })}, opts...)
	return NewSimulation(NewSettings(cfg, testScreenW, testScreenH), nil, nil, 60, opts...)
}

// startedSim returns a simulation with an active round.
func startedSim(mutate func(*config.InvadersConfig)) *Simulation {
	s := newTestSim(mutate)
	s.Step(input(core.ActionStart))
	return s
}

// input builds a frame with the given edge-triggered actions.
func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// bulletOn returns a 1x1 bullet inside r.
func bulletOn(r core.Rect) Bullet {
	return Bullet{Entity{core.NewRect(r.X+1, r.Y, 1, 1)}}
}
