// Package invaders implements the Alien Invasion simulation: a ship at the
// bottom of the screen shooting at a descending fleet of aliens.
//
// Simulation is the pure core. Game adapts it to the platform's
// registry.Game interface and draws its snapshots into a core.Screen.
package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and storage identifier of the game.
const GameID = "invaders"

// Minimum screen size that fits a fleet, the HUD and the play button.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// Visual characters for rendering
const (
	BulletChar = '|'
	AlienFill  = 'W'
	ShipFill   = 'A'
	ShipIcon   = '^'
)

var (
	alienSprite = []string{"/oo\\", "<  >"}
	shipSprite  = []string{"  A  ", "/===\\"}
)

// Game adapts a Simulation to registry.Game and implements Presenter by
// forwarding cursor requests to the platform through StepResult.
type Game struct {
	sim     *Simulation
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	store   HighScoreStore
	cursor  *bool

	configErr      error
	screenTooSmall bool
	fleetTooLarge  bool
}

// New creates a new Invaders game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// SetHighScoreStore sets where new high scores are reported.
// It takes effect on the next Reset.
func (g *Game) SetHighScoreStore(store registry.HighScoreStore) {
	g.store = store
}

// Reset loads the configuration and builds a fresh, inactive simulation.
// A configuration that fails to load falls back to the defaults and is
// reported by ConfigError.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadInvadersWithPreset(runtime.ConfigPath, runtime.Difficulty)
	g.configErr = err
	if err != nil {
		cfg = config.DefaultInvadersConfig()
		if preset, perr := config.ParsePreset(runtime.Difficulty); perr == nil {
			config.ApplyInvadersPreset(&cfg, preset)
		}
	}
	g.cfg = cfg

	if g.store == nil {
		g.store = &MemoryHighScore{}
	}

	settings := NewSettings(cfg, runtime.ScreenW, runtime.ScreenH)
	g.fleetTooLarge = !fleetFits(settings)
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH || g.fleetTooLarge
	g.cursor = nil
	g.sim = NewSimulation(settings, g.store, g, runtime.TickRate)
}

// fleetFits reports whether at least one alien fits the playfield.
// An empty fleet would count as a cleared wave on every tick.
func fleetFits(s *Settings) bool {
	f := NewFleet(s.DropStep)
	f.Build(s.AlienW, s.AlienH, s.ScreenW, s.ScreenH)
	return !f.Empty()
}

// ConfigError returns the error from the last configuration load, or nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// SetCursorVisible implements Presenter.
func (g *Game) SetCursorVisible(visible bool) {
	g.cursor = &visible
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cursor = nil

	if g.screenTooSmall {
		if in.Has(core.ActionQuit) {
			g.sim.Step(in)
		}
		return core.StepResult{State: g.State()}
	}

	g.sim.Step(in)
	return core.StepResult{State: g.State(), CursorVisible: g.cursor}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	stats := g.sim.Stats()
	return core.GameState{
		Score:    stats.Score,
		Level:    stats.Level,
		GameOver: g.sim.Mode() == ModeEnded,
		Paused:   g.sim.Paused(),
		Quit:     g.sim.QuitRequested(),
		RoundID:  stats.RoundID,
	}
}

// Snapshot returns a read-only copy of the simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		if g.fleetTooLarge && dst.Width() >= MinScreenW && dst.Height() >= MinScreenH {
			dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("No room for %dx%d aliens", g.cfg.Alien.Width, g.cfg.Alien.Height))
		} else {
			dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		}
		return
	}

	snap := g.sim.Snapshot()

	for _, a := range snap.Aliens {
		drawSprite(dst, a, alienSprite, AlienFill, core.ColorBrightGreen)
	}
	for _, b := range snap.Bullets {
		x, y, _, _ := b.Cell()
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}
	if snap.Mode == ModeActive {
		drawSprite(dst, snap.Ship, shipSprite, ShipFill, core.ColorCyan)
	}

	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// renderHUD draws ships left, high score, score and level on the top row.
func renderHUD(dst *core.Screen, snap Snapshot) {
	ships := strings.Repeat(string(ShipIcon), snap.Stats.ShipsLeft)
	dst.DrawTextColored(1, 0, ships, core.ColorCyan)

	dst.DrawTextCentered(0, fmt.Sprintf("High: %d", snap.HighScore))

	score := fmt.Sprintf("Score: %d  Level: %d", snap.Stats.Score, snap.Stats.Level)
	dst.DrawText(dst.Width()-len(score)-1, 0, score)
}

// renderOverlay draws the play button and status messages.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	midY := dst.Height() / 2

	switch {
	case snap.Mode != ModeActive:
		btn := snap.PlayButton
		bx, by, bw, _ := btn.Cell()
		dst.DrawBox(btn, core.ColorGreen)
		dst.DrawTextColored(bx+(bw-4)/2, by+1, "PLAY", core.ColorWhite)

		if snap.Mode == ModeEnded {
			dst.DrawTextCentered(by-2, "GAME OVER")
		} else {
			dst.DrawTextCentered(by-2, "ALIEN INVASION")
		}
		dst.DrawTextCentered(by+4, "Click PLAY or press Enter")
		dst.DrawTextCentered(by+5, "Arrows/AD: Move  Space: Fire  P: Pause  Q: Quit")
	case snap.Paused:
		dst.DrawTextCentered(midY, "PAUSED")
		dst.DrawTextCentered(midY+1, "Press P to resume")
	case snap.HitPaused:
		dst.DrawTextCentered(midY, "SHIP LOST")
	}
}

// drawSprite draws sprite at r when the sprite matches r's size in cells,
// and fills r with fill otherwise.
func drawSprite(dst *core.Screen, r core.Rect, sprite []string, fill rune, c core.Color) {
	x, y, w, h := r.Cell()
	if len(sprite) != h || len([]rune(sprite[0])) != w {
		dst.DrawRect(r, fill, c)
		return
	}
	for dy, line := range sprite {
		for dx, ch := range []rune(line) {
			if ch != ' ' {
				dst.SetColored(x+dx, y+dy, ch, c)
			}
		}
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
