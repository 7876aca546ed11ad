package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	steering   Steering
	inputFrame core.InputFrame
	gameState  core.GameState
	savedRound string // Round ID whose result was last written to the store
	tickLoop   uint64
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// When store is non-nil and the game accepts one, the game reports new
// high scores straight to the database. A nil logger discards warnings.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if aware, ok := game.(registry.HighScoreAware); ok && store != nil {
		aware.SetHighScoreStore(NewStoreHighScore(store, game.ID(), cfg.Difficulty, logger))
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		steering:   NewSteering(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		tickLoop:   newTickLoop(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.reportConfigError()
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate, m.tickLoop)
}

// reportConfigError logs a configuration the game could not use.
func (m Model) reportConfigError() {
	if r, ok := m.game.(registry.ConfigReporter); ok {
		if err := r.ConfigError(); err != nil {
			m.logger.Warn("invalid config, using defaults", "game", m.game.ID(), "error", err)
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.loop != m.tickLoop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// roundInProgress reports whether a round has started and not yet ended.
func (m Model) roundInProgress() bool {
	return m.gameState.RoundID != "" && !m.gameState.GameOver
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keyMapper.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case IsSteering(action):
		m.steering.Press(action, &m.inputFrame)
	case action == core.ActionBack:
		// Leaving mid-round would drop the round, so back only works between rounds
		if !m.roundInProgress() || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	default:
		// Quit also goes through the game, which reports it on the next tick
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A running round keeps its playfield; otherwise rebuild for the new size
	if !m.roundInProgress() {
		m.game.Reset(m.config)
		m.reportConfigError()
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.steering.Tick(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && m.gameState.RoundID != m.savedRound {
		m.saveRound()
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickRate, m.tickLoop)}
	if result.CursorVisible != nil {
		cmds = append(cmds, cursorCmd(*result.CursorVisible))
	}
	return m, tea.Batch(cmds...)
}

// cursorCmd shows or hides the pointer by toggling mouse reporting.
func cursorCmd(visible bool) tea.Cmd {
	if visible {
		return tea.EnableMouseCellMotion
	}
	return tea.DisableMouse
}

// saveRound records the finished round once.
func (m *Model) saveRound() {
	m.savedRound = m.gameState.RoundID
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:     m.game.ID(),
		RoundID:    m.gameState.RoundID,
		Difficulty: m.config.Difficulty,
		Score:      m.gameState.Score,
		Level:      m.gameState.Level,
	})
	if err != nil {
		m.logger.Warn("could not save round", "round", m.gameState.RoundID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
// Returns true when the player backed out to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks on the play button
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
