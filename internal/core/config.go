package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	Seed       int64  // RNG seed for deterministic gameplay
	ConfigPath string // Custom game config YAML, empty for the search path
	Difficulty string // Difficulty preset name, empty for the config as loaded
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Level    int    // Current level (wave number)
	GameOver bool   // Whether the round has ended
	Paused   bool   // Whether the game is paused
	Quit     bool   // Whether the player asked to leave
	RoundID  string // Identifier of the current round, empty before the first start
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// CursorVisible is non-nil when the game asked the platform to show
	// (true) or hide (false) the pointer during this tick.
	CursorVisible *bool
}
