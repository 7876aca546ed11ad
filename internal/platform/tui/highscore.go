package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// StoreHighScore adapts the scores database to registry.HighScoreStore for
// one game and difficulty. Database failures are logged and never reach
// the game.
type StoreHighScore struct {
	store      *storage.Store
	gameID     string
	difficulty string
	logger     *log.Logger
	best       int
}

// NewStoreHighScore loads the persisted high score for gameID at difficulty.
// A nil logger discards warnings.
func NewStoreHighScore(store *storage.Store, gameID, difficulty string, logger *log.Logger) *StoreHighScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if difficulty == "" {
		difficulty = "normal"
	}

	h := &StoreHighScore{
		store:      store,
		gameID:     gameID,
		difficulty: difficulty,
		logger:     logger,
	}

	best, err := store.HighScore(gameID, difficulty)
	if err != nil {
		logger.Warn("could not load high score", "game", gameID, "difficulty", difficulty, "error", err)
	}
	h.best = best
	return h
}

// HighScore returns the best score known for this game and difficulty.
func (h *StoreHighScore) HighScore() int {
	return h.best
}

// HighScoreChanged persists a new high score reached during a round.
func (h *StoreHighScore) HighScoreChanged(score int) {
	if score <= h.best {
		return
	}
	h.best = score
	if err := h.store.SaveHighScore(h.gameID, h.difficulty, score); err != nil {
		h.logger.Warn("could not save high score", "game", h.gameID, "score", score, "error", err)
	}
}
