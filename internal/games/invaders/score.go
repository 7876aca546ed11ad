package invaders

// Stats are the per-round counters.
type Stats struct {
	Score     int
	Level     int
	ShipsLeft int
	RoundID   string
}

// ScoreTracker mirrors Stats and forwards new high scores to the store.
type ScoreTracker struct {
	stats     Stats
	shipLimit int
	highScore int
	store     HighScoreStore
}

// NewScoreTracker creates a tracker seeded with the store's high score.
func NewScoreTracker(store HighScoreStore, shipLimit int) *ScoreTracker {
	t := &ScoreTracker{
		shipLimit: shipLimit,
		store:     store,
		highScore: store.HighScore(),
	}
	t.Reset("")
	return t
}

// Reset starts a fresh round: score 0, level 1 and a full set of ships.
func (t *ScoreTracker) Reset(roundID string) {
	t.stats = Stats{
		Level:     1,
		ShipsLeft: t.shipLimit,
		RoundID:   roundID,
	}
}

// RecordScore adds delta to the score. The store is told only when the
// score beats the high score.
func (t *ScoreTracker) RecordScore(delta int) {
	if delta <= 0 {
		return
	}
	t.stats.Score += delta
	if t.stats.Score > t.highScore {
		t.highScore = t.stats.Score
		t.store.HighScoreChanged(t.highScore)
	}
}

// RecordLevelUp increments the level.
func (t *ScoreTracker) RecordLevelUp() {
	t.stats.Level++
}

// RecordShipsLeft sets the remaining ship count, never below zero.
func (t *ScoreTracker) RecordShipsLeft(n int) {
	if n < 0 {
		n = 0
	}
	t.stats.ShipsLeft = n
}

// Stats returns a copy of the current counters.
func (t *ScoreTracker) Stats() Stats {
	return t.stats
}

// HighScore returns the best score seen, including the current round.
func (t *ScoreTracker) HighScore() int {
	return t.highScore
}
