package invaders

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . HighScoreStore,Presenter

// HighScoreStore reads and records the best score.
// Implementations handle their own persistence failures.
type HighScoreStore interface {
	HighScore() int
	HighScoreChanged(score int)
}

// Presenter is the part of the presentation layer the simulation drives.
type Presenter interface {
	SetCursorVisible(visible bool)
}

// MemoryHighScore keeps the high score for the lifetime of the process.
type MemoryHighScore struct {
	best int
}

// HighScore implements HighScoreStore.
func (m *MemoryHighScore) HighScore() int { return m.best }

// HighScoreChanged implements HighScoreStore.
func (m *MemoryHighScore) HighScoreChanged(score int) {
	if score > m.best {
		m.best = score
	}
}

type nopPresenter struct{}

func (nopPresenter) SetCursorVisible(bool) {}
