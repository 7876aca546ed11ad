package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	entries := []ScoreEntry{
		{GameID: "invaders", RoundID: "r1", Difficulty: "normal", Score: 100, Level: 2},
		{GameID: "invaders", RoundID: "r2", Difficulty: "normal", Score: 50, Level: 1},
		{GameID: "invaders", RoundID: "r3", Difficulty: "normal", Score: 200, Level: 3},
		{GameID: "invaders", RoundID: "r4", Difficulty: "hard", Score: 500, Level: 4},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", "normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != expected[i] {
			t.Errorf("Score[%d] = %d, expected %d", i, s.Score, expected[i])
		}
	}
	if scores[0].RoundID != "r3" || scores[0].Level != 3 {
		t.Errorf("top entry = %+v, expected round r3 at level 3", scores[0])
	}

	all, err := store.TopScores("invaders", "", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("TopScores across difficulties = %+v", all)
	}
}

func TestStoreSaveScoreDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{GameID: "invaders", RoundID: "r1", Score: 10}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	e, err := store.ScoreByRound("r1")
	if err != nil {
		t.Fatalf("ScoreByRound() failed: %v", err)
	}
	if e == nil {
		t.Fatal("ScoreByRound() = nil, expected the saved round")
	}
	if e.Difficulty != "normal" || e.Level != 1 {
		t.Errorf("defaults not applied: %+v", e)
	}

	missing, err := store.ScoreByRound("nope")
	if err != nil || missing != nil {
		t.Errorf("ScoreByRound(missing) = %v, %v", missing, err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore(ScoreEntry{GameID: "test", Difficulty: "normal", Score: i * 10})
	}

	scores, err := store.TopScores("test", "normal", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Top score = %d, expected 190", scores[0].Score)
	}

	scores, err = store.TopScores("test", "normal", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("default limit returned %d scores, expected 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "normal", Score: 50})
	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "normal", Score: 150})
	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "easy", Score: 900})

	high, err = store.HighScore("invaders", "normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 150 {
		t.Errorf("HighScore() = %d, expected 150", high)
	}
}

func TestStoreSaveHighScoreOnlyRaises(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		score    int
		expected int
	}{
		{300, 300},
		{200, 300},
		{450, 450},
		{450, 450},
	}
	for _, s := range steps {
		if err := store.SaveHighScore("invaders", "hard", s.score); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s.score, err)
		}
		high, err := store.HighScore("invaders", "hard")
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if high != s.expected {
			t.Errorf("after SaveHighScore(%d) HighScore() = %d, expected %d", s.score, high, s.expected)
		}
	}

	// A high score reached mid-round counts before the round is saved.
	if _, err := store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "hard", Score: 100}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if high, _ := store.HighScore("invaders", "hard"); high != 450 {
		t.Errorf("HighScore() = %d, a lower round must not lower it", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "normal", Score: 100})
	store.SaveScore(ScoreEntry{GameID: "other", Difficulty: "normal", Score: 300})

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("invaders", "", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore("invaders", "normal"); high != 0 {
		t.Errorf("HighScore() = %d after clear, expected 0", high)
	}

	other, _ := store.TopScores("other", "", 10)
	if len(other) != 1 {
		t.Errorf("Other game scores affected, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "normal", Score: 100, Level: 2})
	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "normal", Score: 300, Level: 4})
	store.SaveScore(ScoreEntry{GameID: "invaders", Difficulty: "hard", Score: 50, Level: 1})

	stats, err := store.GetGameStats("invaders", "normal")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 4 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("avg/total = %v/%d, expected 200/400", stats.AvgScore, stats.TotalScore)
	}

	empty, err := store.GetGameStats("invaders", "easy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed difficulty = %+v", empty)
	}

	all, err := store.GetAllDifficultyStats("invaders")
	if err != nil {
		t.Fatalf("GetAllDifficultyStats() failed: %v", err)
	}
	if len(all) != 2 || all["hard"] == nil || all["hard"].HighScore != 50 {
		t.Errorf("GetAllDifficultyStats() = %+v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Verify nested directories are created for the database file
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
