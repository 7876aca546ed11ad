package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuStartsOnRequestedDifficulty(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Difficulty: "hard"}
	m := NewMenuModel("stub", nil, cfg)

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	res := m.result()
	if !res.Play || res.Config.Difficulty != "hard" {
		t.Errorf("result() = %+v, expected to play hard", res)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("stub", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	// Default lands on normal; up picks easy
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if res := m.result(); res.Config.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, expected easy", res.Config.Difficulty)
	}

	m = NewMenuModel("stub", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for range 10 {
		m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.IsQuitting() || !m.result().Quit {
		t.Error("last item should quit")
	}
}

func TestMenuScoreboardShortcut(t *testing.T) {
	m := NewMenuModel("stub", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore(storage.ScoreEntry{GameID: "stub", Difficulty: "easy", Score: 1234})

	m := NewMenuModel("stub", store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	if !strings.Contains(view, "best 1234") {
		t.Errorf("menu should show the easy high score:\n%s", view)
	}
	if !strings.Contains(view, "S T U B") {
		t.Error("menu should show the title")
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	store.SaveScore(storage.ScoreEntry{GameID: "stub", Difficulty: "easy", Score: 100, Level: 2})
	store.SaveScore(storage.ScoreEntry{GameID: "stub", Difficulty: "hard", Score: 300, Level: 4})

	m := NewScoreboardModel("stub", store, "", 100, 30)
	if len(m.scores) != 2 || m.stats != nil {
		t.Fatalf("All tab: %d scores, stats %v", len(m.scores), m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].difficulty != "easy" {
		t.Fatalf("tab = %q, expected easy", m.tabs[m.tabCursor].difficulty)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 100 {
		t.Errorf("easy scores = %+v", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 1 || m.stats.BestLevel != 2 {
		t.Errorf("easy stats = %+v", m.stats)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.tabs[m.tabCursor].difficulty != "hard" {
		t.Errorf("tab = %q after wrapping back, expected hard", m.tabs[m.tabCursor].difficulty)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Hard") {
		t.Error("title should name the tab")
	}
}

func TestSessionFlow(t *testing.T) {
	// Unregistered game: play fails and the session quits, scores still open
	s := NewSessionModel("stub", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected the scoreboard", s.screen)
	}
	if !strings.Contains(s.View(), "No rounds recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.screen != screenMenu {
		t.Errorf("screen = %v, expected the menu after back", s.screen)
	}
	if s.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}
