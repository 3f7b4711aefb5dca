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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("rush", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()
	if high, _ := store.HighScore("rush"); high != 42 {
		t.Errorf("HighScore after reopen = %d, want 42", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("rush", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("rush_gauntlet", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("rush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
		if scores[i].GameID != "rush" {
			t.Errorf("scores[%d].GameID = %q", i, scores[i].GameID)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("rush", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // default
		{50, 20},
	}
	for _, tc := range tests {
		scores, err := store.TopScores("rush", tc.limit)
		if err != nil {
			t.Fatalf("TopScores(%d) failed: %v", tc.limit, err)
		}
		if len(scores) != tc.want {
			t.Errorf("TopScores(%d) returned %d scores, want %d", tc.limit, len(scores), tc.want)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("rush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no scores, got %d", high)
	}

	store.SaveScore("rush", 100)
	store.SaveScore("rush", 300)
	store.SaveScore("rush", 200)

	if high, _ = store.HighScore("rush"); high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("rush", 100)
	store.SaveRun(Run{GameID: "rush", Outcome: OutcomeLost, Score: 0})
	store.SaveScore("rush_gauntlet", 200)

	if err := store.ClearScores("rush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("rush", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("rush", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("rush_gauntlet", 10); len(scores) != 1 {
		t.Errorf("Other games should keep their scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("rush", 100)
	store.SaveScore("rush", 300)

	stats, err = store.GetGameStats("rush")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
