package storage

import (
	"math"
	"testing"
)

func TestSaveRunAlsoScores(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID: "rush", Outcome: OutcomeWon, Score: 2100,
		Ticks: 600, HP: 50, Kills: 2, Seed: 7,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveRun() id = %d", id)
	}

	if high, _ := store.HighScore("rush"); high != 2100 {
		t.Errorf("run score not mirrored into scores, high = %d", high)
	}

	runs, err := store.RecentRuns("rush", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("RecentRuns() returned %d runs", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Outcome != OutcomeWon || r.Ticks != 600 || r.HP != 50 || r.Kills != 2 || r.Seed != 7 {
		t.Errorf("run = %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("run has no timestamp")
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 5; i++ {
		if _, err := store.SaveRun(Run{GameID: "rush", Outcome: OutcomeLost, Score: i * 100, Kills: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(Run{GameID: "rush_gauntlet", Outcome: OutcomeLost})

	runs, err := store.RecentRuns("rush", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, want 3", len(runs))
	}
	for i, want := range []int{5, 4, 3} {
		if runs[i].Kills != want {
			t.Errorf("runs[%d].Kills = %d, want %d", i, runs[i].Kills, want)
		}
	}
}

func TestRunStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.RunStats("rush")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.WinRate() != 0 || stats.BestTicks != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	runs := []Run{
		{GameID: "rush", Outcome: OutcomeWon, Ticks: 900, Kills: 2},
		{GameID: "rush", Outcome: OutcomeWon, Ticks: 450, Kills: 2},
		{GameID: "rush", Outcome: OutcomeLost, Ticks: 300, Kills: 1},
		{GameID: "rush", Outcome: OutcomeLost, Ticks: 120, Kills: 0},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.RunStats("rush")
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if stats.Runs != 4 || stats.Wins != 2 {
		t.Errorf("runs/wins = %d/%d, want 4/2", stats.Runs, stats.Wins)
	}
	if stats.BestTicks != 450 {
		t.Errorf("BestTicks = %d, want 450 (losses do not count)", stats.BestTicks)
	}
	if math.Abs(stats.AvgKills-1.25) > 1e-9 {
		t.Errorf("AvgKills = %v, want 1.25", stats.AvgKills)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate = %v, want 0.5", stats.WinRate())
	}
}

func TestTopRunsOrder(t *testing.T) {
	store := openTestStore(t)
	for _, score := range []int{300, 1200, 300, 50} {
		if _, err := store.SaveRun(Run{GameID: "rush", Outcome: OutcomeLost, Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("rush", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("TopRuns() returned %d runs, want 3", len(runs))
	}
	if runs[0].Score != 1200 || runs[1].Score != 300 || runs[2].Score != 300 {
		t.Errorf("scores = %d %d %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}
	if runs[1].ID > runs[2].ID {
		t.Error("equal scores should keep the earlier run first")
	}
}
