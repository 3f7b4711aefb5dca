package storage

import (
	"fmt"
	"time"
)

// Run outcomes as stored in the runs table.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Run is one finished Rush run.
type Run struct {
	ID        int64
	GameID    string
	Outcome   string
	Score     int
	Ticks     int
	HP        int
	Kills     int
	Seed      int64
	CreatedAt time.Time
}

// RunStats aggregates the runs of one game.
type RunStats struct {
	GameID    string
	Runs      int
	Wins      int
	BestTicks int // fastest win, 0 without wins
	AvgKills  float64
}

// WinRate returns the share of runs won, in [0, 1].
func (r RunStats) WinRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Runs)
}

// SaveRun records a finished run together with its score entry.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(r Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run insert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		`INSERT INTO runs (game_id, outcome, score, ticks, hp, kills, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Outcome, r.Score, r.Ticks, r.HP, r.Kills, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", r.GameID, r.Score); err != nil {
		return 0, fmt.Errorf("storage: cannot save run score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

const runColumns = `id, game_id, outcome, score, ticks, hp, kills, seed, created_at`

// RecentRuns returns the latest runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ? ORDER BY id DESC LIMIT ?`,
		gameID, limit,
	)
}

// TopRuns returns the best-scoring runs of a game. Ties go to the
// earlier run.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryRuns(query, gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Outcome, &r.Score, &r.Ticks, &r.HP, &r.Kills, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunStats aggregates every run recorded for a game.
func (s *Store) RunStats(gameID string) (RunStats, error) {
	stats := RunStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN ticks END), 0),
		        COALESCE(AVG(kills), 0)
		 FROM runs WHERE game_id = ?`,
		OutcomeWon, OutcomeWon, gameID,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestTicks, &stats.AvgKills)
	if err != nil {
		return RunStats{}, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	return stats, nil
}
