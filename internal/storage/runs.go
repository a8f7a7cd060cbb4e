package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one finished game.
type Run struct {
	ID           string
	GameID       string
	Score        int
	Success      bool
	PiecesLocked int
	PiecesTotal  int
	Level        int
	Duration     time.Duration
	CreatedAt    time.Time
}

// PlayStats aggregates the runs table.
type PlayStats struct {
	GamesPlayed  int
	GamesWon     int
	PiecesLocked int
	PlayTime     time.Duration
	BestLevel    int
}

// SaveRun records a finished game. A missing ID gets a fresh UUID.
// Returns the run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, score, success, pieces_locked, pieces_total, level, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Score, r.Success, r.PiecesLocked, r.PiecesTotal, r.Level,
		int64(r.Duration/time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns returns the latest runs, newest first. An empty gameID
// returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, success, pieces_locked, pieces_total, level, duration_secs, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var secs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Success, &r.PiecesLocked,
			&r.PiecesTotal, &r.Level, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Duration = time.Duration(secs) * time.Second
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// PlayStats aggregates every recorded run.
func (s *Store) PlayStats() (*PlayStats, error) {
	var st PlayStats
	var secs int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(success), 0), COALESCE(SUM(pieces_locked), 0),
		        COALESCE(SUM(duration_secs), 0), COALESCE(MAX(level), 0)
		 FROM runs`,
	).Scan(&st.GamesPlayed, &st.GamesWon, &st.PiecesLocked, &secs, &st.BestLevel)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get play stats: %w", err)
	}
	st.PlayTime = time.Duration(secs) * time.Second
	return &st, nil
}
