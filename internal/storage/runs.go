package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

// Run is one finished trip through a dungeon.
type Run struct {
	ID           int64
	RunID        string
	GameID       string
	Coins        int
	Kills        int
	RoomsVisited int
	Outcome      core.Outcome
	Duration     time.Duration
	CreatedAt    time.Time
}

// NewRun builds a run record from a game's summary. The run gets a fresh ID.
func NewRun(gameID string, stats core.RunStats, outcome core.Outcome, duration time.Duration) Run {
	if outcome == core.OutcomeNone {
		outcome = core.OutcomeQuit
	}
	return Run{
		RunID:        uuid.NewString(),
		GameID:       gameID,
		Coins:        stats.Coins,
		Kills:        stats.Kills,
		RoomsVisited: stats.RoomsVisited,
		Outcome:      outcome,
		Duration:     duration,
	}
}

// SaveRun records a finished run. Runs without a RunID get one.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	} else if _, err := uuid.Parse(run.RunID); err != nil {
		return 0, fmt.Errorf("storage: invalid run id %q: %w", run.RunID, err)
	}

	res, err := s.db.Exec(
		`INSERT INTO runs (run_id, game_id, coins, kills, rooms_visited, outcome, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.GameID,
		run.Coins,
		run.Kills,
		run.RoomsVisited,
		string(run.Outcome),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RunByID retrieves a run by its run ID. Returns nil if there is none.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, game_id, coins, kills, rooms_visited, outcome, duration_ms, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs for a dungeon, newest first.
// An empty gameID returns runs for every dungeon.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, coins, kills, rooms_visited, outcome, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var outcome string
	var durationMs int64
	var createdAt any

	err := sc.Scan(
		&run.ID,
		&run.RunID,
		&run.GameID,
		&run.Coins,
		&run.Kills,
		&run.RoomsVisited,
		&outcome,
		&durationMs,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}

	run.Outcome = core.Outcome(outcome)
	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}
