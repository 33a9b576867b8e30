// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/jmpnrn/internal/core"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded scenario run.
type Run struct {
	ID        int64
	Scenario  string
	Level     string
	Mode      string
	Preset    string
	Seed      int64
	Ticks     int
	Actors    int
	Grounded  int
	Contacts  int
	Fallbacks int
	Finished  bool
	CreatedAt time.Time
}

// NewRun builds a record from the final state of a scenario run.
// Preset and Seed are left for the caller.
func NewRun(scenario, level, mode string, st core.SimState) Run {
	return Run{
		Scenario:  scenario,
		Level:     level,
		Mode:      mode,
		Ticks:     st.Tick,
		Actors:    st.Actors,
		Grounded:  st.Grounded,
		Contacts:  st.Contacts,
		Fallbacks: st.Fallbacks,
		Finished:  st.Finished,
	}
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	Scenario     string
	Runs         int
	Finished     int
	AvgTicks     float64
	AvgFallbacks float64
	LastRun      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario TEXT NOT NULL,
			level TEXT NOT NULL,
			mode TEXT NOT NULL,
			preset TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL,
			actors INTEGER NOT NULL,
			grounded INTEGER NOT NULL,
			contacts INTEGER NOT NULL DEFAULT 0,
			fallbacks INTEGER NOT NULL DEFAULT 0,
			finished INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (scenario, level, mode, preset, seed, ticks, actors, grounded, contacts, fallbacks, finished)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Scenario, r.Level, r.Mode, r.Preset, r.Seed,
		r.Ticks, r.Actors, r.Grounded, r.Contacts, r.Fallbacks, r.Finished,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, scenario, level, mode, preset, seed, ticks, actors, grounded,
		        contacts, fallbacks, finished, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var createdAt any
	err := row.Scan(
		&r.ID, &r.Scenario, &r.Level, &r.Mode, &r.Preset, &r.Seed,
		&r.Ticks, &r.Actors, &r.Grounded, &r.Contacts, &r.Fallbacks, &r.Finished,
		&createdAt,
	)
	if err != nil {
		return r, err
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and the string form sqlite may return.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecentRuns retrieves the newest runs, optionally for one scenario only.
// An empty scenario matches all of them.
func (s *Store) RecentRuns(scenario string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR scenario = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		scenario, scenario, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// ClearRuns deletes the runs of one scenario, or all runs when scenario is empty.
func (s *Store) ClearRuns(scenario string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR scenario = ?", scenario, scenario)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// Stats retrieves statistics for every scenario that has been run.
func (s *Store) Stats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario, COUNT(*), SUM(finished), AVG(ticks), AVG(fallbacks), MAX(created_at)
		 FROM runs
		 GROUP BY scenario`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastRun any
		if err := rows.Scan(&st.Scenario, &st.Runs, &st.Finished, &st.AvgTicks, &st.AvgFallbacks, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Scenario] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
