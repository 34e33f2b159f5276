// Package history persists parsed benchmark runs so later reports can be
// diffed against a stored baseline.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"jmhdiff/internal/jmh"
)

// ErrNoRuns is returned when the store holds no run matching the request.
var ErrNoRuns = errors.New("history: no saved runs")

// Run is one stored report.
type Run struct {
	ID      string
	Label   string
	SavedAt time.Time
	Records []jmh.Record
}

// Store defines the methods for run persistence.
type Store interface {
	Save(label string, records []jmh.Record) (string, error)
	LoadLatest() (*Run, error)
	LoadByLabel(label string) (*Run, error)
	List(limit int) ([]Run, error)
	Count(runID string) (int, error)
	Close() error
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and applies
// migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		id       TEXT PRIMARY KEY,
		label    TEXT NOT NULL DEFAULT '',
		saved_at DATETIME NOT NULL
	);
	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		name   TEXT NOT NULL,
		mode   TEXT NOT NULL,
		count  INTEGER NOT NULL,
		score  REAL NOT NULL,
		error  REAL NOT NULL,
		units  TEXT NOT NULL
	);
	`)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores a run and returns its generated ID.
func (s *SQLiteStore) Save(label string, records []jmh.Record) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.Exec(
		`INSERT INTO runs (id, label, saved_at) VALUES (?, ?, ?)`,
		id, label, time.Now().UTC(),
	); err != nil {
		return "", fmt.Errorf("saving run: %w", err)
	}

	for _, r := range records {
		if _, err := tx.Exec(
			`INSERT INTO results (run_id, name, mode, count, score, error, units)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, r.Name, r.Mode.String(), r.Count, r.Score, r.Error, r.Units,
		); err != nil {
			return "", fmt.Errorf("saving result %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadLatest returns the most recently saved run, ErrNoRuns when empty.
func (s *SQLiteStore) LoadLatest() (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, label, saved_at FROM runs ORDER BY saved_at DESC, rowid DESC LIMIT 1`)
	return s.scanRun(row)
}

// LoadByLabel returns the most recent run saved under label.
func (s *SQLiteStore) LoadByLabel(label string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, label, saved_at FROM runs WHERE label = ? ORDER BY saved_at DESC, rowid DESC LIMIT 1`,
		label)
	return s.scanRun(row)
}

func (s *SQLiteStore) scanRun(row *sql.Row) (*Run, error) {
	var run Run
	if err := row.Scan(&run.ID, &run.Label, &run.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRuns
		}
		return nil, err
	}

	records, err := s.loadRecords(run.ID)
	if err != nil {
		return nil, err
	}
	run.Records = records
	return &run, nil
}

func (s *SQLiteStore) loadRecords(runID string) ([]jmh.Record, error) {
	// rowid order preserves the report's row order.
	rows, err := s.db.Query(
		`SELECT name, mode, count, score, error, units FROM results WHERE run_id = ? ORDER BY rowid`,
		runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []jmh.Record
	for rows.Next() {
		var rec jmh.Record
		var mode string
		if err := rows.Scan(&rec.Name, &mode, &rec.Count, &rec.Score, &rec.Error, &rec.Units); err != nil {
			return nil, err
		}
		m, err := jmh.ParseMode(mode)
		if err != nil {
			return nil, fmt.Errorf("run %s holds corrupt mode %q: %w", runID, mode, err)
		}
		rec.Mode = m
		records = append(records, rec)
	}
	return records, rows.Err()
}

// List returns the newest runs first, at most limit of them, without their
// records loaded.
func (s *SQLiteStore) List(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, label, saved_at FROM runs ORDER BY saved_at DESC, rowid DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Label, &run.SavedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Count returns the number of results stored for a run.
func (s *SQLiteStore) Count(runID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM results WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}
