// Package store provides SQLite-backed logging of generation runs, so
// batch output and per-derivation failures can be inspected later.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/romiHill/reduplication-in-dm/derivation"
)

// Store handles SQLite database operations for run logging.
type Store struct {
	db *sql.DB
}

// Run is one recorded generation run.
type Run struct {
	ID        string
	Language  string
	StartedAt time.Time
	Words     int
	Failures  int
}

// Word is one generated (or failed) word within a run.
type Word struct {
	RunID        string
	Seq          int
	Word         string
	Reduplicated bool
	Variant      int
	Site         int
	Error        string
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		language TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		words INTEGER NOT NULL DEFAULT 0,
		failures INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS words (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		word TEXT NOT NULL,
		reduplicated INTEGER NOT NULL DEFAULT 0,
		variant INTEGER NOT NULL,
		site INTEGER NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, seq),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_words_run ON words(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LogRun records a batch of results as one run and returns its ID.
func (s *Store) LogRun(ctx context.Context, language string, results []derivation.Result) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	words := 0
	failures := 0
	for seq, r := range results {
		word := ""
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
			failures++
		} else {
			word = r.Derivation.Word
			words++
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO words (run_id, seq, word, reduplicated, variant, site, error) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, seq, word, r.Reduplicated, r.Variant, r.Site, errText); err != nil {
			return "", fmt.Errorf("insert word: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, language, started_at, words, failures) VALUES (?, ?, ?, ?, ?)`,
		id, language, time.Now().UTC(), words, failures); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Runs lists recorded runs, most recent first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, language, started_at, words, failures FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Language, &r.StartedAt, &r.Words, &r.Failures); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunWords returns the words of a run in sequence order.
func (s *Store) RunWords(ctx context.Context, runID string) ([]Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, seq, word, reduplicated, variant, site, error FROM words WHERE run_id = ? ORDER BY seq`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.RunID, &w.Seq, &w.Word, &w.Reduplicated, &w.Variant, &w.Site, &w.Error); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
