package corpus

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/sso/internal/diffcheck"
	coreerror "github.com/msto63/sso/pkg/core/error"
)

// Run is a stored check run
type Run struct {
	ID         string
	StartedAt  time.Time
	Seed       uint64
	Iterations int
	MaxLength  int
	Passed     int
	Failed     int
	Duration   time.Duration
}

// Store keeps check runs and their failing cases in SQLite so failures can
// be replayed later
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens or creates the corpus database at path
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, storageError(err, "failed to create directory", "corpus.Open")
		}
	}

	// WAL mode so a running check does not block readers
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on")
	if err != nil {
		return nil, storageError(err, "failed to open database", "corpus.Open")
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize schema", "corpus.Open")
	}
	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		seed INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		max_length INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS failures (
		run_id TEXT NOT NULL,
		property TEXT NOT NULL,
		case_seed INTEGER NOT NULL,
		message TEXT NOT NULL,
		PRIMARY KEY (run_id, property),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_failures_property ON failures(property);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveReport stores a run and its failures in one transaction
func (s *Store) SaveReport(ctx context.Context, report *diffcheck.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError(err, "failed to begin transaction", "corpus.SaveReport")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, seed, iterations, max_length, passed, failed, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, report.RunID, report.Started.UnixNano(), int64(report.Seed), report.Iterations,
		report.MaxLength, report.Passed(), report.Failed(), report.Duration.Milliseconds())
	if err != nil {
		return storageError(err, "failed to insert run", "corpus.SaveReport").
			WithDetail("run_id", report.RunID)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO failures (run_id, property, case_seed, message)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return storageError(err, "failed to prepare failure statement", "corpus.SaveReport")
	}
	defer stmt.Close()

	for _, f := range report.Failures() {
		// uint64 seeds are stored bit for bit in a signed column
		if _, err := stmt.ExecContext(ctx, report.RunID, f.Property, int64(f.CaseSeed), f.Message); err != nil {
			return storageError(err, "failed to insert failure", "corpus.SaveReport").
				WithDetail("property", f.Property)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError(err, "failed to commit", "corpus.SaveReport")
	}
	return nil
}

// Runs returns the most recent runs, newest first. A limit <= 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, started_at, seed, iterations, max_length, passed, failed, duration_ms
		FROM runs ORDER BY started_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to query runs", "corpus.Runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan run", "corpus.Runs")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read runs", "corpus.Runs")
	}
	return runs, nil
}

// Run returns a single run by ID
func (s *Store) Run(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, seed, iterations, max_length, passed, failed, duration_ms
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, coreerror.Newf("run not found: %s", id).
			WithCode(coreerror.CodeNotFound).
			WithOperation("corpus.Run").
			WithDetail("run_id", id)
	}
	if err != nil {
		return nil, storageError(err, "failed to query run", "corpus.Run")
	}
	return &run, nil
}

// Failures returns the failing cases of a run in property order
func (s *Store) Failures(ctx context.Context, runID string) ([]diffcheck.Failure, error) {
	if _, err := s.Run(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT property, case_seed, message FROM failures
		WHERE run_id = ? ORDER BY property
	`, runID)
	if err != nil {
		return nil, storageError(err, "failed to query failures", "corpus.Failures")
	}
	defer rows.Close()

	var failures []diffcheck.Failure
	for rows.Next() {
		var f diffcheck.Failure
		var seed int64
		if err := rows.Scan(&f.Property, &seed, &f.Message); err != nil {
			return nil, storageError(err, "failed to scan failure", "corpus.Failures")
		}
		f.CaseSeed = uint64(seed)
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to read failures", "corpus.Failures")
	}
	return failures, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var started, seed, durationMs int64
	err := row.Scan(&run.ID, &started, &seed, &run.Iterations, &run.MaxLength,
		&run.Passed, &run.Failed, &durationMs)
	if err != nil {
		return Run{}, err
	}
	run.StartedAt = time.Unix(0, started)
	run.Seed = uint64(seed)
	run.Duration = time.Duration(durationMs) * time.Millisecond
	return run, nil
}

func storageError(err error, message, operation string) *coreerror.Error {
	return coreerror.Wrap(err, message).
		WithCode(coreerror.CodeStorageError).
		WithOperation(operation)
}
