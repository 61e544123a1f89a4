// Package store provides PostgreSQL persistence for conversion runs and
// their rendered artifacts.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-forge/internal/types"
)

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run represents one conversion run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	SourceFile  string     `json:"source_file"`
	Formats     []string   `json:"formats"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the run and artifact tables if they do not exist
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS conversion_runs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			source_file TEXT NOT NULL,
			formats TEXT[] NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS conversion_artifacts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			run_id UUID NOT NULL REFERENCES conversion_runs(id) ON DELETE CASCADE,
			kind TEXT NOT NULL,
			document JSONB,
			content BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (run_id, kind)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// CreateRun creates a new conversion run record and returns its ID
func (s *Store) CreateRun(ctx context.Context, sourceFile string, formats []string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.pool.QueryRow(ctx,
		`INSERT INTO conversion_runs (source_file, formats, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sourceFile, formats, StatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a conversion run as finished with the given status
func (s *Store) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE conversion_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SaveDocument stores the formatted resume document for a run
func (s *Store) SaveDocument(ctx context.Context, runID uuid.UUID, doc *types.ResumeData) error {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO conversion_artifacts (run_id, kind, document)
		 VALUES ($1, 'document', $2)
		 ON CONFLICT (run_id, kind) DO UPDATE SET document = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// SaveViolations stores the validation report for a run
func (s *Store) SaveViolations(ctx context.Context, runID uuid.UUID, violations *types.Violations) error {
	jsonBytes, err := json.Marshal(violations)
	if err != nil {
		return fmt.Errorf("failed to marshal violations: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO conversion_artifacts (run_id, kind, document)
		 VALUES ($1, 'violations', $2)
		 ON CONFLICT (run_id, kind) DO UPDATE SET document = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save violations: %w", err)
	}
	return nil
}

// SaveOutput stores a rendered output (html, pdf, or docx) for a run
func (s *Store) SaveOutput(ctx context.Context, runID uuid.UUID, format string, content []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO conversion_artifacts (run_id, kind, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, kind) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, format, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s output: %w", format, err)
	}
	return nil
}

// GetOutput retrieves a rendered output by run ID and format. Returns nil
// with no error when the artifact does not exist.
func (s *Store) GetOutput(ctx context.Context, runID uuid.UUID, format string) ([]byte, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM conversion_artifacts WHERE run_id = $1 AND kind = $2`,
		runID, format,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s output: %w", format, err)
	}
	return content, nil
}

// GetRun retrieves a conversion run by ID
func (s *Store) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := s.pool.QueryRow(ctx,
		`SELECT id, source_file, formats, status, created_at, completed_at
		 FROM conversion_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.SourceFile, &run.Formats, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent conversion runs
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, source_file, formats, status, created_at, completed_at
		 FROM conversion_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.SourceFile, &run.Formats, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
