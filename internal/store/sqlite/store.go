// Package sqlite persists reflow run history for the CLI driver's
// `history` command. The core reflow engine never imports this package;
// persistence is an external collaborator, not part of the scheduling
// core.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shopfloor/reflow/internal/domain"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store wraps a SQLite-backed run-history table.
type Store struct {
	db *sql.DB
}

// Open creates (or reuses) the SQLite database at path and applies the
// run-history schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	connStr := path +
		"?_foreign_keys=on" +
		"&_journal_mode=WAL" +
		"&_synchronous=NORMAL" +
		"&_timeout=5000"

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning schema transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(schemaSQL)); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return tx.Commit()
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RunSummary is a single row of history listing.
type RunSummary struct {
	ID                string
	CreatedAt         time.Time
	InputDigest       string
	WorkOrderCount    int
	MovedCount        int
	TotalDeltaMinutes int
}

// RunDetail adds the full change list to a RunSummary.
type RunDetail struct {
	RunSummary
	Changes []domain.ChangeRecord
}

// RecordRun stores one reflow invocation's outcome and returns the
// generated run id.
func (s *Store) RecordRun(ctx context.Context, inputDigest string, workOrderCount int, result *domain.ReflowResult) (string, error) {
	changesJSON, err := json.Marshal(result.Changes)
	if err != nil {
		return "", fmt.Errorf("serializing changes: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reflow_runs (
			id, created_at, input_digest, work_order_count,
			moved_count, total_delta_minutes, changes_json
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), inputDigest, workOrderCount,
		result.Metrics.MovedCount, result.Metrics.TotalDelayMinutes, string(changesJSON),
	)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return id, nil
}

// ListRuns returns run summaries, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, input_digest, work_order_count, moved_count, total_delta_minutes
		FROM reflow_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.InputDigest, &r.WorkOrderCount, &r.MovedCount, &r.TotalDeltaMinutes); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		summaries = append(summaries, r)
	}
	return summaries, rows.Err()
}

// GetRun fetches a single run's full detail, including its change list.
func (s *Store) GetRun(ctx context.Context, id string) (*RunDetail, error) {
	var d RunDetail
	var changesJSON string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, input_digest, work_order_count, moved_count, total_delta_minutes, changes_json
		FROM reflow_runs
		WHERE id = ?`, id).Scan(
		&d.ID, &d.CreatedAt, &d.InputDigest, &d.WorkOrderCount, &d.MovedCount, &d.TotalDeltaMinutes, &changesJSON,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", id, err)
	}

	if err := json.Unmarshal([]byte(changesJSON), &d.Changes); err != nil {
		return nil, fmt.Errorf("decoding changes for run %s: %w", id, err)
	}
	return &d, nil
}
