package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/garyjia/fapiao-helper/internal/models"
	"github.com/garyjia/fapiao-helper/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// RunRepository handles processing run database operations
type RunRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *database.DB, logger *zap.Logger) *RunRepository {
	return &RunRepository{
		db:     db,
		logger: logger,
	}
}

// Save stores a run and its file outcomes in one transaction, assigning an ID when empty
func (r *RunRepository) Save(ctx context.Context, run *models.ProcessingRun) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	runQuery := `
		INSERT INTO processing_runs (
			id, dir, scanned, renamed, failed, report_count,
			total, report_path, started_at, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	fileQuery := `
		INSERT INTO run_files (run_id, name, new_name, status, amount, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	err := r.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, runQuery,
			run.ID,
			run.Dir,
			run.Scanned,
			run.Renamed,
			run.Failed,
			run.ReportCount,
			run.Total.String(),
			run.ReportPath,
			run.StartedAt.UTC(),
			run.Duration.Milliseconds(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, f := range run.Files {
			if _, err := tx.ExecContext(ctx, fileQuery,
				run.ID, f.Name, f.NewName, f.Status, f.Amount, f.Error); err != nil {
				return fmt.Errorf("failed to insert run file %s: %w", f.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save run", zap.String("run_id", run.ID), zap.Error(err))
		return err
	}

	r.logger.Debug("Run saved",
		zap.String("run_id", run.ID),
		zap.Int("files", len(run.Files)))
	return nil
}

// ListRecent returns the latest runs, newest first, without their file outcomes
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]*models.ProcessingRun, error) {
	query := `
		SELECT id, dir, scanned, renamed, failed, report_count,
			total, report_path, started_at, duration_ms, created_at
		FROM processing_runs
		ORDER BY started_at DESC, created_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		r.logger.Error("Failed to list runs", zap.Error(err))
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ProcessingRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// GetByID retrieves a run with its file outcomes
func (r *RunRepository) GetByID(ctx context.Context, id string) (*models.ProcessingRun, error) {
	query := `
		SELECT id, dir, scanned, renamed, failed, report_count,
			total, report_path, started_at, duration_ms, created_at
		FROM processing_runs
		WHERE id = ?
	`

	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, new_name, status, amount, error
		FROM run_files
		WHERE run_id = ?
		ORDER BY id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var f models.RunFile
		if err := rows.Scan(&f.Name, &f.NewName, &f.Status, &f.Amount, &f.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run file: %w", err)
		}
		run.Files = append(run.Files, f)
	}

	return run, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (*models.ProcessingRun, error) {
	var (
		run        models.ProcessingRun
		total      string
		durationMs int64
	)
	err := row.Scan(
		&run.ID,
		&run.Dir,
		&run.Scanned,
		&run.Renamed,
		&run.Failed,
		&run.ReportCount,
		&total,
		&run.ReportPath,
		&run.StartedAt,
		&durationMs,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	run.Total, err = decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("invalid stored total %q: %w", total, err)
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	return &run, nil
}
