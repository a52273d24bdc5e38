package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/EhtshamAshraf0/NYC-Taxi-Driver-Efficiency-Analysis/internal/models"
)

// RunRepository tracks pipeline runs and their diagnostics
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create inserts a new running pipeline run and returns its id
func (r *RunRepository) Create() (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO pipeline_runs (status, started_at) VALUES (?, ?)",
		models.RunStatusRunning, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create pipeline run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}
	return id, nil
}

// MarkCompleted records a successful run with its diagnostics and
// stage row counts
func (r *RunRepository) MarkCompleted(id int64, run models.PipelineRun) error {
	_, err := r.db.Exec(`UPDATE pipeline_runs SET
		status = ?,
		raw_rows = ?, duplicates_removed = ?, invalid_timestamp = ?,
		invalid_fare = ?, invalid_distance = ?, zone_mismatch = ?, clean_rows = ?,
		enriched_rows = ?, bucket_rows = ?, dashboard_rows = ?,
		completed_at = ?
		WHERE id = ?`,
		models.RunStatusCompleted,
		run.RawRows, run.DuplicatesRemoved, run.InvalidTimestamp,
		run.InvalidFare, run.InvalidDistance, run.ZoneMismatch, run.CleanRows,
		run.EnrichedRows, run.BucketRows, run.DashboardRows,
		time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark run %d completed: %w", id, err)
	}
	return nil
}

// MarkFailed records a failed run with its error message
func (r *RunRepository) MarkFailed(id int64, errorMsg string) error {
	_, err := r.db.Exec(`UPDATE pipeline_runs SET
		status = ?, error_message = ?, completed_at = ?
		WHERE id = ?`,
		models.RunStatusFailed, errorMsg, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark run %d failed: %w", id, err)
	}
	return nil
}

// GetLatest returns the most recent run, or nil when none exists
func (r *RunRepository) GetLatest() (*models.PipelineRun, error) {
	runs, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// List returns the most recent runs, newest first
func (r *RunRepository) List(limit int) ([]models.PipelineRun, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := r.db.Query(`SELECT
		id, status,
		raw_rows, duplicates_removed, invalid_timestamp,
		invalid_fare, invalid_distance, zone_mismatch, clean_rows,
		enriched_rows, bucket_rows, dashboard_rows,
		COALESCE(error_message, ''), started_at, completed_at
		FROM pipeline_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pipeline runs: %w", err)
	}
	defer rows.Close()

	var runs []models.PipelineRun
	for rows.Next() {
		var run models.PipelineRun
		var completedAt sql.NullTime

		err := rows.Scan(
			&run.ID, &run.Status,
			&run.RawRows, &run.DuplicatesRemoved, &run.InvalidTimestamp,
			&run.InvalidFare, &run.InvalidDistance, &run.ZoneMismatch, &run.CleanRows,
			&run.EnrichedRows, &run.BucketRows, &run.DashboardRows,
			&run.ErrorMessage, &run.StartedAt, &completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pipeline run: %w", err)
		}

		if completedAt.Valid {
			run.CompletedAt = &completedAt.Time
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
