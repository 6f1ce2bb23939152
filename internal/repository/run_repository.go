package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type SyncRun struct {
	Id          string
	Operation   string
	SourceFile  string
	Status      string
	TotalItems  int
	Succeeded   int
	Failed      int
	Skipped     int
	StartedAt   time.Time
	CompletedAt *time.Time
}

type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(run *SyncRun) (string, error) {
	if run.Id == "" {
		run.Id = uuid.New().String()
	}

	query := `
	INSERT INTO sync_runs (id, operation, source_file, status, total_items)
        VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		run.Id,
		run.Operation,
		run.SourceFile,
		run.Status,
		run.TotalItems,
	)

	if err != nil {
		return "", fmt.Errorf("Error trying to create the run: %w", err)
	}

	return run.Id, nil
}

func (r *RunRepository) UpdateProgress(id string, succeeded, failed, skipped int) error {
	query := `UPDATE sync_runs SET succeeded_items = ?, failed_items = ?, skipped_items = ? WHERE id = ?`
	_, err := r.db.Exec(query, succeeded, failed, skipped, id)
	return err
}

func (r *RunRepository) UpdateTotalItems(id string, totalItems int) error {
	query := `UPDATE sync_runs SET total_items = ? WHERE id = ?`
	_, err := r.db.Exec(query, totalItems, id)
	return err
}

func (r *RunRepository) Complete(id string, status string) error {
	query := `UPDATE sync_runs SET status = ?, completed_at = CURRENT_TIMESTAMP WHERE id = ?`
	_, err := r.db.Exec(query, status, id)
	return err
}

func (r *RunRepository) GetRuns() ([]SyncRun, error) {
	// started_at has second resolution; rowid breaks ties so runs started
	// within the same second still list newest first.
	query := `
	SELECT * FROM sync_runs ORDER BY started_at DESC, rowid DESC
	`
	rows, err := r.db.Query(query)

	if err != nil {
		return nil, fmt.Errorf("Error trying to get runs: %w", err)
	}
	defer rows.Close()

	var runs []SyncRun

	for rows.Next() {
		var run SyncRun
		err := rows.Scan(
			&run.Id,
			&run.Operation,
			&run.SourceFile,
			&run.Status,
			&run.TotalItems,
			&run.Succeeded,
			&run.Failed,
			&run.Skipped,
			&run.StartedAt,
			&run.CompletedAt,
		)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (r *RunRepository) GetRun(id string) (SyncRun, error) {
	query := `
		SELECT * FROM sync_runs where id = ?
	`

	var run SyncRun
	err := r.db.QueryRow(query, id).Scan(
		&run.Id,
		&run.Operation,
		&run.SourceFile,
		&run.Status,
		&run.TotalItems,
		&run.Succeeded,
		&run.Failed,
		&run.Skipped,
		&run.StartedAt,
		&run.CompletedAt,
	)
	if err != nil {
		return SyncRun{}, fmt.Errorf("Error trying to get run: %w", err)
	}

	return run, nil
}
