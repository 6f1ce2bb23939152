package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type SyncItem struct {
	ID           int64
	RunID        string
	ItemName     string
	Action       string
	Status       string
	ErrorMessage string
	CreatedAt    time.Time
}

type RunItemRepository struct {
	db *sql.DB
}

func NewRunItemRepository(db *sql.DB) *RunItemRepository {
	return &RunItemRepository{db: db}
}

func (r *RunItemRepository) Create(item *SyncItem) error {
	query := `
		INSERT INTO sync_items (run_id, item_name, action, status, error_message)
        VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		item.RunID,
		item.ItemName,
		item.Action,
		item.Status,
		item.ErrorMessage,
	)

	if err != nil {
		return fmt.Errorf("Error trying to record the item: %w", err)
	}

	return nil
}

func (r *RunItemRepository) GetItems(runId string) ([]SyncItem, error) {
	query := `
		SELECT id, run_id, item_name, action, status, error_message, created_at
		FROM sync_items WHERE run_id = ? ORDER BY id
	`

	rows, err := r.db.Query(query, runId)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get run items: %w", err)
	}
	defer rows.Close()

	var items []SyncItem

	for rows.Next() {
		var item SyncItem
		err := rows.Scan(
			&item.ID,
			&item.RunID,
			&item.ItemName,
			&item.Action,
			&item.Status,
			&item.ErrorMessage,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
