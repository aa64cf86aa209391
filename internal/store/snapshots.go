package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"salimas-planner/internal/model"
)

// InsertSnapshot stores a named snapshot blob and returns its id.
func InsertSnapshot(ctx context.Context, database *sql.DB, name string, data []byte) (int64, error) {
	result, err := database.ExecContext(ctx, `
		INSERT INTO planner_snapshots (name, data) VALUES (?, ?)`, name, string(data))
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot %q: %w", name, err)
	}
	return result.LastInsertId()
}

// ListSnapshots returns snapshot summaries, newest first.
func ListSnapshots(ctx context.Context, database *sql.DB) ([]model.SnapshotSummary, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, name, created_at FROM planner_snapshots
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var summaries []model.SnapshotSummary
	for rows.Next() {
		var s model.SnapshotSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Created); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetSnapshot returns the stored snapshot blob by id.
func GetSnapshot(ctx context.Context, database *sql.DB, id int64) ([]byte, error) {
	var data string
	err := database.QueryRowContext(ctx, `
		SELECT data FROM planner_snapshots WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %d: %w", id, err)
	}
	return []byte(data), nil
}
