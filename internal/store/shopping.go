// Package store holds the SQL queries behind the planner API.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"salimas-planner/internal/model"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// ListActiveItems returns the active shopping-list items grouped by
// category and name.
func ListActiveItems(ctx context.Context, database *sql.DB) ([]model.Item, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, name, COALESCE(category, 'Other'), COALESCE(amount, ''), checked, crossed, active
		FROM shopping_list
		WHERE active = 1
		ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopping list: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateItem adds a name to the shopping list. An existing row with the
// same name (any casing, active or not) is revived instead: it comes back
// active and uncrossed, keeping its stored casing and category. A nil
// category on a fresh insert means Other.
func CreateItem(ctx context.Context, database *sql.DB, name string, category *string) (*model.Item, error) {
	var id int64
	err := database.QueryRowContext(ctx,
		`SELECT id FROM shopping_list WHERE name = ? COLLATE NOCASE`, name).Scan(&id)

	switch {
	case err == nil:
		_, err = database.ExecContext(ctx, `
			UPDATE shopping_list
			SET active = 1, crossed = 0, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?`, id)
		if err != nil {
			return nil, fmt.Errorf("failed to revive item %d: %w", id, err)
		}
	case errors.Is(err, sql.ErrNoRows):
		cat := "Other"
		if category != nil {
			cat = *category
		}
		result, err := database.ExecContext(ctx, `
			INSERT INTO shopping_list (name, category, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)`, name, cat)
		if err != nil {
			return nil, fmt.Errorf("failed to insert item %q: %w", name, err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read inserted id: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to look up item %q: %w", name, err)
	}

	return GetItem(ctx, database, id)
}

// GetItem fetches one item by id.
func GetItem(ctx context.Context, database *sql.DB, id int64) (*model.Item, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(category, 'Other'), COALESCE(amount, ''), checked, crossed, active
		FROM shopping_list
		WHERE id = ?`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemFields applies a partial update to an item.
func UpdateItemFields(ctx context.Context, database *sql.DB, id int64, patch model.ItemPatch) error {
	cols, vals := patch.Fields()
	if len(cols) == 0 {
		return fmt.Errorf("no fields to update")
	}

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = col + " = ?"
	}
	query := fmt.Sprintf(
		"UPDATE shopping_list SET %s, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		strings.Join(assignments, ", "))

	result, err := database.ExecContext(ctx, query, append(vals, id)...)
	if err != nil {
		return fmt.Errorf("failed to update item %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem removes an item for good.
func DeleteItem(ctx context.Context, database *sql.DB, id int64) error {
	result, err := database.ExecContext(ctx, `DELETE FROM shopping_list WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearItems soft-deletes the whole active list. Rows stay around so their
// names keep feeding suggestions and re-adds keep their category.
func ClearItems(ctx context.Context, database *sql.DB) error {
	_, err := database.ExecContext(ctx, `
		UPDATE shopping_list
		SET active = 0, updated_at = CURRENT_TIMESTAMP
		WHERE active = 1`)
	if err != nil {
		return fmt.Errorf("failed to clear shopping list: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	var checked, crossed, active int
	if err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Amount, &checked, &crossed, &active); err != nil {
		return model.Item{}, err
	}
	item.Checked = checked != 0
	item.Crossed = crossed != 0
	item.Active = active != 0
	return item, nil
}
