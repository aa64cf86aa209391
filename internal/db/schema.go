package db

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS shopping_list (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	category   TEXT,
	amount     TEXT,
	checked    INTEGER NOT NULL DEFAULT 1,
	crossed    INTEGER NOT NULL DEFAULT 0,
	active     INTEGER NOT NULL DEFAULT 1,
	updated_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS recipes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	ingredients   TEXT,
	method        TEXT,
	image_url     TEXT,
	tags          TEXT,
	linked_recipe TEXT,
	notes         TEXT,
	created_at    DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME
);

CREATE TABLE IF NOT EXISTS planner_snapshots (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	data       TEXT NOT NULL
);
`

// EnsureSchema creates the planner tables when they are missing.
func EnsureSchema(database *sql.DB) error {
	if _, err := database.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
