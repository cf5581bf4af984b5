package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run on
// every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Money and percentages are stored as TEXT so decimal values round-trip
// exactly.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		short_id    TEXT NOT NULL,
		name        TEXT NOT NULL,
		active      INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_short_id ON projects(short_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_active ON projects(active)`,

	`CREATE TABLE IF NOT EXISTS staff (
		id           TEXT PRIMARY KEY,
		project_id   TEXT NOT NULL REFERENCES projects(id),
		code         TEXT NOT NULL,
		name         TEXT NOT NULL,
		wage_per_day TEXT NOT NULL,
		active       INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL,
		UNIQUE (project_id, code)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_staff_project ON staff(project_id)`,

	`CREATE TABLE IF NOT EXISTS shift_types (
		code          TEXT PRIMARY KEY,
		name          TEXT NOT NULL DEFAULT '',
		color         TEXT NOT NULL DEFAULT '',
		is_work_shift INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS rosters (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id),
		year        INTEGER NOT NULL,
		month       INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL,
		UNIQUE (project_id, year, month)
	)`,

	`CREATE TABLE IF NOT EXISTS roster_entries (
		roster_id  TEXT NOT NULL REFERENCES rosters(id) ON DELETE CASCADE,
		staff_id   TEXT NOT NULL REFERENCES staff(id),
		day        INTEGER NOT NULL CHECK(day BETWEEN 1 AND 31),
		shift_code TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (roster_id, staff_id, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_roster_entries_staff ON roster_entries(staff_id)`,

	`CREATE TABLE IF NOT EXISTS cost_sharings (
		id                     TEXT PRIMARY KEY,
		source_project_id      TEXT NOT NULL REFERENCES projects(id),
		destination_project_id TEXT NOT NULL REFERENCES projects(id),
		percentage             TEXT NOT NULL,
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL,
		UNIQUE (source_project_id, destination_project_id),
		CHECK (source_project_id != destination_project_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cost_sharings_destination ON cost_sharings(destination_project_id)`,
}
