package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		title         TEXT NOT NULL,
		priority      TEXT NOT NULL DEFAULT 'medium',
		status        TEXT NOT NULL DEFAULT 'open'
		              CHECK(status IN ('open','done','skipped','archived')),
		estimated_min INTEGER,
		energy_req    INTEGER,
		tags          TEXT NOT NULL DEFAULT '',
		due_at        TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_status ON tasks(user_id, status)`,

	`CREATE TABLE IF NOT EXISTS checkins (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		energy_level  INTEGER NOT NULL,
		mood          TEXT NOT NULL DEFAULT '',
		available_min INTEGER NOT NULL DEFAULT 0,
		day           TEXT NOT NULL,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_checkins_user_day ON checkins(user_id, day)`,

	`CREATE TABLE IF NOT EXISTS active_dos (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		task_id      TEXT NOT NULL,
		reason_codes TEXT NOT NULL DEFAULT '',
		mode         TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_active_dos_user ON active_dos(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS action_logs (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		task_id    TEXT NOT NULL,
		action     TEXT NOT NULL CHECK(action IN ('done','skip','defer')),
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_action_logs_user ON action_logs(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS event_logs (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		kind       TEXT NOT NULL,
		payload    TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_event_logs_user ON event_logs(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS user_stats (
		user_id            TEXT PRIMARY KEY,
		streak_days        INTEGER NOT NULL DEFAULT 0,
		total_completed    INTEGER NOT NULL DEFAULT 0,
		total_skipped      INTEGER NOT NULL DEFAULT 0,
		last_completed_day TEXT NOT NULL DEFAULT '',
		updated_at         TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
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
