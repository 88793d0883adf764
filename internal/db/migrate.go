package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list is replayed on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Session slot: at most one row, removed on logout.
	`CREATE TABLE IF NOT EXISTS session_user (
		slot      INTEGER PRIMARY KEY CHECK(slot = 1),
		id        TEXT NOT NULL,
		name      TEXT NOT NULL,
		bio       TEXT NOT NULL DEFAULT '',
		avatar    TEXT NOT NULL DEFAULT '',
		joined_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id                    TEXT PRIMARY KEY,
		position              INTEGER NOT NULL,
		user_id               TEXT NOT NULL DEFAULT '',
		title                 TEXT NOT NULL,
		description           TEXT NOT NULL DEFAULT '',
		deadline              TEXT,
		created_at            TEXT NOT NULL,
		estimated_hours       REAL NOT NULL DEFAULT 0 CHECK(estimated_hours >= 0),
		actual_hours          REAL NOT NULL DEFAULT 0 CHECK(actual_hours >= 0),
		status                TEXT NOT NULL DEFAULT 'active'
		                      CHECK(status IN ('active','completed','failed')),
		reflection_worked     TEXT,
		reflection_didnt_work TEXT,
		reflection_different  TEXT,
		completed_at          TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_position ON goals(position)`,

	`CREATE TABLE IF NOT EXISTS milestones (
		id            TEXT PRIMARY KEY,
		goal_id       TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		external_link TEXT NOT NULL DEFAULT '',
		is_completed  INTEGER NOT NULL DEFAULT 0,
		completed_at  TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_milestones_goal ON milestones(goal_id, position)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		goal_id    TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		content    TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT 'Reflection'
		           CHECK(type IN ('Reflection','Idea','Problem','Lesson Learned')),
		impact     TEXT NOT NULL DEFAULT 'Neutral'
		           CHECK(impact IN ('Positive','Neutral','Negative')),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_goal ON notes(goal_id, position)`,

	// Attachment rows are metadata; payloads live in the blob store.
	`CREATE TABLE IF NOT EXISTS note_attachments (
		note_id      TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		id           TEXT NOT NULL,
		name         TEXT NOT NULL,
		mime_type    TEXT NOT NULL,
		size_display TEXT NOT NULL,
		created_at   TEXT NOT NULL,
		PRIMARY KEY (note_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS goal_logs (
		id         TEXT PRIMARY KEY,
		goal_id    TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		type       TEXT NOT NULL CHECK(type IN ('failure','success','info')),
		reason     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goal_logs_goal ON goal_logs(goal_id, position)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id         TEXT PRIMARY KEY,
		goal_id    TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		user_name  TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_comments_goal ON comments(goal_id, position)`,

	`CREATE TABLE IF NOT EXISTS goal_tags (
		goal_id TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
		tag     TEXT NOT NULL,
		PRIMARY KEY (goal_id, tag)
	)`,
}
