package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so it is
// safe to call on an already migrated catalog.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id                 TEXT PRIMARY KEY,
		title              TEXT NOT NULL,
		topic              TEXT NOT NULL DEFAULT '',
		type               TEXT NOT NULL
		                   CHECK(type IN ('multiple-choice','short-answer','essay')),
		difficulty         TEXT NOT NULL
		                   CHECK(difficulty IN ('beginner','intermediate','advanced')),
		item_count         INTEGER NOT NULL CHECK(item_count > 0),
		estimated_minutes  INTEGER NOT NULL DEFAULT 0,
		score              INTEGER CHECK(score IS NULL OR (score BETWEEN 0 AND 100)),
		completed          INTEGER NOT NULL DEFAULT 0,
		order_index        INTEGER NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL,
		CHECK(score IS NULL OR completed = 1)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_order ON assessments(order_index)`,

	`CREATE TABLE IF NOT EXISTS study_stats (
		id                     INTEGER PRIMARY KEY CHECK(id = 1),
		total_study_minutes    INTEGER NOT NULL,
		documents_processed    INTEGER NOT NULL,
		assessments_completed  INTEGER NOT NULL,
		average_score          INTEGER NOT NULL,
		current_streak_days    INTEGER NOT NULL,
		weekly_goal_pct        INTEGER NOT NULL CHECK(weekly_goal_pct BETWEEN 0 AND 100),
		weekly_target_minutes  INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS subject_progress (
		subject       TEXT PRIMARY KEY,
		progress_pct  INTEGER NOT NULL CHECK(progress_pct BETWEEN 0 AND 100),
		order_index   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id            TEXT PRIMARY KEY,
		kind          TEXT NOT NULL CHECK(kind IN ('assessment','document')),
		title         TEXT NOT NULL,
		subject       TEXT NOT NULL DEFAULT '',
		score         INTEGER,
		progress_pct  INTEGER,
		occurred_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_occurred ON activities(occurred_at)`,

	`CREATE TABLE IF NOT EXISTS recommendations (
		id              TEXT PRIMARY KEY,
		kind            TEXT NOT NULL
		                CHECK(kind IN ('focus-area','practice','revision')),
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		priority        TEXT NOT NULL CHECK(priority IN ('high','medium','low')),
		estimated_time  TEXT NOT NULL DEFAULT '',
		confidence_pct  INTEGER NOT NULL CHECK(confidence_pct BETWEEN 0 AND 100),
		action          TEXT NOT NULL DEFAULT '',
		order_index     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS recommendation_tags (
		recommendation_id  TEXT NOT NULL REFERENCES recommendations(id) ON DELETE CASCADE,
		tag                TEXT NOT NULL,
		order_index        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (recommendation_id, tag)
	)`,

	`CREATE TABLE IF NOT EXISTS study_plan (
		id                INTEGER PRIMARY KEY CHECK(id = 1),
		next_session      TEXT NOT NULL,
		duration_minutes  INTEGER NOT NULL,
		topic             TEXT NOT NULL,
		kind              TEXT NOT NULL,
		insight           TEXT NOT NULL DEFAULT ''
	)`,
}
