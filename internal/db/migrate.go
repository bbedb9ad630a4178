package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; re-running
// the full set against an existing database is safe.
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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		credits         INTEGER NOT NULL CHECK(credits > 0),
		offered_seasons TEXT NOT NULL,
		prerequisites   TEXT,
		corequisites    TEXT,
		minimum_grade   TEXT NOT NULL DEFAULT '',
		difficulty      INTEGER NOT NULL DEFAULT 5,
		success_rate    REAL
	)`,

	`CREATE TABLE IF NOT EXISTS course_aliases (
		raw       TEXT PRIMARY KEY,
		canonical TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS programs (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL,
		total_credits         INTEGER NOT NULL CHECK(total_credits > 0),
		allow_double_counting INTEGER NOT NULL DEFAULT 1,
		exclusive_pairs       TEXT,
		requirement_groups    TEXT NOT NULL,
		tracks                TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id             TEXT PRIMARY KEY,
		program        TEXT NOT NULL,
		track          TEXT NOT NULL DEFAULT '',
		completed      TEXT,
		in_progress    TEXT,
		cumulative_gpa REAL NOT NULL DEFAULT 0,
		major_gpa      REAL NOT NULL DEFAULT 0,
		constraints    TEXT,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id           TEXT PRIMARY KEY,
		student_id   TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		generated_at TEXT NOT NULL,
		payload      TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_students_program ON students(program)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_student ON plans(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_aliases_canonical ON course_aliases(canonical)`,
}
