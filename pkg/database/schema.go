package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Tables lists the store tables in dependency order, parents first.
var Tables = []string{"colleges", "students", "events", "registrations", "attendance", "feedback"}

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS colleges (
    id {{pk}},
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS students (
    id {{pk}},
    name TEXT NOT NULL,
    email TEXT,
    college_id BIGINT REFERENCES colleges(id)
);

CREATE INDEX IF NOT EXISTS idx_students_college_id ON students(college_id);

CREATE TABLE IF NOT EXISTS events (
    id {{pk}},
    name TEXT NOT NULL,
    description TEXT,
    type TEXT,
    college_id BIGINT REFERENCES colleges(id),
    start_date TEXT,
    end_date TEXT
);

CREATE INDEX IF NOT EXISTS idx_events_college_id ON events(college_id);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(type);

CREATE TABLE IF NOT EXISTS registrations (
    id {{pk}},
    student_id BIGINT NOT NULL REFERENCES students(id),
    event_id BIGINT NOT NULL REFERENCES events(id),
    UNIQUE (student_id, event_id)
);

CREATE INDEX IF NOT EXISTS idx_registrations_event_id ON registrations(event_id);

CREATE TABLE IF NOT EXISTS attendance (
    id {{pk}},
    registration_id BIGINT NOT NULL UNIQUE REFERENCES registrations(id),
    status TEXT NOT NULL DEFAULT 'present',
    marked_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS feedback (
    id {{pk}},
    registration_id BIGINT NOT NULL UNIQUE REFERENCES registrations(id),
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    comment TEXT NOT NULL DEFAULT '',
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Schema renders the DDL for the given sqlx driver name.
func Schema(driverName string) string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if isPostgres(driverName) {
		pk = "BIGSERIAL PRIMARY KEY"
	}
	return strings.ReplaceAll(schemaTemplate, "{{pk}}", pk)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range splitStatements(Schema(db.DriverName())) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes every table, children first.
func DropSchema(ctx context.Context, db *sqlx.DB) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+Tables[i]); err != nil {
			return fmt.Errorf("drop table %s: %w", Tables[i], err)
		}
	}
	return nil
}

// ResetSchema destroys all stored rows by recreating the tables.
func ResetSchema(ctx context.Context, db *sqlx.DB) error {
	if err := DropSchema(ctx, db); err != nil {
		return err
	}
	return CreateSchema(ctx, db)
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			stmts = append(stmts, trimmed)
		}
	}
	return stmts
}

func isPostgres(driverName string) bool {
	switch driverName {
	case "postgres", "pgx", "pq":
		return true
	}
	return false
}
