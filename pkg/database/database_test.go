package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-events-api/pkg/config"
)

func newMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := NewSQLite(config.DatabaseConfig{Driver: config.DriverSQLite, Path: MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, CreateSchema(context.Background(), db))
	return db
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	db := newMemoryDB(t)
	require.NoError(t, CreateSchema(context.Background(), db))

	for _, table := range Tables {
		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM "+table))
		assert.Zero(t, count, table)
	}
}

func TestResetSchemaDropsRows(t *testing.T) {
	db := newMemoryDB(t)
	ctx := context.Background()
	_, err := db.ExecContext(ctx, "INSERT INTO colleges (name) VALUES (?)", "PES University")
	require.NoError(t, err)

	require.NoError(t, ResetSchema(ctx, db))

	var count int
	require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM colleges"))
	assert.Zero(t, count)
}

func TestUniqueViolationIsClassified(t *testing.T) {
	db := newMemoryDB(t)
	_, err := db.Exec("INSERT INTO colleges (name) VALUES (?)", "RV College")
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO colleges (name) VALUES (?)", "RV College")
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsIntegrityViolation(err))
	assert.False(t, IsForeignKeyViolation(err))
}

func TestForeignKeysAreEnforced(t *testing.T) {
	db := newMemoryDB(t)

	_, err := db.Exec("INSERT INTO students (name, email, college_id) VALUES (?, ?, ?)", "Alice", "alice@example.com", 99)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.True(t, IsIntegrityViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestNullCollegeIsAccepted(t *testing.T) {
	db := newMemoryDB(t)
	_, err := db.Exec("INSERT INTO students (name, email, college_id) VALUES (?, ?, ?)", "Alice", nil, nil)
	require.NoError(t, err)
}

func TestRatingCheckConstraint(t *testing.T) {
	db := newMemoryDB(t)
	mustExec(t, db, "INSERT INTO students (name) VALUES ('A')")
	mustExec(t, db, "INSERT INTO events (name) VALUES ('E')")
	mustExec(t, db, "INSERT INTO registrations (student_id, event_id) VALUES (1, 1)")

	_, err := db.Exec("INSERT INTO feedback (registration_id, rating) VALUES (1, 6)")
	require.Error(t, err)
	assert.True(t, IsIntegrityViolation(err))
}

func TestPostgresErrorClassification(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	fk := &pq.Error{Code: "23503"}
	notNull := &pq.Error{Code: "23502"}
	syntax := &pq.Error{Code: "42601"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsIntegrityViolation(notNull))
	assert.False(t, IsIntegrityViolation(syntax))
	assert.False(t, IsIntegrityViolation(errors.New("plain")))
}

func TestSchemaDialects(t *testing.T) {
	assert.Contains(t, Schema("sqlite"), "INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.Contains(t, Schema("postgres"), "BIGSERIAL PRIMARY KEY")
	assert.NotContains(t, Schema("postgres"), "{{pk}}")
}

func TestStoreExists(t *testing.T) {
	assert.True(t, StoreExists(config.DatabaseConfig{Driver: config.DriverPostgres}))
	assert.False(t, StoreExists(config.DatabaseConfig{Driver: config.DriverSQLite, Path: MemoryPath}))
	assert.False(t, StoreExists(config.DatabaseConfig{Driver: config.DriverSQLite, Path: t.TempDir() + "/missing.db"}))
}

func mustExec(t *testing.T, db *sqlx.DB, query string) {
	t.Helper()
	_, err := db.Exec(query)
	require.NoError(t, err)
}
