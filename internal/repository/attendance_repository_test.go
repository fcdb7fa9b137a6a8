package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepositoryUpsertInserts(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO attendance \(registration_id, status\) VALUES \(\?, \?\)\s+ON CONFLICT \(registration_id\) DO NOTHING RETURNING id`).
		WithArgs(int64(5), "present").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	result, err := repo.Upsert(context.Background(), 5, "present")
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, int64(1), result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryUpsertUpdatesExisting(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO attendance").
		WithArgs(int64(5), "absent").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`UPDATE attendance SET status = \?, marked_at = CURRENT_TIMESTAMP\s+WHERE registration_id = \? RETURNING id`).
		WithArgs("absent", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	result, err := repo.Upsert(context.Background(), 5, "absent")
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, int64(1), result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryUpsertRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	boom := errors.New("FOREIGN KEY constraint failed")
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO attendance").WillReturnError(boom)
	mock.ExpectRollback()

	_, err := repo.Upsert(context.Background(), 99, "present")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryFindByRegistration(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, registration_id, status, marked_at FROM attendance WHERE registration_id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "registration_id", "status", "marked_at"}).AddRow(1, 5, "absent", now))

	attendance, err := repo.FindByRegistration(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "absent", attendance.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
