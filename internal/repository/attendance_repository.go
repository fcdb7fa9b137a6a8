package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-events-api/internal/models"
)

const (
	insertAttendanceQuery = `INSERT INTO attendance (registration_id, status) VALUES (?, ?)
ON CONFLICT (registration_id) DO NOTHING RETURNING id`
	updateAttendanceQuery = `UPDATE attendance SET status = ?, marked_at = CURRENT_TIMESTAMP
WHERE registration_id = ? RETURNING id`
)

// AttendanceRepository persists attendance marks.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert records the status for a registration, overwriting any earlier mark.
func (r *AttendanceRepository) Upsert(ctx context.Context, registrationID int64, status string) (*models.UpsertResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin attendance tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	result := &models.UpsertResult{Created: true}
	err = tx.QueryRowxContext(ctx, tx.Rebind(insertAttendanceQuery), registrationID, status).Scan(&result.ID)
	if errors.Is(err, sql.ErrNoRows) {
		result.Created = false
		err = tx.QueryRowxContext(ctx, tx.Rebind(updateAttendanceQuery), status, registrationID).Scan(&result.ID)
		if err != nil {
			return nil, fmt.Errorf("update attendance: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("insert attendance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit attendance: %w", err)
	}
	return result, nil
}

// FindByRegistration returns the attendance row for a registration.
func (r *AttendanceRepository) FindByRegistration(ctx context.Context, registrationID int64) (*models.Attendance, error) {
	query := r.db.Rebind(`SELECT id, registration_id, status, marked_at FROM attendance WHERE registration_id = ?`)
	var attendance models.Attendance
	if err := r.db.GetContext(ctx, &attendance, query, registrationID); err != nil {
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &attendance, nil
}
