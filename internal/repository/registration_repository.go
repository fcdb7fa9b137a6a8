package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-events-api/internal/models"
)

// RegistrationRepository persists student registrations for events.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository constructs the repository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create registers the pair once. Created is false when the pair already existed.
func (r *RegistrationRepository) Create(ctx context.Context, studentID, eventID int64) (*models.UpsertResult, error) {
	query := r.db.Rebind(`INSERT INTO registrations (student_id, event_id) VALUES (?, ?)
ON CONFLICT (student_id, event_id) DO NOTHING RETURNING id`)
	var id int64
	err := r.db.QueryRowxContext(ctx, query, studentID, eventID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.UpsertResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return &models.UpsertResult{ID: id, Created: true}, nil
}

// FindID resolves the registration id for a student and event.
func (r *RegistrationRepository) FindID(ctx context.Context, studentID, eventID int64) (int64, error) {
	query := r.db.Rebind(`SELECT id FROM registrations WHERE student_id = ? AND event_id = ?`)
	var id int64
	if err := r.db.GetContext(ctx, &id, query, studentID, eventID); err != nil {
		return 0, fmt.Errorf("find registration: %w", err)
	}
	return id, nil
}
