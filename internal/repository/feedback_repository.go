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
	insertFeedbackQuery = `INSERT INTO feedback (registration_id, rating, comment) VALUES (?, ?, ?)
ON CONFLICT (registration_id) DO NOTHING RETURNING id`
	updateFeedbackQuery = `UPDATE feedback SET rating = ?, comment = ?, submitted_at = CURRENT_TIMESTAMP
WHERE registration_id = ? RETURNING id`
)

// FeedbackRepository persists event feedback.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository constructs the repository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Upsert stores the rating and comment for a registration, replacing earlier feedback.
func (r *FeedbackRepository) Upsert(ctx context.Context, registrationID int64, rating int, comment string) (*models.UpsertResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin feedback tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	result := &models.UpsertResult{Created: true}
	err = tx.QueryRowxContext(ctx, tx.Rebind(insertFeedbackQuery), registrationID, rating, comment).Scan(&result.ID)
	if errors.Is(err, sql.ErrNoRows) {
		result.Created = false
		err = tx.QueryRowxContext(ctx, tx.Rebind(updateFeedbackQuery), rating, comment, registrationID).Scan(&result.ID)
		if err != nil {
			return nil, fmt.Errorf("update feedback: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit feedback: %w", err)
	}
	return result, nil
}

// FindByRegistration returns the feedback row for a registration.
func (r *FeedbackRepository) FindByRegistration(ctx context.Context, registrationID int64) (*models.Feedback, error) {
	query := r.db.Rebind(`SELECT id, registration_id, rating, comment, submitted_at FROM feedback WHERE registration_id = ?`)
	var feedback models.Feedback
	if err := r.db.GetContext(ctx, &feedback, query, registrationID); err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return &feedback, nil
}
