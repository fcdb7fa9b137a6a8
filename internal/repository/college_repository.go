package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-events-api/internal/models"
)

// CollegeRepository persists colleges.
type CollegeRepository struct {
	db *sqlx.DB
}

// NewCollegeRepository constructs the repository.
func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// Create inserts a college and populates its generated id.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := r.db.Rebind(`INSERT INTO colleges (name) VALUES (?) RETURNING id`)
	if err := r.db.QueryRowxContext(ctx, query, college.Name).Scan(&college.ID); err != nil {
		return fmt.Errorf("create college: %w", err)
	}
	return nil
}
