package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-events-api/internal/models"
)

// EventRepository persists events and serves event listings.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts an event and populates its generated id.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := r.db.Rebind(`INSERT INTO events (name, description, type, college_id, start_date, end_date)
VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowxContext(ctx, query,
		event.Name, event.Description, event.Type, event.CollegeID, event.StartDate, event.EndDate,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// List returns events matching the filter together with the owning college name.
func (r *EventRepository) List(ctx context.Context, filter models.EventFilter) ([]models.EventDetail, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT e.id, e.name, e.description, e.type, e.college_id, e.start_date, e.end_date, c.name AS college_name
FROM events e
LEFT JOIN colleges c ON c.id = e.college_id
WHERE 1=1`)
	args := appendEventFilter(&sb, filter)
	sb.WriteString(" ORDER BY e.id ASC")

	events := []models.EventDetail{}
	if err := r.db.SelectContext(ctx, &events, r.db.Rebind(sb.String()), args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// appendEventFilter adds the optional college and type predicates on alias e.
func appendEventFilter(sb *strings.Builder, filter models.EventFilter) []interface{} {
	args := make([]interface{}, 0, 2)
	if filter.CollegeID != nil {
		sb.WriteString(" AND e.college_id = ?")
		args = append(args, *filter.CollegeID)
	}
	if filter.Type != "" {
		sb.WriteString(" AND e.type = ?")
		args = append(args, filter.Type)
	}
	return args
}
