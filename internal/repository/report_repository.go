package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/campus-events-api/internal/models"
)

// ReportRepository runs the aggregate queries behind the reporting endpoints.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs the repository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// RegistrationsPerEvent counts registrations for every event matching the filter,
// including events nobody registered for.
func (r *ReportRepository) RegistrationsPerEvent(ctx context.Context, filter models.EventFilter) ([]models.EventRegistrationSummary, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT e.id AS event_id, e.name AS event_name, e.type AS event_type, c.name AS college_name,
COUNT(r.id) AS total_registrations
FROM events e
LEFT JOIN colleges c ON c.id = e.college_id
LEFT JOIN registrations r ON r.event_id = e.id
WHERE 1=1`)
	args := appendEventFilter(&sb, filter)
	sb.WriteString(` GROUP BY e.id, e.name, e.type, c.name ORDER BY total_registrations DESC, e.id ASC`)

	rows := []models.EventRegistrationSummary{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(sb.String()), args...); err != nil {
		return nil, fmt.Errorf("registrations per event: %w", err)
	}
	return rows, nil
}

// AttendanceCounts returns registered and present counts for one event.
func (r *ReportRepository) AttendanceCounts(ctx context.Context, eventID int64) (*models.AttendanceCounts, error) {
	query := r.db.Rebind(`SELECT
(SELECT COUNT(*) FROM registrations WHERE event_id = ?) AS total_registered,
(SELECT COUNT(*) FROM attendance a JOIN registrations r ON r.id = a.registration_id
 WHERE r.event_id = ? AND a.status = ?) AS total_attended`)
	var counts models.AttendanceCounts
	if err := r.db.GetContext(ctx, &counts, query, eventID, eventID, models.AttendanceStatusPresent); err != nil {
		return nil, fmt.Errorf("attendance counts: %w", err)
	}
	return &counts, nil
}

// FeedbackSummary returns the raw average and count of ratings for one event.
func (r *ReportRepository) FeedbackSummary(ctx context.Context, eventID int64) (*models.FeedbackAggregate, error) {
	query := r.db.Rebind(`SELECT AVG(f.rating) AS average_rating, COUNT(f.id) AS count_feedback
FROM feedback f
JOIN registrations r ON r.id = f.registration_id
WHERE r.event_id = ?`)
	var agg models.FeedbackAggregate
	if err := r.db.GetContext(ctx, &agg, query, eventID); err != nil {
		return nil, fmt.Errorf("feedback summary: %w", err)
	}
	return &agg, nil
}

// ActiveStudents ranks students by present attendance, ties broken by id.
func (r *ReportRepository) ActiveStudents(ctx context.Context, limit int) ([]models.ActiveStudent, error) {
	query := r.db.Rebind(`SELECT s.id AS student_id, s.name AS student_name,
COALESCE(SUM(CASE WHEN a.status = ? THEN 1 ELSE 0 END), 0) AS attended_count
FROM students s
LEFT JOIN registrations r ON r.student_id = s.id
LEFT JOIN attendance a ON a.registration_id = r.id
GROUP BY s.id, s.name
ORDER BY attended_count DESC, s.id ASC
LIMIT ?`)
	students := []models.ActiveStudent{}
	if err := r.db.SelectContext(ctx, &students, query, models.AttendanceStatusPresent, limit); err != nil {
		return nil, fmt.Errorf("active students: %w", err)
	}
	return students, nil
}
