package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/models"
)

type stubReportRepo struct {
	summary   []models.EventRegistrationSummary
	counts    models.AttendanceCounts
	feedback  models.FeedbackAggregate
	students  []models.ActiveStudent
	lastLimit int
	err       error
}

func (s *stubReportRepo) RegistrationsPerEvent(ctx context.Context, filter models.EventFilter) ([]models.EventRegistrationSummary, error) {
	return s.summary, s.err
}

func (s *stubReportRepo) AttendanceCounts(ctx context.Context, eventID int64) (*models.AttendanceCounts, error) {
	if s.err != nil {
		return nil, s.err
	}
	counts := s.counts
	return &counts, nil
}

func (s *stubReportRepo) FeedbackSummary(ctx context.Context, eventID int64) (*models.FeedbackAggregate, error) {
	if s.err != nil {
		return nil, s.err
	}
	agg := s.feedback
	return &agg, nil
}

func (s *stubReportRepo) ActiveStudents(ctx context.Context, limit int) ([]models.ActiveStudent, error) {
	s.lastLimit = limit
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.students) {
		return s.students[:limit], nil
	}
	return s.students, nil
}

type observedQueries struct {
	labels []string
}

func (o *observedQueries) ObserveDBQuery(label string, duration time.Duration) {
	o.labels = append(o.labels, label)
}

func TestReportServiceAttendancePercentage(t *testing.T) {
	observer := &observedQueries{}
	svc := NewReportService(&stubReportRepo{counts: models.AttendanceCounts{TotalRegistered: 4, TotalAttended: 2}}, observer, zap.NewNop())

	report, err := svc.Attendance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.EventID)
	assert.Equal(t, 50.0, report.AttendancePercentage)
	assert.Equal(t, []string{"attendance_counts"}, observer.labels)
}

func TestReportServiceAttendanceRounds(t *testing.T) {
	svc := NewReportService(&stubReportRepo{counts: models.AttendanceCounts{TotalRegistered: 3, TotalAttended: 2}}, nil, nil)

	report, err := svc.Attendance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 66.67, report.AttendancePercentage)
}

func TestReportServiceAttendanceWithoutRegistrations(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, nil, zap.NewNop())

	report, err := svc.Attendance(context.Background(), 9)
	require.NoError(t, err)
	assert.Zero(t, report.TotalRegistered)
	assert.Zero(t, report.AttendancePercentage)
}

func TestReportServiceFeedback(t *testing.T) {
	svc := NewReportService(&stubReportRepo{feedback: models.FeedbackAggregate{
		AverageRating: sql.NullFloat64{Float64: 3.6666666, Valid: true},
		CountFeedback: 3,
	}}, nil, zap.NewNop())

	report, err := svc.Feedback(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3.67, report.AverageFeedback)
	assert.Equal(t, int64(3), report.CountFeedback)
}

func TestReportServiceFeedbackWithoutRatings(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, nil, zap.NewNop())

	report, err := svc.Feedback(context.Background(), 2)
	require.NoError(t, err)
	assert.Zero(t, report.AverageFeedback)
	assert.Zero(t, report.CountFeedback)
}

func TestReportServiceActiveStudents(t *testing.T) {
	repo := &stubReportRepo{students: []models.ActiveStudent{
		{StudentID: 1, AttendedCount: 3},
		{StudentID: 2, AttendedCount: 2},
		{StudentID: 3, AttendedCount: 2},
		{StudentID: 4, AttendedCount: 1},
	}}
	svc := NewReportService(repo, nil, zap.NewNop())

	students, err := svc.ActiveStudents(context.Background(), DefaultActiveStudentsTop)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, int64(3), students[0].AttendedCount)
	assert.Equal(t, 3, repo.lastLimit)
}

func TestReportServiceActiveStudentsRejectsNonPositiveTop(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, nil, zap.NewNop())

	_, err := svc.ActiveStudents(context.Background(), 0)
	requireAppError(t, err, http.StatusBadRequest, "top must be a positive integer")
	assert.Zero(t, repo.lastLimit)
}

func TestReportServiceStorageFailure(t *testing.T) {
	svc := NewReportService(&stubReportRepo{err: errors.New("boom")}, nil, zap.NewNop())

	_, err := svc.RegistrationsPerEvent(context.Background(), models.EventFilter{})
	appErr := requireAppError(t, err, http.StatusInternalServerError, "failed to load registrations report")
	assert.Empty(t, appErr.Detail())
}
