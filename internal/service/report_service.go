package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

// DefaultActiveStudentsTop is used when the caller does not ask for a size.
const DefaultActiveStudentsTop = 3

type reportRepository interface {
	RegistrationsPerEvent(ctx context.Context, filter models.EventFilter) ([]models.EventRegistrationSummary, error)
	AttendanceCounts(ctx context.Context, eventID int64) (*models.AttendanceCounts, error)
	FeedbackSummary(ctx context.Context, eventID int64) (*models.FeedbackAggregate, error)
	ActiveStudents(ctx context.Context, limit int) ([]models.ActiveStudent, error)
}

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// ReportService computes read-only aggregates over registrations, attendance and feedback.
type ReportService struct {
	repo    reportRepository
	metrics queryObserver
	logger  *zap.Logger
}

// NewReportService constructs ReportService. metrics may be nil.
func NewReportService(repo reportRepository, metrics queryObserver, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, metrics: metrics, logger: logger}
}

// RegistrationsPerEvent lists registration totals per event.
func (s *ReportService) RegistrationsPerEvent(ctx context.Context, filter models.EventFilter) ([]models.EventRegistrationSummary, error) {
	defer s.observe("registrations_per_event", time.Now())
	rows, err := s.repo.RegistrationsPerEvent(ctx, filter)
	if err != nil {
		return nil, s.internal(err, "failed to load registrations report")
	}
	return rows, nil
}

// Attendance reports turnout for an event. An unknown event yields zero counts.
func (s *ReportService) Attendance(ctx context.Context, eventID int64) (*models.AttendanceReport, error) {
	defer s.observe("attendance_counts", time.Now())
	counts, err := s.repo.AttendanceCounts(ctx, eventID)
	if err != nil {
		return nil, s.internal(err, "failed to load attendance report")
	}

	var percentage float64
	if counts.TotalRegistered > 0 {
		percentage = round2(float64(counts.TotalAttended) / float64(counts.TotalRegistered) * 100)
	}
	return &models.AttendanceReport{
		EventID:              eventID,
		TotalRegistered:      counts.TotalRegistered,
		TotalAttended:        counts.TotalAttended,
		AttendancePercentage: percentage,
	}, nil
}

// Feedback reports the average rating for an event, 0 when nobody rated it.
func (s *ReportService) Feedback(ctx context.Context, eventID int64) (*models.FeedbackReport, error) {
	defer s.observe("feedback_summary", time.Now())
	agg, err := s.repo.FeedbackSummary(ctx, eventID)
	if err != nil {
		return nil, s.internal(err, "failed to load feedback report")
	}

	var average float64
	if agg.AverageRating.Valid {
		average = round2(agg.AverageRating.Float64)
	}
	return &models.FeedbackReport{
		EventID:         eventID,
		AverageFeedback: average,
		CountFeedback:   agg.CountFeedback,
	}, nil
}

// ActiveStudents returns at most top students ranked by present attendance.
func (s *ReportService) ActiveStudents(ctx context.Context, top int) ([]models.ActiveStudent, error) {
	if top <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "top must be a positive integer")
	}
	defer s.observe("active_students", time.Now())
	students, err := s.repo.ActiveStudents(ctx, top)
	if err != nil {
		return nil, s.internal(err, "failed to load active students")
	}
	return students, nil
}

func (s *ReportService) observe(label string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveDBQuery(label, time.Since(start))
	}
}

func (s *ReportService) internal(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Internal(err, message)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
