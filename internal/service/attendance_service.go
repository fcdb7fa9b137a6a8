package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

type attendanceRepository interface {
	Upsert(ctx context.Context, registrationID int64, status string) (*models.UpsertResult, error)
}

type registrationLookup interface {
	FindID(ctx context.Context, studentID, eventID int64) (int64, error)
}

// AttendanceService records attendance against registrations.
type AttendanceService struct {
	repo          attendanceRepository
	registrations registrationLookup
	validator     *validator.Validate
	metrics       writeRecorder
	logger        *zap.Logger
}

// NewAttendanceService constructs AttendanceService.
func NewAttendanceService(repo attendanceRepository, registrations registrationLookup, validate *validator.Validate, metrics writeRecorder, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, registrations: registrations, validator: validate, metrics: metrics, logger: logger}
}

// Mark sets the attendance status for a registration, creating the record on first use.
// The registration may be given directly or resolved from the student and event pair.
func (s *AttendanceService) Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*models.UpsertResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "provide registration_id or (student_id and event_id)")
	}

	registrationID := req.RegistrationID
	if registrationID == 0 {
		id, err := s.registrations.FindID(ctx, req.StudentID, req.EventID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
			}
			s.logger.Error("resolve registration", zap.Error(err))
			return nil, appErrors.Internal(err, "failed to resolve registration")
		}
		registrationID = id
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = models.AttendanceStatusPresent
	}

	result, err := s.repo.Upsert(ctx, registrationID, status)
	if err != nil {
		return nil, translateWriteError(s.logger, err, "mark attendance", appErrors.ErrIntegrity.Message)
	}
	if s.metrics != nil {
		s.metrics.RecordWrite("attendance", result.Created)
	}
	return result, nil
}
