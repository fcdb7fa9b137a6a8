package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

type registrationRepository interface {
	Create(ctx context.Context, studentID, eventID int64) (*models.UpsertResult, error)
	FindID(ctx context.Context, studentID, eventID int64) (int64, error)
}

// RegistrationService registers students for events.
type RegistrationService struct {
	repo      registrationRepository
	validator *validator.Validate
	metrics   writeRecorder
	logger    *zap.Logger
}

// NewRegistrationService constructs RegistrationService.
func NewRegistrationService(repo registrationRepository, validate *validator.Validate, metrics writeRecorder, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Register creates the registration once; repeated calls report Created=false.
func (s *RegistrationService) Register(ctx context.Context, req dto.RegisterRequest) (*models.UpsertResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "student_id and event_id required")
	}

	result, err := s.repo.Create(ctx, req.StudentID, req.EventID)
	if err != nil {
		return nil, translateWriteError(s.logger, err, "register student", "could not register")
	}
	if s.metrics != nil {
		s.metrics.RecordWrite("registration", result.Created)
	}
	return result, nil
}

type writeRecorder interface {
	RecordWrite(entity string, created bool)
}
