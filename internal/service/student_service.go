package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	"github.com/noah-isme/campus-events-api/pkg/database"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

type studentRepository interface {
	Create(ctx context.Context, student *models.Student) error
}

// StudentService coordinates student operations.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs StudentService.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// Create stores a student. An unknown college id is reported as an integrity error.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name required")
	}

	student := &models.Student{Name: req.Name, Email: req.Email, CollegeID: req.CollegeID}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, translateWriteError(s.logger, err, "create student", appErrors.ErrIntegrity.Message)
	}
	return student, nil
}

// translateWriteError maps constraint failures to client errors and everything else to 500.
func translateWriteError(logger *zap.Logger, err error, op, integrityMessage string) error {
	if database.IsIntegrityViolation(err) {
		return appErrors.Integrity(err, integrityMessage)
	}
	logger.Error(op, zap.Error(err))
	return appErrors.Internal(err, "failed to "+op)
}
