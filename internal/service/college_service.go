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

type collegeRepository interface {
	Create(ctx context.Context, college *models.College) error
}

// CollegeService coordinates college operations.
type CollegeService struct {
	repo      collegeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCollegeService constructs CollegeService.
func NewCollegeService(repo collegeRepository, validate *validator.Validate, logger *zap.Logger) *CollegeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollegeService{repo: repo, validator: validate, logger: logger}
}

// Create stores a college with a unique name.
func (s *CollegeService) Create(ctx context.Context, req dto.CreateCollegeRequest) (*models.College, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name required")
	}

	college := &models.College{Name: req.Name}
	if err := s.repo.Create(ctx, college); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return nil, appErrors.Integrity(err, "college already exists")
		case database.IsIntegrityViolation(err):
			return nil, appErrors.Integrity(err, appErrors.ErrIntegrity.Message)
		}
		s.logger.Error("create college", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to create college")
	}
	return college, nil
}
