package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

type feedbackRepository interface {
	Upsert(ctx context.Context, registrationID int64, rating int, comment string) (*models.UpsertResult, error)
}

// FeedbackService stores ratings for attended registrations.
type FeedbackService struct {
	repo      feedbackRepository
	validator *validator.Validate
	metrics   writeRecorder
	logger    *zap.Logger
}

// NewFeedbackService constructs FeedbackService.
func NewFeedbackService(repo feedbackRepository, validate *validator.Validate, metrics writeRecorder, logger *zap.Logger) *FeedbackService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// Submit stores or replaces the feedback for a registration.
func (s *FeedbackService) Submit(ctx context.Context, req dto.SubmitFeedbackRequest) (*models.UpsertResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "registration_id and rating required")
	}

	rating, ok := parseRating(req.Rating.String())
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "rating must be between 1 and 5")
	}

	comment := ""
	if req.Comment != nil {
		comment = *req.Comment
	}

	result, err := s.repo.Upsert(ctx, req.RegistrationID, rating, comment)
	if err != nil {
		return nil, translateWriteError(s.logger, err, "submit feedback", appErrors.ErrIntegrity.Message)
	}
	if s.metrics != nil {
		s.metrics.RecordWrite("feedback", result.Created)
	}
	return result, nil
}

// parseRating accepts whole numbers within the rating scale, including "4" and 4.0.
func parseRating(raw string) (int, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value != math.Trunc(value) {
		return 0, false
	}
	if value < models.MinRating || value > models.MaxRating {
		return 0, false
	}
	return int(value), true
}
