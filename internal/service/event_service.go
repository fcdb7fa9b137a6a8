package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

type eventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context, filter models.EventFilter) ([]models.EventDetail, error)
}

// EventService coordinates event creation and listing.
type EventService struct {
	repo      eventRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs EventService.
func NewEventService(repo eventRepository, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{repo: repo, validator: validate, logger: logger}
}

// Create stores an event with its optional descriptive fields.
func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "name required")
	}

	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		CollegeID:   req.CollegeID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, translateWriteError(s.logger, err, "create event", appErrors.ErrIntegrity.Message)
	}
	return event, nil
}

// List returns every event matching the filter.
func (s *EventService) List(ctx context.Context, filter models.EventFilter) ([]models.EventDetail, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list events", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list events")
	}
	return events, nil
}
