package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
)

type mockEventRepo struct {
	events     []models.Event
	lastFilter models.EventFilter
	createErr  error
	listErr    error
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, *event)
	return nil
}

func (m *mockEventRepo) List(ctx context.Context, filter models.EventFilter) ([]models.EventDetail, error) {
	m.lastFilter = filter
	if m.listErr != nil {
		return nil, m.listErr
	}
	details := make([]models.EventDetail, 0, len(m.events))
	for _, e := range m.events {
		details = append(details, models.EventDetail{Event: e})
	}
	return details, nil
}

func TestEventServiceCreateKeepsOptionalFields(t *testing.T) {
	repo := &mockEventRepo{}
	svc := NewEventService(repo, validator.New(), zap.NewNop())

	kind := "Workshop"
	start := "2025-10-01"
	event, err := svc.Create(context.Background(), dto.CreateEventRequest{Name: "Go Workshop", Type: &kind, StartDate: &start})
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, "Workshop", *repo.events[0].Type)
	assert.Equal(t, "2025-10-01", *repo.events[0].StartDate)
	assert.Nil(t, repo.events[0].EndDate)
}

func TestEventServiceCreateValidation(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), dto.CreateEventRequest{})
	requireAppError(t, err, http.StatusBadRequest, "name required")
}

func TestEventServiceCreateUnknownCollege(t *testing.T) {
	repo := &mockEventRepo{createErr: &pq.Error{Code: "23503"}}
	svc := NewEventService(repo, validator.New(), zap.NewNop())

	collegeID := int64(9)
	_, err := svc.Create(context.Background(), dto.CreateEventRequest{Name: "Fest", CollegeID: &collegeID})
	requireAppError(t, err, http.StatusBadRequest, "integrity error")
}

func TestEventServiceList(t *testing.T) {
	repo := &mockEventRepo{events: []models.Event{{ID: 1, Name: "Hackathon"}}}
	svc := NewEventService(repo, validator.New(), zap.NewNop())

	collegeID := int64(1)
	events, err := svc.List(context.Background(), models.EventFilter{CollegeID: &collegeID, Type: "Hackathon"})
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "Hackathon", repo.lastFilter.Type)
	assert.Equal(t, int64(1), *repo.lastFilter.CollegeID)
}

func TestEventServiceListFailure(t *testing.T) {
	svc := NewEventService(&mockEventRepo{listErr: errors.New("boom")}, validator.New(), zap.NewNop())

	_, err := svc.List(context.Background(), models.EventFilter{})
	requireAppError(t, err, http.StatusInternalServerError, "failed to list events")
}
