package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	"github.com/noah-isme/campus-events-api/pkg/response"
)

type eventService interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	List(ctx context.Context, filter models.EventFilter) ([]models.EventDetail, error)
}

// EventHandler exposes event endpoints.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs an event handler.
func NewEventHandler(svc eventService) *EventHandler {
	return &EventHandler{service: svc}
}

// Create godoc
// @Summary Create event
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} dto.EventCreatedResponse
// @Failure 400 {object} response.ErrorBody
// @Router /event [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.EventCreatedResponse{Message: "event created", EventID: event.ID})
}

// List godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Param college_id query int false "Filter by college"
// @Param type query string false "Filter by event type"
// @Success 200 {array} models.EventDetail
// @Failure 400 {object} response.ErrorBody
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	filter, err := eventFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, events)
}
