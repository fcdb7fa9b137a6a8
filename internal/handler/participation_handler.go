package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	"github.com/noah-isme/campus-events-api/pkg/response"
)

type registrationService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.UpsertResult, error)
}

type attendanceService interface {
	Mark(ctx context.Context, req dto.MarkAttendanceRequest) (*models.UpsertResult, error)
}

type feedbackService interface {
	Submit(ctx context.Context, req dto.SubmitFeedbackRequest) (*models.UpsertResult, error)
}

// ParticipationHandler exposes registration, attendance and feedback writes.
type ParticipationHandler struct {
	registrations registrationService
	attendance    attendanceService
	feedback      feedbackService
}

// NewParticipationHandler constructs the handler.
func NewParticipationHandler(registrations registrationService, attendance attendanceService, feedback feedbackService) *ParticipationHandler {
	return &ParticipationHandler{registrations: registrations, attendance: attendance, feedback: feedback}
}

// Register godoc
// @Summary Register a student for an event
// @Tags Registrations
// @Accept json
// @Produce json
// @Param payload body dto.RegisterRequest true "Registration payload"
// @Success 201 {object} dto.RegistrationResponse
// @Success 200 {object} dto.RegistrationResponse "already registered"
// @Failure 400 {object} response.ErrorBody
// @Router /register [post]
func (h *ParticipationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.registrations.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Created {
		response.OK(c, dto.RegistrationResponse{Message: "already registered"})
		return
	}
	response.Created(c, dto.RegistrationResponse{Message: "registered", RegistrationID: &result.ID})
}

// MarkAttendance godoc
// @Summary Mark attendance
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.MarkAttendanceRequest true "Attendance payload"
// @Success 201 {object} dto.AttendanceResponse
// @Success 200 {object} dto.AttendanceResponse "attendance updated"
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /attendance [post]
func (h *ParticipationHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.attendance.Mark(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Created {
		response.OK(c, dto.AttendanceResponse{Message: "attendance updated"})
		return
	}
	response.Created(c, dto.AttendanceResponse{Message: "attendance marked", AttendanceID: &result.ID})
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body dto.SubmitFeedbackRequest true "Feedback payload"
// @Success 201 {object} dto.FeedbackResponse
// @Success 200 {object} dto.FeedbackResponse "feedback updated"
// @Failure 400 {object} response.ErrorBody
// @Router /feedback [post]
func (h *ParticipationHandler) SubmitFeedback(c *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.feedback.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Created {
		response.OK(c, dto.FeedbackResponse{Message: "feedback updated"})
		return
	}
	response.Created(c, dto.FeedbackResponse{Message: "feedback saved", FeedbackID: &result.ID})
}
