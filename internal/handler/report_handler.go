package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	"github.com/noah-isme/campus-events-api/internal/service"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
	"github.com/noah-isme/campus-events-api/pkg/response"
)

type reportService interface {
	RegistrationsPerEvent(ctx context.Context, filter models.EventFilter) ([]models.EventRegistrationSummary, error)
	Attendance(ctx context.Context, eventID int64) (*models.AttendanceReport, error)
	Feedback(ctx context.Context, eventID int64) (*models.FeedbackReport, error)
	ActiveStudents(ctx context.Context, top int) ([]models.ActiveStudent, error)
}

type exportService interface {
	ExportRegistrations(ctx context.Context, format dto.ExportFormat, filter models.EventFilter) (*dto.ExportFile, error)
}

// ReportHandler exposes reporting endpoints.
type ReportHandler struct {
	reports reportService
	exports exportService
}

// NewReportHandler constructs handler.
func NewReportHandler(reports reportService, exports exportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// Registrations godoc
// @Summary Registrations per event
// @Tags Reports
// @Produce json
// @Param college_id query int false "Filter by college"
// @Param type query string false "Filter by event type"
// @Success 200 {array} models.EventRegistrationSummary
// @Failure 400 {object} response.ErrorBody
// @Router /report/registrations [get]
func (h *ReportHandler) Registrations(c *gin.Context) {
	filter, err := eventFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	rows, err := h.reports.RegistrationsPerEvent(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// ExportRegistrations godoc
// @Summary Download registrations per event
// @Tags Reports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param college_id query int false "Filter by college"
// @Param type query string false "Filter by event type"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /report/registrations/export [get]
func (h *ReportHandler) ExportRegistrations(c *gin.Context) {
	filter, err := eventFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.ExportRegistrations(c.Request.Context(), dto.ExportFormat(c.Query("format")), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}

// Attendance godoc
// @Summary Attendance for an event
// @Tags Reports
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.AttendanceReport
// @Failure 404 {object} response.ErrorBody
// @Router /report/attendance/{event_id} [get]
func (h *ReportHandler) Attendance(c *gin.Context) {
	eventID, err := eventIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.reports.Attendance(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Feedback godoc
// @Summary Feedback for an event
// @Tags Reports
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} models.FeedbackReport
// @Failure 404 {object} response.ErrorBody
// @Router /report/feedback/{event_id} [get]
func (h *ReportHandler) Feedback(c *gin.Context) {
	eventID, err := eventIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.reports.Feedback(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// ActiveStudents godoc
// @Summary Most active students
// @Tags Reports
// @Produce json
// @Param top query int false "Number of students (default 3)"
// @Success 200 {array} models.ActiveStudent
// @Failure 400 {object} response.ErrorBody
// @Router /report/active-students [get]
func (h *ReportHandler) ActiveStudents(c *gin.Context) {
	top := service.DefaultActiveStudentsTop
	if raw := strings.TrimSpace(c.Query("top")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Validation(err, "top must be a positive integer"))
			return
		}
		top = value
	}
	students, err := h.reports.ActiveStudents(c.Request.Context(), top)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}
