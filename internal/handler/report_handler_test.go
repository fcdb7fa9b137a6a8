package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

type reportServiceMock struct {
	filter  models.EventFilter
	eventID int64
	top     int
}

func (m *reportServiceMock) RegistrationsPerEvent(ctx context.Context, filter models.EventFilter) ([]models.EventRegistrationSummary, error) {
	m.filter = filter
	return []models.EventRegistrationSummary{{EventID: 1, EventName: "Hackathon 2025", TotalRegistrations: 4}}, nil
}

func (m *reportServiceMock) Attendance(ctx context.Context, eventID int64) (*models.AttendanceReport, error) {
	m.eventID = eventID
	return &models.AttendanceReport{EventID: eventID, TotalRegistered: 4, TotalAttended: 2, AttendancePercentage: 50}, nil
}

func (m *reportServiceMock) Feedback(ctx context.Context, eventID int64) (*models.FeedbackReport, error) {
	m.eventID = eventID
	return &models.FeedbackReport{EventID: eventID}, nil
}

func (m *reportServiceMock) ActiveStudents(ctx context.Context, top int) ([]models.ActiveStudent, error) {
	m.top = top
	if top <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "top must be a positive integer")
	}
	return []models.ActiveStudent{}, nil
}

type exportServiceMock struct {
	format dto.ExportFormat
}

func (m *exportServiceMock) ExportRegistrations(ctx context.Context, format dto.ExportFormat, filter models.EventFilter) (*dto.ExportFile, error) {
	m.format = format
	return &dto.ExportFile{Filename: "registrations.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("event_id\n1\n")}, nil
}

func TestReportHandlerRegistrations(t *testing.T) {
	svc := &reportServiceMock{}
	h := NewReportHandler(svc, &exportServiceMock{})

	c, w := newGinContext(http.MethodGet, "/report/registrations?type=Hackathon", nil)
	h.Registrations(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"event_id":1,"event_name":"Hackathon 2025","event_type":null,"college_name":null,"total_registrations":4}]`, w.Body.String())
	assert.Equal(t, "Hackathon", svc.filter.Type)
	assert.Nil(t, svc.filter.CollegeID)
}

func TestReportHandlerAttendance(t *testing.T) {
	svc := &reportServiceMock{}
	h := NewReportHandler(svc, &exportServiceMock{})

	c, w := newGinContext(http.MethodGet, "/report/attendance/1", nil)
	c.Params = gin.Params{{Key: "event_id", Value: "1"}}
	h.Attendance(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"event_id":1,"total_registered":4,"total_attended":2,"attendance_percentage":50}`, w.Body.String())
}

func TestReportHandlerRejectsNonIntegerEventID(t *testing.T) {
	h := NewReportHandler(&reportServiceMock{}, &exportServiceMock{})

	for _, raw := range []string{"abc", "-1", "1.5"} {
		c, w := newGinContext(http.MethodGet, "/report/feedback/"+raw, nil)
		c.Params = gin.Params{{Key: "event_id", Value: raw}}
		h.Feedback(c)
		assert.Equal(t, http.StatusNotFound, w.Code, raw)
	}
}

func TestReportHandlerActiveStudentsTop(t *testing.T) {
	svc := &reportServiceMock{}
	h := NewReportHandler(svc, &exportServiceMock{})

	c, w := newGinContext(http.MethodGet, "/report/active-students", nil)
	h.ActiveStudents(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.top)

	c, w = newGinContext(http.MethodGet, "/report/active-students?top=5", nil)
	h.ActiveStudents(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, svc.top)

	for _, raw := range []string{"abc", "0", "-2"} {
		c, w = newGinContext(http.MethodGet, "/report/active-students?top="+raw, nil)
		h.ActiveStudents(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}
}

func TestReportHandlerExport(t *testing.T) {
	exports := &exportServiceMock{}
	h := NewReportHandler(&reportServiceMock{}, exports)

	c, w := newGinContext(http.MethodGet, "/report/registrations/export?format=csv", nil)
	h.ExportRegistrations(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.ExportFormatCSV, exports.format)
	assert.Equal(t, `attachment; filename="registrations.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "event_id\n1\n", w.Body.String())
}
