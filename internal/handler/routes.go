package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler mounted on the router.
type Handlers struct {
	Colleges      *CollegeHandler
	Students      *StudentHandler
	Events        *EventHandler
	Participation *ParticipationHandler
	Reports       *ReportHandler
	Metrics       *MetricsHandler
}

// RegisterRoutes mounts the API on r. /metrics is only mounted when withMetrics is set.
func RegisterRoutes(r gin.IRoutes, h Handlers, withMetrics bool) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	if withMetrics {
		r.GET("/metrics", h.Metrics.Prometheus)
	}

	r.POST("/college", h.Colleges.Create)
	r.POST("/student", h.Students.Create)
	r.POST("/event", h.Events.Create)
	r.GET("/events", h.Events.List)

	r.POST("/register", h.Participation.Register)
	r.POST("/attendance", h.Participation.MarkAttendance)
	r.POST("/feedback", h.Participation.SubmitFeedback)

	r.GET("/report/registrations", h.Reports.Registrations)
	r.GET("/report/registrations/export", h.Reports.ExportRegistrations)
	r.GET("/report/attendance/:event_id", h.Reports.Attendance)
	r.GET("/report/feedback/:event_id", h.Reports.Feedback)
	r.GET("/report/active-students", h.Reports.ActiveStudents)
}
