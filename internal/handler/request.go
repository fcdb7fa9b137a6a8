package handler

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-events-api/internal/models"
	appErrors "github.com/noah-isme/campus-events-api/pkg/errors"
)

// bindJSON decodes the request body into dst. An empty body leaves dst zero valued
// so the service reports which fields are missing.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return appErrors.Validation(err, "invalid payload")
	}
	return nil
}

// eventFilterFromQuery reads the optional college_id and type filters.
func eventFilterFromQuery(c *gin.Context) (models.EventFilter, error) {
	filter := models.EventFilter{Type: c.Query("type")}
	if raw := strings.TrimSpace(c.Query("college_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, appErrors.Validation(err, "college_id must be an integer")
		}
		filter.CollegeID = &id
	}
	return filter, nil
}

// eventIDParam parses the :event_id segment. Anything but a non-negative integer
// does not address an event and is reported as not found.
func eventIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("event_id"), 10, 64)
	if err != nil || id < 0 {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "not found")
	}
	return id, nil
}
