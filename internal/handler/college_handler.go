package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-events-api/internal/dto"
	"github.com/noah-isme/campus-events-api/internal/models"
	"github.com/noah-isme/campus-events-api/pkg/response"
)

type collegeService interface {
	Create(ctx context.Context, req dto.CreateCollegeRequest) (*models.College, error)
}

// CollegeHandler exposes college endpoints.
type CollegeHandler struct {
	service collegeService
}

// NewCollegeHandler constructs a college handler.
func NewCollegeHandler(svc collegeService) *CollegeHandler {
	return &CollegeHandler{service: svc}
}

// Create godoc
// @Summary Create college
// @Tags Colleges
// @Accept json
// @Produce json
// @Param payload body dto.CreateCollegeRequest true "College payload"
// @Success 201 {object} dto.CollegeCreatedResponse
// @Failure 400 {object} response.ErrorBody
// @Router /college [post]
func (h *CollegeHandler) Create(c *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	college, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.CollegeCreatedResponse{Message: "college created", CollegeID: college.ID})
}
