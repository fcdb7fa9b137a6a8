package dto

// CreateCollegeRequest defines payload for POST /college.
type CreateCollegeRequest struct {
	Name string `json:"name" validate:"required"`
}

// CollegeCreatedResponse is returned once a college is stored.
type CollegeCreatedResponse struct {
	Message   string `json:"message"`
	CollegeID int64  `json:"college_id"`
}
