package dto

// CreateStudentRequest defines payload for POST /student.
type CreateStudentRequest struct {
	Name      string  `json:"name" validate:"required"`
	Email     *string `json:"email"`
	CollegeID *int64  `json:"college_id"`
}

// StudentCreatedResponse is returned once a student is stored.
type StudentCreatedResponse struct {
	Message   string `json:"message"`
	StudentID int64  `json:"student_id"`
}
