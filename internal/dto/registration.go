package dto

// RegisterRequest defines payload for POST /register.
type RegisterRequest struct {
	StudentID int64 `json:"student_id" validate:"required"`
	EventID   int64 `json:"event_id" validate:"required"`
}

// RegistrationResponse omits the id when the pair was already registered.
type RegistrationResponse struct {
	Message        string `json:"message"`
	RegistrationID *int64 `json:"registration_id,omitempty"`
}
