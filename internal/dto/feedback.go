package dto

import "encoding/json"

// SubmitFeedbackRequest defines payload for POST /feedback. Rating accepts a JSON
// number or a numeric string and is range checked by the service.
type SubmitFeedbackRequest struct {
	RegistrationID int64       `json:"registration_id" validate:"required"`
	Rating         json.Number `json:"rating" validate:"required"`
	Comment        *string     `json:"comment"`
}

// FeedbackResponse carries the feedback id only on first insert.
type FeedbackResponse struct {
	Message    string `json:"message"`
	FeedbackID *int64 `json:"feedback_id,omitempty"`
}
