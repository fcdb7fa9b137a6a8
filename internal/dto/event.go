package dto

// CreateEventRequest defines payload for POST /event. Only the name is checked.
type CreateEventRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	CollegeID   *int64  `json:"college_id"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

// EventCreatedResponse is returned once an event is stored.
type EventCreatedResponse struct {
	Message string `json:"message"`
	EventID int64  `json:"event_id"`
}
