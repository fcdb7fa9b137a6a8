package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback holds the latest rating and comment left for a registration.
type Feedback struct {
	ID             int64     `db:"id" json:"id"`
	RegistrationID int64     `db:"registration_id" json:"registration_id"`
	Rating         int       `db:"rating" json:"rating"`
	Comment        string    `db:"comment" json:"comment"`
	SubmittedAt    time.Time `db:"submitted_at" json:"submitted_at"`
}
