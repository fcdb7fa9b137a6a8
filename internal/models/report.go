package models

import "database/sql"

// EventRegistrationSummary is one row of the registrations-per-event report.
type EventRegistrationSummary struct {
	EventID            int64   `db:"event_id" json:"event_id"`
	EventName          string  `db:"event_name" json:"event_name"`
	EventType          *string `db:"event_type" json:"event_type"`
	CollegeName        *string `db:"college_name" json:"college_name"`
	TotalRegistrations int64   `db:"total_registrations" json:"total_registrations"`
}

// AttendanceCounts are the raw counts behind the attendance report.
type AttendanceCounts struct {
	TotalRegistered int64 `db:"total_registered"`
	TotalAttended   int64 `db:"total_attended"`
}

// AttendanceReport summarises turnout for one event.
type AttendanceReport struct {
	EventID              int64   `json:"event_id"`
	TotalRegistered      int64   `json:"total_registered"`
	TotalAttended        int64   `json:"total_attended"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// FeedbackAggregate is the raw aggregate behind the feedback report.
type FeedbackAggregate struct {
	AverageRating sql.NullFloat64 `db:"average_rating"`
	CountFeedback int64           `db:"count_feedback"`
}

// FeedbackReport summarises ratings for one event.
type FeedbackReport struct {
	EventID         int64   `json:"event_id"`
	AverageFeedback float64 `json:"average_feedback"`
	CountFeedback   int64   `json:"count_feedback"`
}

// ActiveStudent ranks a student by present attendance records.
type ActiveStudent struct {
	StudentID     int64  `db:"student_id" json:"student_id"`
	StudentName   string `db:"student_name" json:"student_name"`
	AttendedCount int64  `db:"attended_count" json:"attended_count"`
}
