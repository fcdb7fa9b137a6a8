package models

import "time"

// AttendanceStatusPresent is the only status counted as attended in reports.
const AttendanceStatusPresent = "present"

// Attendance records the latest status for a registration.
type Attendance struct {
	ID             int64     `db:"id" json:"id"`
	RegistrationID int64     `db:"registration_id" json:"registration_id"`
	Status         string    `db:"status" json:"status"`
	MarkedAt       time.Time `db:"marked_at" json:"marked_at"`
}
