package dto

// MarkAttendanceRequest accepts either a registration id or a student/event pair.
type MarkAttendanceRequest struct {
	RegistrationID int64  `json:"registration_id"`
	StudentID      int64  `json:"student_id" validate:"required_without=RegistrationID"`
	EventID        int64  `json:"event_id" validate:"required_without=RegistrationID"`
	Status         string `json:"status"`
}

// AttendanceResponse carries the attendance id only on first insert.
type AttendanceResponse struct {
	Message      string `json:"message"`
	AttendanceID *int64 `json:"attendance_id,omitempty"`
}
