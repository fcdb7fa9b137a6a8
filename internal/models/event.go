package models

// Event is a campus activity students can register for. Dates are kept as the
// ISO calendar strings supplied by clients.
type Event struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Type        *string `db:"type" json:"type"`
	CollegeID   *int64  `db:"college_id" json:"college_id"`
	StartDate   *string `db:"start_date" json:"start_date"`
	EndDate     *string `db:"end_date" json:"end_date"`
}

// EventDetail is an event joined with the owning college name.
type EventDetail struct {
	Event
	CollegeName *string `db:"college_name" json:"college_name"`
}

// EventFilter narrows event listings and reports. Zero values match everything.
type EventFilter struct {
	CollegeID *int64
	Type      string
}
