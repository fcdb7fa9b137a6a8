package models

// Student represents a learner, optionally attached to a college.
type Student struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Email     *string `db:"email" json:"email"`
	CollegeID *int64  `db:"college_id" json:"college_id"`
}
