package models

// Registration binds one student to one event, at most once per pair.
type Registration struct {
	ID        int64 `db:"id" json:"id"`
	StudentID int64 `db:"student_id" json:"student_id"`
	EventID   int64 `db:"event_id" json:"event_id"`
}

// UpsertResult reports the row touched by an insert-or-update and which branch ran.
type UpsertResult struct {
	ID      int64
	Created bool
}
