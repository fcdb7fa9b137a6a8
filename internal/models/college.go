package models

// College groups students and events. Names are unique.
type College struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
