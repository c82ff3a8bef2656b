package models

import "time"

// Period is a named billing cycle, in practice a calendar month ("August").
type Period struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
