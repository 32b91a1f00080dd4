package domain

import "time"

// Operation is the persisted audit record of one sync run.
type Operation struct {
	ID        int64     `db:"id"`
	Name      string    `db:"operation"`
	Success   bool      `db:"success"`
	APICalls  int       `db:"api_calls"`
	Duration  string    `db:"duration"`
	Details   []byte    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}
