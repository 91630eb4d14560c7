package domain

import "time"

// Todo is the persisted task entity.
// Does not depend on Gin or Postgres.
type Todo struct {
	ID         int64
	Title      string
	Status     bool
	LastUpdate time.Time
}
