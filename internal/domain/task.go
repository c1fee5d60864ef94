package domain

import "time"

// Task is the business entity. It does not depend on Gin, Postgres or Redis.
// UserID is the owning account, set at creation and never changed.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
