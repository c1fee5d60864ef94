package dto

import "time"

// CreateTaskRequest is the JSON body for POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"max=1000"`
}

// UpdateTaskRequest is the JSON body for PUT /tasks/:id.
// nil = leave unchanged, value = set. An empty title is rejected at binding
// rather than interpreted as "no change" or "clear".
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

type TaskResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
