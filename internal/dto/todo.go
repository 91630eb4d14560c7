package dto

import "time"

// CreateTodoRequest is the JSON body for POST /todos.
// Status is optional and defaults to false.
type CreateTodoRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=255"`
	Status *bool  `json:"status"`
}

// UpdateTodoRequest is the JSON body for PUT /todos/{id}.
// Both fields are required: update overwrites title and status together.
// Status is a pointer so that false passes the presence check.
type UpdateTodoRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=255"`
	Status *bool  `json:"status" binding:"required"`
}

type TodoResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Status     bool      `json:"status"`
	LastUpdate time.Time `json:"last_update"`
}

// MessageResponse is the uniform body for success messages and all errors.
type MessageResponse struct {
	Message string `json:"message"`
}
