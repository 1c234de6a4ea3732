package task

import "time"

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// GetTaskRequest is the request for getting a task by ID.
type GetTaskRequest struct {
	ID uint `json:"id"`
}

// ListTasksRequest is the request for listing tasks with pagination.
type ListTasksRequest struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// ListTasksResponse is the response containing a page of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int64          `json:"total"`
}

// UpdateTaskRequest is the request for partially updating a task. Nil
// pointer fields are left unchanged; ClearDescription sets the
// description column to NULL.
type UpdateTaskRequest struct {
	ID               uint    `json:"id"`
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	ClearDescription bool    `json:"clear_description,omitempty"`
	Completed        *bool   `json:"completed,omitempty"`
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID uint `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	Deleted bool `json:"deleted"`
	ID      uint `json:"id"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}
