package api

// RootResponse is the static body served at the root route.
type RootResponse struct {
	Message       string `json:"message"`
	Docs          string `json:"docs"`
	OpenAPISchema string `json:"openapi_schema"`
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status string `json:"status"`
}

// CreateTaskBody is the request body for creating a task. Title is
// required; a null title is rejected since the column is not nullable.
type CreateTaskBody struct {
	Title       Optional[string] `json:"title"`
	Description *string          `json:"description"`
}

// UpdateTaskBody is the request body for partially updating a task.
// Absent fields are left unchanged; a null description clears the
// column.
type UpdateTaskBody struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Completed   Optional[bool]   `json:"completed"`
}

// DeleteResponse is the body returned after a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// NotFoundResponse mirrors the original surface: a missing task is
// reported in the body with a success status, not a 404.
type NotFoundResponse struct {
	Error string `json:"error"`
}

// ErrorResponse represents a client or server error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
