package api

import (
	"errors"
	"log"
	"strconv"
	"strings"

	domain "github.com/example/task-manager/domain/task"
	"github.com/example/task-manager/modules/task"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// Handlers contains the HTTP handlers for the task API.
type Handlers struct {
	tasks task.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(tasks task.TaskPort) *Handlers {
	return &Handlers{
		tasks: tasks,
	}
}

// Root serves the static service info body.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(RootResponse{
		Message:       "Welcome to Task Manager API",
		Docs:          "/docs",
		OpenAPISchema: "/openapi.json",
	})
}

// Health serves the liveness body.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(HealthResponse{
		Status: "healthy",
	})
}

// ListTasks returns a page of tasks as a bare JSON array.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	skip, err := queryInt(c, "skip", defaultSkip)
	if err != nil {
		return badRequest(c, "skip must be an integer")
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return badRequest(c, "limit must be an integer")
	}

	resp, err := h.tasks.List(c.UserContext(), skip, limit)
	if err != nil {
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp.Tasks)
}

// GetTask returns a single task by ID. A missing task is reported in
// the body with status 200, preserving the original surface.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	found, err := h.tasks.Get(c.UserContext(), id)
	if err != nil {
		if isNotFound(err) {
			return taskNotFound(c)
		}
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

// CreateTask validates the body and creates a task.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var body CreateTaskBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if !body.Title.Set {
		return badRequest(c, "title is required")
	}
	if !body.Title.Valid {
		return badRequest(c, "title cannot be null")
	}

	created, err := h.tasks.Create(c.UserContext(), task.CreateTaskRequest{
		Title:       body.Title.Value,
		Description: body.Description,
	})
	if err != nil {
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(created)
}

// UpdateTask applies a partial update. Only fields present in the body
// change; a null description clears the column.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	var body UpdateTaskBody
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if body.Title.Set && !body.Title.Valid {
		return badRequest(c, "title cannot be null")
	}
	if body.Completed.Set && !body.Completed.Valid {
		return badRequest(c, "completed cannot be null")
	}

	req := task.UpdateTaskRequest{ID: id}
	if body.Title.Set {
		req.Title = &body.Title.Value
	}
	if body.Description.Set {
		if body.Description.Valid {
			req.Description = &body.Description.Value
		} else {
			req.ClearDescription = true
		}
	}
	if body.Completed.Set {
		req.Completed = &body.Completed.Value
	}

	updated, err := h.tasks.Update(c.UserContext(), req)
	if err != nil {
		if isNotFound(err) {
			return taskNotFound(c)
		}
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

// DeleteTask permanently removes a task.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	if _, err := h.tasks.Delete(c.UserContext(), id); err != nil {
		if isNotFound(err) {
			return taskNotFound(c)
		}
		return h.serverError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(DeleteResponse{
		Message: "Task deleted successfully",
		ID:      id,
	})
}

// serverError logs the actual error and returns a generic 500 body.
func (h *Handlers) serverError(c *fiber.Ctx, err error) error {
	log.Printf("[api] Internal error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// isNotFound reports whether err is the task-not-found condition.
// Errors that crossed the request-reply bus arrive flattened to
// strings, so the sentinel check alone is not enough.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		strings.Contains(err.Error(), domain.ErrNotFound.Error())
}

// taskNotFound writes the original not-found body: an error field with
// a success status.
func taskNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(NotFoundResponse{
		Error: "Task not found",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// paramID parses the id path parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// queryInt parses an integer query parameter, returning the default
// when the parameter is absent.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
