package task

import (
	"context"
	"fmt"

	domain "github.com/example/task-manager/domain/task"
)

// Service handles task business logic on top of the repository.
type Service struct {
	repo *domain.Repository
}

// NewService creates a new task Service.
func NewService(repo *domain.Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new task. The storage layer assigns the ID and
// creation timestamp.
func (s *Service) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to save task: %w", err)
	}

	return toTaskResponse(task), nil
}

// Get retrieves a task by ID.
func (s *Service) Get(ctx context.Context, id uint) (TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// List returns a page of tasks in ID order along with the total count.
func (s *Service) List(ctx context.Context, skip, limit int) (ListTasksResponse, error) {
	tasks, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return ListTasksResponse{}, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return ListTasksResponse{}, err
	}

	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: total,
	}
	for i := range tasks {
		resp.Tasks = append(resp.Tasks, toTaskResponse(&tasks[i]))
	}
	return resp, nil
}

// Update applies only the fields present in the request and returns the
// updated task. ID and CreatedAt never change.
func (s *Service) Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error) {
	task, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.ClearDescription {
		task.Description = nil
	} else if req.Description != nil {
		task.Description = req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return TaskResponse{}, fmt.Errorf("failed to update task: %w", err)
	}

	return toTaskResponse(task), nil
}

// Delete permanently removes a task by ID.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}
