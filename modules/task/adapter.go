package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskPort defines the interface other modules use to access task
// operations.
type TaskPort interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id uint) (TaskResponse, error)
	List(ctx context.Context, skip, limit int) (ListTasksResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id uint) (DeleteTaskResponse, error)
}

// TaskAdapter implements TaskPort using the service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{
		container: container,
	}
}

// Create creates a new task.
func (a *TaskAdapter) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return TaskResponse{}, fmt.Errorf("create request failed: %w", err)
	}
	return resp, nil
}

// Get retrieves a task by ID.
func (a *TaskAdapter) Get(ctx context.Context, id uint) (TaskResponse, error) {
	req := GetTaskRequest{ID: id}
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// List retrieves a page of tasks.
func (a *TaskAdapter) List(ctx context.Context, skip, limit int) (ListTasksResponse, error) {
	req := ListTasksRequest{Skip: skip, Limit: limit}
	var resp ListTasksResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return ListTasksResponse{}, fmt.Errorf("list request failed: %w", err)
	}
	return resp, nil
}

// Update applies a partial update to a task.
func (a *TaskAdapter) Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

// Delete permanently removes a task by ID.
func (a *TaskAdapter) Delete(ctx context.Context, id uint) (DeleteTaskResponse, error) {
	req := DeleteTaskRequest{ID: id}
	var resp DeleteTaskResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return DeleteTaskResponse{}, err
	}
	return resp, nil
}
