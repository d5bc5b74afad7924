package dto

import (
	"time"

	"github.com/kyamane/remote-work-api/internal/models"
	"github.com/kyamane/remote-work-api/internal/utils"
)

// TaskDTO represents a task in API responses. The due-time sentinel is
// rendered as a null due_epoch instead of leaking the reserved value.
type TaskDTO struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Details      string            `json:"details"`
	Priority     int               `json:"priority"`
	DueEpoch     *int64            `json:"due_epoch"`
	AssignedToID string            `json:"assigned_to_id,omitempty"`
	Status       models.TaskStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

// TaskListResponse represents a paginated, scheduler-ordered list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:           task.ID,
		Title:        task.Title,
		Details:      task.Details,
		Priority:     task.Priority,
		AssignedToID: task.AssignedToID,
		Status:       task.Status,
		CreatedAt:    task.CreatedAt,
		CompletedAt:  task.CompletedAt,
	}
	if task.HasDueDate() {
		due := task.DueEpoch
		dto.DueEpoch = &due
	}
	return dto
}

// ToTaskListResponse converts a page of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return TaskListResponse{
		Tasks: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
