package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kyamane/remote-work-api/internal/dto"
	apierrors "github.com/kyamane/remote-work-api/internal/errors"
	"github.com/kyamane/remote-work-api/internal/services"
	"github.com/kyamane/remote-work-api/internal/utils"
)

type TaskHandler struct {
	workspace *services.WorkspaceService
}

func NewTaskHandler(workspace *services.WorkspaceService) *TaskHandler {
	return &TaskHandler{workspace: workspace}
}

// CreateTask creates a new open task. A due_epoch of 0 means no due date.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title    string `json:"title" binding:"required"`
		Details  string `json:"details"`
		Priority int    `json:"priority" binding:"required"`
		DueEpoch int64  `json:"due_epoch"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.workspace.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:    req.Title,
		Details:  req.Details,
		Priority: req.Priority,
		DueEpoch: req.DueEpoch,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListTasks returns the scheduler snapshot: descending priority, ascending
// due time, paginated.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks := h.workspace.ListTasks()

	params := utils.GetPaginationParams(c)
	page := utils.PageSlice(tasks, params)

	c.JSON(http.StatusOK, dto.ToTaskListResponse(page, params, int64(len(tasks))))
}

// AssignTask assigns a task to an employee
func (h *TaskHandler) AssignTask(c *gin.Context) {
	type AssignTaskRequest struct {
		EmployeeID string `json:"employee_id" binding:"required"`
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	taskID := c.Param("id")
	if err := h.workspace.AssignTask(c.Request.Context(), taskID, req.EmployeeID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task assigned"})
}

// CompleteTask marks a task as completed
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if err := h.workspace.CompleteTask(c.Request.Context(), taskID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task completed"})
}
