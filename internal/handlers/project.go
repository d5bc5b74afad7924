package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/kyamane/remote-work-api/internal/errors"
	"github.com/kyamane/remote-work-api/internal/services"
)

type ProjectHandler struct {
	workspace *services.WorkspaceService
}

func NewProjectHandler(workspace *services.WorkspaceService) *ProjectHandler {
	return &ProjectHandler{workspace: workspace}
}

// CreateProject creates a new project record
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.workspace.CreateProject(c.Request.Context(), services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects returns all projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.workspace.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}
