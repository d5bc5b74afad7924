package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kyamane/remote-work-api/internal/constants"
	apierrors "github.com/kyamane/remote-work-api/internal/errors"
	"github.com/kyamane/remote-work-api/internal/services"
)

// SystemHandler serves the history log and index administration.
type SystemHandler struct {
	workspace *services.WorkspaceService
}

func NewSystemHandler(workspace *services.WorkspaceService) *SystemHandler {
	return &SystemHandler{workspace: workspace}
}

// ShowHistory returns up to limit recent history entries, newest first
func (h *SystemHandler) ShowHistory(c *gin.Context) {
	limit := constants.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierrors.BadRequest(c, "Invalid limit")
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"history": h.workspace.History(limit)})
}

// Resync rebuilds every in-memory index from the store
func (h *SystemHandler) Resync(c *gin.Context) {
	if err := h.workspace.Resync(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Indexes resynchronized"})
}
