package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/kyamane/remote-work-api/internal/errors"
	"github.com/kyamane/remote-work-api/internal/models"
	"github.com/kyamane/remote-work-api/internal/services"
	"github.com/kyamane/remote-work-api/internal/utils"
)

type EmployeeHandler struct {
	workspace *services.WorkspaceService
}

func NewEmployeeHandler(workspace *services.WorkspaceService) *EmployeeHandler {
	return &EmployeeHandler{workspace: workspace}
}

// AddEmployee creates a new employee record
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	type AddEmployeeRequest struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}

	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.workspace.AddEmployee(c.Request.Context(), services.AddEmployeeInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// ListEmployees returns all employees, paginated
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.workspace.ListEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	params := utils.GetPaginationParams(c)
	page := utils.PageSlice(employees, params)

	c.JSON(http.StatusOK, gin.H{
		"employees": page,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int64(len(employees)),
		},
	})
}

// SearchEmployees returns employees whose name starts with the given prefix
func (h *EmployeeHandler) SearchEmployees(c *gin.Context) {
	prefix := c.Query("prefix")
	if prefix == "" {
		apierrors.BadRequest(c, "Query parameter 'prefix' is required")
		return
	}

	employees, err := h.workspace.SearchEmployees(c.Request.Context(), prefix)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}
