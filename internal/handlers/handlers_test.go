package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kyamane/remote-work-api/internal/models"
	"github.com/kyamane/remote-work-api/internal/repository"
	"github.com/kyamane/remote-work-api/internal/services"
)

type testEnv struct {
	db        *gorm.DB
	workspace *services.WorkspaceService
	router    *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Employee{}, &models.Project{}, &models.Task{})
	require.NoError(t, err)

	repos := repository.Set{
		Employees: repository.NewGormEmployeeRepository(db),
		Projects:  repository.NewGormProjectRepository(db),
		Tasks:     repository.NewGormTaskRepository(db),
	}

	workspace := services.NewWorkspaceService(repos, 1000, zerolog.Nop())
	require.NoError(t, workspace.Warmup(context.Background()))

	gin.SetMode(gin.TestMode)
	router := gin.New()

	employeeHandler := NewEmployeeHandler(workspace)
	projectHandler := NewProjectHandler(workspace)
	taskHandler := NewTaskHandler(workspace)
	systemHandler := NewSystemHandler(workspace)

	api := router.Group("/api")
	api.POST("/employees", employeeHandler.AddEmployee)
	api.GET("/employees", employeeHandler.ListEmployees)
	api.GET("/employees/search", employeeHandler.SearchEmployees)
	api.POST("/projects", projectHandler.CreateProject)
	api.GET("/projects", projectHandler.ListProjects)
	api.POST("/tasks", taskHandler.CreateTask)
	api.GET("/tasks", taskHandler.ListTasks)
	api.POST("/tasks/:id/assign", taskHandler.AssignTask)
	api.POST("/tasks/:id/complete", taskHandler.CompleteTask)
	api.GET("/history", systemHandler.ShowHistory)
	api.POST("/admin/resync", systemHandler.Resync)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{db: db, workspace: workspace, router: router}
}

func (env testEnv) do(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
