// Package repository is the persistent store adapter. The interfaces are the
// capability surface the application core depends on; implementations exist
// for a MongoDB document store and for SQL databases through GORM. Records
// are authoritative here; the in-memory indexes upstream are derived caches.
package repository

import (
	"context"
	"errors"

	"github.com/kyamane/remote-work-api/internal/models"
)

// ErrNotFound is returned by every backend when a referenced record is absent
// from the store.
var ErrNotFound = errors.New("record not found")

// EmployeeRepository defines the interface for employee record access.
type EmployeeRepository interface {
	// Create persists a new employee and assigns its identifier.
	Create(ctx context.Context, employee *models.Employee) error

	// FindByID finds an employee by identifier.
	FindByID(ctx context.Context, id string) (*models.Employee, error)

	// FindAll returns every persisted employee.
	FindAll(ctx context.Context) ([]models.Employee, error)
}

// ProjectRepository defines the interface for project record access.
type ProjectRepository interface {
	// Create persists a new project and assigns its identifier.
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project by identifier.
	FindByID(ctx context.Context, id string) (*models.Project, error)

	// FindAll returns every persisted project.
	FindAll(ctx context.Context) ([]models.Project, error)
}

// TaskRepository defines the interface for task record access.
type TaskRepository interface {
	// Create persists a new task and assigns its identifier.
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by identifier.
	FindByID(ctx context.Context, id string) (*models.Task, error)

	// FindAll returns every persisted task.
	FindAll(ctx context.Context) ([]models.Task, error)

	// UpdateFields applies a partial field update to the task with the given
	// identifier. Returns ErrNotFound when no such task exists.
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

// Set bundles the repositories for one store backend.
type Set struct {
	Employees EmployeeRepository
	Projects  ProjectRepository
	Tasks     TaskRepository
}
