// Package services holds the application core: every mutating operation
// persists to the store first, then reconciles the derived in-memory indexes,
// then records a history entry.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/kyamane/remote-work-api/internal/history"
	"github.com/kyamane/remote-work-api/internal/index"
	"github.com/kyamane/remote-work-api/internal/models"
	"github.com/kyamane/remote-work-api/internal/repository"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidPriority  = errors.New("priority must be between 1 and 5")
	ErrInvalidDueEpoch  = errors.New("due epoch must be zero or a positive instant")

	// ErrStoreUnavailable marks persist-phase failures: the operation was
	// aborted before any index or history change.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrIndexDivergence marks reconcile-phase failures after a successful
	// persist: the store write stands, but the indexes may be stale until a
	// resync.
	ErrIndexDivergence = errors.New("index divergence")
)

const (
	minPriority = 1
	maxPriority = 5
)

// WorkspaceService owns the derived in-memory state (prefix index, task
// scheduler, assignment index, history log) and keeps it consistent with the
// persistent store. One mutex is held across each persist+reconcile pair so a
// concurrent command surface cannot observe a half-applied operation.
type WorkspaceService struct {
	repos repository.Set
	log   zerolog.Logger

	mu        sync.RWMutex
	trie      *index.Trie
	scheduler *index.Scheduler
	assigns   *index.Assignments
	history   *history.Log
	divergent bool
}

// NewWorkspaceService creates a WorkspaceService with empty indexes. Call
// Warmup before serving to populate them from the store.
func NewWorkspaceService(repos repository.Set, historyCap int, log zerolog.Logger) *WorkspaceService {
	return &WorkspaceService{
		repos:     repos,
		log:       log,
		trie:      index.NewTrie(),
		scheduler: index.NewScheduler(),
		assigns:   index.NewAssignments(),
		history:   history.NewLog(historyCap),
	}
}

// AddEmployeeInput represents input for adding an employee.
type AddEmployeeInput struct {
	Name  string
	Email string
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// CreateTaskInput represents input for creating a task. A DueEpoch of zero
// means the task has no due date.
type CreateTaskInput struct {
	Title    string
	Details  string
	Priority int
	DueEpoch int64
}

// Warmup populates the indexes from a full store scan. Must run before the
// service accepts operations.
func (s *WorkspaceService) Warmup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reloadIndexes(ctx); err != nil {
		return storeUnavailable(err)
	}
	s.log.Info().
		Int("trie_nodes", s.trie.Len()).
		Int("tasks", s.scheduler.Len()).
		Msg("in-memory indexes loaded from store")
	return nil
}

// Resync rebuilds every index from the store on demand and clears the
// divergence flag. This is the recovery path after a reconcile failure.
func (s *WorkspaceService) Resync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.reloadIndexes(ctx); err != nil {
		return storeUnavailable(err)
	}
	s.divergent = false
	s.log.Info().Msg("indexes resynchronized from store")
	return nil
}

// Divergent reports whether a reconcile failure left the indexes possibly
// stale relative to the store.
func (s *WorkspaceService) Divergent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.divergent
}

// AddEmployee persists a new employee, then indexes the name and initializes
// an empty assignment list.
func (s *WorkspaceService) AddEmployee(ctx context.Context, input AddEmployeeInput) (*models.Employee, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, ErrEmailRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employee := &models.Employee{Name: name, Email: strings.TrimSpace(input.Email)}
	if err := s.repos.Employees.Create(ctx, employee); err != nil {
		return nil, storeUnavailable(err)
	}

	s.trie.Insert(employee.Name, employee.ID)
	s.assigns.Track(employee.ID)
	s.history.Record(fmt.Sprintf("Added employee: %s (%s)", employee.Name, employee.ID))
	return employee, nil
}

// ListEmployees returns every persisted employee.
func (s *WorkspaceService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repos.Employees.FindAll(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	return employees, nil
}

// SearchEmployees looks the prefix up in the trie, then re-reads each matched
// employee from the store so displayed fields are never stale. Identifiers
// whose records have vanished are skipped.
func (s *WorkspaceService) SearchEmployees(ctx context.Context, prefix string) ([]models.Employee, error) {
	s.mu.RLock()
	ids := s.trie.SearchPrefix(strings.TrimSpace(prefix))
	s.mu.RUnlock()

	employees := make([]models.Employee, 0, len(ids))
	for _, id := range ids {
		employee, err := s.repos.Employees.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, storeUnavailable(err)
		}
		employees = append(employees, *employee)
	}
	return employees, nil
}

// CreateProject persists a new project. Projects are pass-through records,
// not indexed in memory.
func (s *WorkspaceService) CreateProject(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := &models.Project{Name: name, Description: input.Description}
	if err := s.repos.Projects.Create(ctx, project); err != nil {
		return nil, storeUnavailable(err)
	}

	s.history.Record(fmt.Sprintf("Created project: %s (%s)", project.Name, project.ID))
	return project, nil
}

// ListProjects returns every persisted project.
func (s *WorkspaceService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repos.Projects.FindAll(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	return projects, nil
}

// CreateTask persists a new open task and inserts its snapshot into the
// scheduler. First insertion changes no ordering fields of existing tasks,
// so no rebuild is needed.
func (s *WorkspaceService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.Priority < minPriority || input.Priority > maxPriority {
		return nil, ErrInvalidPriority
	}
	if input.DueEpoch < 0 {
		return nil, ErrInvalidDueEpoch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := &models.Task{
		Title:    strings.TrimSpace(input.Title),
		Details:  input.Details,
		Priority: input.Priority,
		DueEpoch: models.DueEpochOrNone(input.DueEpoch),
		Status:   models.TaskStatusOpen,
	}
	if err := s.repos.Tasks.Create(ctx, task); err != nil {
		return nil, storeUnavailable(err)
	}

	s.scheduler.Insert(*task)
	s.history.Record(fmt.Sprintf("Created task: %s (%s)", task.Title, task.ID))
	return task, nil
}

// ListTasks returns the scheduler snapshot: open and completed tasks ordered
// by descending priority, then ascending due time.
func (s *WorkspaceService) ListTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scheduler.Snapshot()
}

// AssignTask sets the task's persisted assignee, updates the assignment
// index and rebuilds the scheduler from the store. Both the task and the
// employee must already exist; a lookup failure leaves all state untouched.
func (s *WorkspaceService) AssignTask(ctx context.Context, taskID, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}
	if _, err := s.repos.Employees.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return storeUnavailable(err)
	}

	fields := map[string]interface{}{repository.FieldAssignedToID: employeeID}
	if err := s.repos.Tasks.UpdateFields(ctx, taskID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return storeUnavailable(err)
	}

	// Reassignment moves the task: the previous assignee's list must not keep
	// referencing a task whose persisted assignee changed.
	if task.AssignedToID != "" && task.AssignedToID != employeeID {
		s.assigns.UnassignOnComplete(task.AssignedToID, taskID)
	}
	s.assigns.Assign(employeeID, taskID)
	if err := s.rebuildScheduler(ctx); err != nil {
		return err
	}

	s.history.Record(fmt.Sprintf("Assigned task %s to employee %s", taskID, employeeID))
	return nil
}

// CompleteTask persists the status change and completion time, drops the
// assignment from the index and rebuilds the scheduler from the store.
func (s *WorkspaceService) CompleteTask(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}

	completedAt := time.Now()
	fields := map[string]interface{}{
		repository.FieldStatus:      models.TaskStatusCompleted,
		repository.FieldCompletedAt: completedAt,
	}
	if err := s.repos.Tasks.UpdateFields(ctx, taskID, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return storeUnavailable(err)
	}

	if task.AssignedToID != "" {
		s.assigns.UnassignOnComplete(task.AssignedToID, taskID)
	}
	if err := s.rebuildScheduler(ctx); err != nil {
		return err
	}

	s.history.Record(fmt.Sprintf("Completed task: %s", taskID))
	return nil
}

// AssignedTasks returns the task ids currently assigned to an employee. An
// unknown employee id yields an empty list.
func (s *WorkspaceService) AssignedTasks(employeeID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.assigns.ListFor(employeeID)
}

// History returns up to n most recent history entries, newest first.
func (s *WorkspaceService) History(n int) []history.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.history.Recent(n)
}

func (s *WorkspaceService) findTask(ctx context.Context, taskID string) (*models.Task, error) {
	task, err := s.repos.Tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storeUnavailable(err)
	}
	return task, nil
}

// rebuildScheduler re-derives the scheduler from a full store scan. A failure
// here happens after a successful persist, so the write stands while the
// scheduler may be stale: the divergence is flagged and surfaced for a
// resync, never swallowed. Callers must hold the write lock.
func (s *WorkspaceService) rebuildScheduler(ctx context.Context) error {
	tasks, err := s.repos.Tasks.FindAll(ctx)
	if err != nil {
		s.divergent = true
		s.log.Error().Err(err).Msg("scheduler rebuild failed after store write; indexes diverged, resync required")
		return fmt.Errorf("%w: %s", ErrIndexDivergence, err)
	}
	s.scheduler.Rebuild(tasks)
	return nil
}

// reloadIndexes rebuilds every index from the store. Callers must hold the
// write lock.
func (s *WorkspaceService) reloadIndexes(ctx context.Context) error {
	employees, err := s.repos.Employees.FindAll(ctx)
	if err != nil {
		return err
	}
	tasks, err := s.repos.Tasks.FindAll(ctx)
	if err != nil {
		return err
	}

	trie := index.NewTrie()
	assigns := index.NewAssignments()
	assigns.Rebuild(tasks)
	for _, e := range employees {
		if e.Name != "" {
			trie.Insert(e.Name, e.ID)
		}
		assigns.Track(e.ID)
	}

	s.trie = trie
	s.assigns = assigns
	s.scheduler.Rebuild(tasks)
	return nil
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
}
