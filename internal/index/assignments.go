package index

import (
	"slices"

	"github.com/kyamane/remote-work-api/internal/models"
)

// Assignments maps an employee id to the ordered list of task ids assigned to
// them. It is derived state, reconstructible from the persisted assignedToId
// fields; lists are created lazily so an unknown employee id is never an
// error.
type Assignments struct {
	byEmployee map[string][]string
}

func NewAssignments() *Assignments {
	return &Assignments{byEmployee: make(map[string][]string)}
}

// Track registers an employee with an empty list if not already present.
func (a *Assignments) Track(employeeID string) {
	if _, ok := a.byEmployee[employeeID]; !ok {
		a.byEmployee[employeeID] = []string{}
	}
}

// Assign appends taskID to the employee's list unless already recorded.
func (a *Assignments) Assign(employeeID, taskID string) {
	list := a.byEmployee[employeeID]
	if slices.Contains(list, taskID) {
		return
	}
	a.byEmployee[employeeID] = append(list, taskID)
}

// UnassignOnComplete removes taskID from the employee's list. A missing entry
// is a no-op, covering completed tasks that were never assigned.
func (a *Assignments) UnassignOnComplete(employeeID, taskID string) {
	list, ok := a.byEmployee[employeeID]
	if !ok {
		return
	}
	if i := slices.Index(list, taskID); i >= 0 {
		a.byEmployee[employeeID] = slices.Delete(list, i, i+1)
	}
}

// ListFor returns a copy of the employee's current task id list, empty when
// the employee is unindexed.
func (a *Assignments) ListFor(employeeID string) []string {
	list := a.byEmployee[employeeID]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Rebuild rederives the index from persisted task snapshots. Completed tasks
// are excluded: completion removes the assignment.
func (a *Assignments) Rebuild(tasks []models.Task) {
	a.byEmployee = make(map[string][]string)
	for _, t := range tasks {
		if t.AssignedToID == "" || t.Status == models.TaskStatusCompleted {
			continue
		}
		a.Assign(t.AssignedToID, t.ID)
	}
}
