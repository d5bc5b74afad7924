package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kyamane/remote-work-api/internal/models"
)

func TestAssignments_AssignIsIdempotent(t *testing.T) {
	a := NewAssignments()
	a.Assign("emp-1", "task-1")
	a.Assign("emp-1", "task-1")

	assert.Equal(t, []string{"task-1"}, a.ListFor("emp-1"))
}

func TestAssignments_AppendsInOrder(t *testing.T) {
	a := NewAssignments()
	a.Assign("emp-1", "task-1")
	a.Assign("emp-1", "task-2")

	assert.Equal(t, []string{"task-1", "task-2"}, a.ListFor("emp-1"))
}

func TestAssignments_UnknownEmployeeIsEmpty(t *testing.T) {
	a := NewAssignments()

	assert.Empty(t, a.ListFor("nobody"))
}

func TestAssignments_UnassignRemoves(t *testing.T) {
	a := NewAssignments()
	a.Assign("emp-1", "task-1")
	a.Assign("emp-1", "task-2")

	a.UnassignOnComplete("emp-1", "task-1")

	assert.Equal(t, []string{"task-2"}, a.ListFor("emp-1"))
}

func TestAssignments_UnassignIsNoOpWhenAbsent(t *testing.T) {
	a := NewAssignments()
	a.Assign("emp-1", "task-1")

	a.UnassignOnComplete("emp-1", "task-9")
	a.UnassignOnComplete("emp-2", "task-1")

	assert.Equal(t, []string{"task-1"}, a.ListFor("emp-1"))
}

func TestAssignments_TrackCreatesEmptyList(t *testing.T) {
	a := NewAssignments()
	a.Assign("emp-1", "task-1")

	a.Track("emp-1")
	a.Track("emp-2")

	assert.Equal(t, []string{"task-1"}, a.ListFor("emp-1"))
	assert.Empty(t, a.ListFor("emp-2"))
}

func TestAssignments_RebuildFromTasks(t *testing.T) {
	completed := models.Task{ID: "task-3", AssignedToID: "emp-1", Status: models.TaskStatusCompleted}
	tasks := []models.Task{
		{ID: "task-1", AssignedToID: "emp-1", Status: models.TaskStatusOpen},
		{ID: "task-2", Status: models.TaskStatusOpen},
		completed,
		{ID: "task-4", AssignedToID: "emp-2", Status: models.TaskStatusOpen},
	}

	a := NewAssignments()
	a.Assign("emp-9", "gone")
	a.Rebuild(tasks)

	assert.Equal(t, []string{"task-1"}, a.ListFor("emp-1"))
	assert.Equal(t, []string{"task-4"}, a.ListFor("emp-2"))
	assert.Empty(t, a.ListFor("emp-9"))
}

func TestAssignments_ListForReturnsACopy(t *testing.T) {
	a := NewAssignments()
	a.Assign("emp-1", "task-1")

	got := a.ListFor("emp-1")
	got[0] = "mutated"

	assert.Equal(t, []string{"task-1"}, a.ListFor("emp-1"))
}
