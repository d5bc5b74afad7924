package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyamane/remote-work-api/internal/models"
)

func task(id string, priority int, dueEpoch int64) models.Task {
	return models.Task{ID: id, Title: id, Priority: priority, DueEpoch: dueEpoch, Status: models.TaskStatusOpen}
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestScheduler_OrdersByPriorityThenDueTime(t *testing.T) {
	s := NewScheduler()
	s.Insert(task("low-late", 1, 2000))
	s.Insert(task("high", 5, 1700000000))
	s.Insert(task("low-early", 1, 1000))
	s.Insert(task("mid", 3, models.NoDueDate))

	assert.Equal(t, []string{"high", "mid", "low-early", "low-late"}, ids(s.Snapshot()))
}

func TestScheduler_NoDueDateSortsLastWithinPriority(t *testing.T) {
	s := NewScheduler()
	s.Insert(task("none", 3, models.NoDueDate))
	s.Insert(task("due", 3, 1700000000))

	assert.Equal(t, []string{"due", "none"}, ids(s.Snapshot()))
}

func TestScheduler_TiesAreStableWithinACall(t *testing.T) {
	s := NewScheduler()
	s.Insert(task("first", 2, 500))
	s.Insert(task("second", 2, 500))
	s.Insert(task("third", 2, 500))

	want := []string{"first", "second", "third"}
	assert.Equal(t, want, ids(s.Snapshot()))
	assert.Equal(t, want, ids(s.Snapshot()))
}

func TestScheduler_RebuildReplacesContents(t *testing.T) {
	s := NewScheduler()
	s.Insert(task("stale", 5, 1))

	s.Rebuild([]models.Task{task("a", 1, 10), task("b", 4, 20)})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"b", "a"}, ids(s.Snapshot()))
}

func TestScheduler_SnapshotIsACopy(t *testing.T) {
	s := NewScheduler()
	s.Insert(task("only", 1, 1))

	snap := s.Snapshot()
	snap[0].Title = "mutated"

	assert.Equal(t, "only", s.Snapshot()[0].Title)
}

func TestScheduler_KeepsCompletedTasks(t *testing.T) {
	done := task("done", 2, 100)
	done.Status = models.TaskStatusCompleted

	s := NewScheduler()
	s.Rebuild([]models.Task{done, task("open", 1, 50)})

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, models.TaskStatusCompleted, snap[0].Status)
}
