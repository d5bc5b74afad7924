package index

import (
	"cmp"
	"slices"

	"github.com/kyamane/remote-work-api/internal/models"
)

// Scheduler keeps snapshots of persisted tasks ordered by descending priority
// and ascending due epoch. It holds copies, not live records: after any store
// mutation that touches ordering fields or status it must be rebuilt from a
// full store scan, which keeps the snapshot canonical at the cost of the
// rescan.
type Scheduler struct {
	tasks []models.Task
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Rebuild discards the current contents and reloads from a full snapshot of
// persisted tasks.
func (s *Scheduler) Rebuild(tasks []models.Task) {
	s.tasks = slices.Clone(tasks)
}

// Insert adds a single task snapshot without a rebuild. Only safe for first
// insertion, when no ordering fields of existing tasks have changed.
func (s *Scheduler) Insert(task models.Task) {
	s.tasks = append(s.tasks, task)
}

// Snapshot returns an ordered copy of the scheduled tasks: higher priority
// first, earlier due time first within a priority band, "no due date" last.
// Ties keep their relative order within a single call.
func (s *Scheduler) Snapshot() []models.Task {
	out := slices.Clone(s.tasks)
	slices.SortStableFunc(out, func(a, b models.Task) int {
		if a.Priority != b.Priority {
			return cmp.Compare(b.Priority, a.Priority)
		}
		return cmp.Compare(a.DueEpoch, b.DueEpoch)
	})
	return out
}

// Len returns the number of tasks currently held.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}
