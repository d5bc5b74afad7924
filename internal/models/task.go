package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen      TaskStatus = "OPEN"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// NoDueDate is the sentinel due epoch for tasks without a due date. It sorts
// after every real due time, so ordering stays total without special-casing
// absence.
const NoDueDate int64 = math.MaxInt64

// DueEpochOrNone maps the wire convention "0 means no due date" onto the
// sentinel used for ordering.
func DueEpochOrNone(raw int64) int64 {
	if raw == 0 {
		return NoDueDate
	}
	return raw
}

type Task struct {
	ID           string     `gorm:"type:varchar(36);primarykey" bson:"_id,omitempty" json:"id"`
	Title        string     `gorm:"not null" bson:"title" json:"title"`
	Details      string     `gorm:"type:text" bson:"details" json:"details"`
	Priority     int        `gorm:"not null" bson:"priority" json:"priority"`
	DueEpoch     int64      `gorm:"not null" bson:"dueEpoch" json:"due_epoch"`
	AssignedToID string     `gorm:"type:varchar(36);index" bson:"assignedToId,omitempty" json:"assigned_to_id,omitempty"`
	Status       TaskStatus `gorm:"type:varchar(20);not null;default:'OPEN'" bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"createdAt" json:"created_at"`
	CompletedAt  *time.Time `bson:"completedAt,omitempty" json:"completed_at,omitempty"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// HasDueDate reports whether the task carries a real due time.
func (t Task) HasDueDate() bool {
	return t.DueEpoch != NoDueDate
}
