package repository

import (
	"context"
	"errors"

	"github.com/kyamane/remote-work-api/internal/models"
	"gorm.io/gorm"
)

// gormTaskColumns translates canonical update field keys to task columns.
var gormTaskColumns = map[string]string{
	FieldAssignedToID: "assigned_to_id",
	FieldStatus:       "status",
	FieldCompletedAt:  "completed_at",
}

// GormTaskRepository is a GORM implementation of TaskRepository.
type GormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new TaskRepository backed by GORM.
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create persists a new task.
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by identifier.
func (r *GormTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindAll returns every persisted task.
func (r *GormTaskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Order("created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateFields applies a partial field update to a task.
func (r *GormTaskRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		column, ok := gormTaskColumns[key]
		if !ok {
			return errors.New("unknown task field: " + key)
		}
		updates[column] = value
	}

	result := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
