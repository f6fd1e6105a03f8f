package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// ErrOptimisticLock is returned when a conditional update finds that the
// task's version moved under it.
var ErrOptimisticLock = errors.New("optimistic locking conflict")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateWithHistory inserts the task and its seeding history entry
// (old = new = the initial status) in one transaction. Both rows become
// visible together or not at all.
func (r *TaskRepository) CreateWithHistory(ctx context.Context, task *model.Task) (*model.TaskHistory, error) {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	task.Version = 1
	task.CreatedAt = time.Now().UTC()

	seed := &model.TaskHistory{
		ID:        uuid.NewString(),
		TaskID:    task.ID,
		ChangedBy: task.CreatedBy,
		OldStatus: task.Status,
		NewStatus: task.Status,
		ChangedAt: task.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		return tx.Create(seed).Error
	})
	if err != nil {
		return nil, err
	}
	return seed, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at asc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("assigned_to = ? OR created_by = ?", userID, userID).
		Order("created_at asc").Find(&tasks).Error
	return tasks, err
}

// Update applies the accepted field patch as a conditional write keyed
// on the version the caller read. When history is non-nil (an accepted
// status change) the patch and the history row commit in one
// transaction; a concurrent writer makes the whole unit fail with
// ErrOptimisticLock instead of silently losing an update or
// double-writing history.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, fields map[string]interface{}, history *model.TaskHistory) error {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["version"] = gorm.Expr("version + 1")

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ? AND version = ?", task.ID, task.Version).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOptimisticLock
		}
		if history != nil {
			if history.ID == "" {
				history.ID = uuid.NewString()
			}
			if err := tx.Create(history).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	task.Version++
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}
