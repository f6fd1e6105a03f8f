package repository

import (
	"context"

	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type TaskHistoryRepository struct {
	db *gorm.DB
}

func NewTaskHistoryRepository(db *gorm.DB) *TaskHistoryRepository {
	return &TaskHistoryRepository{db: db}
}

// HistoryFilter narrows a history query. ProjectIn is the membership
// scope: nil means unrestricted (admin), a slice restricts rows to tasks
// under those projects.
type HistoryFilter struct {
	UserID    string
	ProjectID string
	TaskID    string
	ProjectIn []string
}

func (r *TaskHistoryRepository) Query(ctx context.Context, filter HistoryFilter) ([]model.TaskHistory, error) {
	if filter.ProjectIn != nil && len(filter.ProjectIn) == 0 {
		return []model.TaskHistory{}, nil
	}

	query := r.db.WithContext(ctx).Model(&model.TaskHistory{}).
		Joins("JOIN tasks ON tasks.id = task_histories.task_id")

	if filter.UserID != "" {
		query = query.Where("task_histories.changed_by = ?", filter.UserID)
	}
	if filter.ProjectID != "" {
		query = query.Where("tasks.project_id = ?", filter.ProjectID)
	}
	if filter.TaskID != "" {
		query = query.Where("task_histories.task_id = ?", filter.TaskID)
	}
	if filter.ProjectIn != nil {
		query = query.Where("tasks.project_id IN ?", filter.ProjectIn)
	}

	entries := []model.TaskHistory{}
	err := query.Order("task_histories.changed_at asc").Find(&entries).Error
	return entries, err
}

func (r *TaskHistoryRepository) ListByTask(ctx context.Context, taskID string) ([]model.TaskHistory, error) {
	entries := []model.TaskHistory{}
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("changed_at asc").Find(&entries).Error
	return entries, err
}
