package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	project.CreatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) ListByCreator(ctx context.Context, userID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at desc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":        project.Name,
			"description": project.Description,
			"due_date":    project.DueDate,
			"priority":    project.Priority,
			"category":    project.Category,
		}).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id).Error
}

// IsMember reports whether the user is referenced by at least one task
// under the project, as assignee or as task creator. Membership is
// derived, never stored.
func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("project_id = ? AND (assigned_to = ? OR created_by = ?)", projectID, userID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MemberProjectIDs returns every project the user belongs to, either as
// creator or through a task reference. Used to scope history and
// milestone queries for non-admins.
func (r *ProjectRepository) MemberProjectIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Distinct("project_id").
		Where("assigned_to = ? OR created_by = ?", userID, userID).
		Pluck("project_id", &ids).Error
	if err != nil {
		return nil, err
	}

	var created []string
	err = r.db.WithContext(ctx).Model(&model.Project{}).
		Where("created_by = ?", userID).
		Pluck("id", &created).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	for _, id := range created {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
			seen[id] = struct{}{}
		}
	}
	return ids, nil
}

// Members lists the users referenced by the project's tasks plus the
// project creator.
func (r *ProjectRepository) Members(ctx context.Context, projectID string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where(`id IN (?)`, r.db.Model(&model.Task{}).
			Select("assigned_to").
			Where("project_id = ? AND assigned_to IS NOT NULL", projectID)).
		Or(`id IN (?)`, r.db.Model(&model.Task{}).
			Select("created_by").
			Where("project_id = ?", projectID)).
		Or(`id IN (?)`, r.db.Model(&model.Project{}).
			Select("created_by").
			Where("id = ?", projectID)).
		Find(&users).Error
	return users, err
}
