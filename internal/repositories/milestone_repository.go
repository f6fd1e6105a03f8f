package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, projectID, name, description string) (*model.Milestone, error) {
	milestone := &model.Milestone{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(milestone).Error; err != nil {
		return nil, err
	}
	return milestone, nil
}

func (r *MilestoneRepository) FindByID(ctx context.Context, id string) (*model.Milestone, error) {
	var milestone model.Milestone
	err := r.db.WithContext(ctx).First(&milestone, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *MilestoneRepository) ListByProject(ctx context.Context, projectID string) ([]model.Milestone, error) {
	milestones := []model.Milestone{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at asc").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) ListByProjects(ctx context.Context, projectIDs []string) ([]model.Milestone, error) {
	milestones := []model.Milestone{}
	if len(projectIDs) == 0 {
		return milestones, nil
	}
	err := r.db.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("created_at asc").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepository) Update(ctx context.Context, id, name, description string) error {
	return r.db.WithContext(ctx).Model(&model.Milestone{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        name,
			"description": description,
		}).Error
}

func (r *MilestoneRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Milestone{}, "id = ?", id).Error
}
