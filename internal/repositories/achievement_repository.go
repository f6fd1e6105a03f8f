package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) Create(ctx context.Context, userID, milestoneID, badgeName string, points int) (*model.UserAchievement, error) {
	achievement := &model.UserAchievement{
		ID:           uuid.NewString(),
		UserID:       userID,
		MilestoneID:  milestoneID,
		BadgeName:    badgeName,
		PointsEarned: points,
		AchievedAt:   time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(achievement).Error; err != nil {
		return nil, err
	}
	return achievement, nil
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID string) ([]model.UserAchievement, error) {
	achievements := []model.UserAchievement{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("achieved_at desc").Find(&achievements).Error
	return achievements, err
}
