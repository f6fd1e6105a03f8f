package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/authz"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/pkg/logger"
)

type AchievementService struct {
	achievements *repository.AchievementRepository
	milestones   *repository.MilestoneRepository
	users        *repository.UserRepository
}

func NewAchievementService(
	achievements *repository.AchievementRepository,
	milestones *repository.MilestoneRepository,
	users *repository.UserRepository,
) *AchievementService {
	return &AchievementService{
		achievements: achievements,
		milestones:   milestones,
		users:        users,
	}
}

// Create is admin-only; the referenced milestone and user must exist.
func (s *AchievementService) Create(ctx context.Context, actor authz.Identity, req dto.CreateAchievementRequest) (*model.UserAchievement, error) {
	if err := authz.Authorize(actor, authz.ResourceAchievement, authz.ActionCreate, authz.Subject{}); err != nil {
		logger.Security.Warn("denied achievement creation", zap.String("actor", actor.UserID))
		return nil, err
	}

	if _, err := s.milestones.FindByID(ctx, req.MilestoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMilestoneNotFound
		}
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	achievement, err := s.achievements.Create(ctx, req.UserID, req.MilestoneID, req.BadgeName, req.PointsEarned)
	if err != nil {
		return nil, err
	}

	logger.Audit.Info("achievement created",
		zap.String("achievement_id", achievement.ID), zap.String("user_id", req.UserID))
	return achievement, nil
}

// ListOwn returns the actor's own achievements only.
func (s *AchievementService) ListOwn(ctx context.Context, actor authz.Identity) ([]model.UserAchievement, error) {
	if err := authz.Authorize(actor, authz.ResourceAchievement, authz.ActionRead, authz.Subject{OwnerID: actor.UserID}); err != nil {
		return nil, err
	}
	return s.achievements.ListByUser(ctx, actor.UserID)
}
