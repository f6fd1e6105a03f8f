package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/authz"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

type NotificationService struct {
	notifications *repository.NotificationRepository
}

func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) Create(ctx context.Context, actor authz.Identity, req dto.CreateNotificationRequest) (*model.Notification, error) {
	if err := authz.Authorize(actor, authz.ResourceNotification, authz.ActionCreate, authz.Subject{}); err != nil {
		return nil, err
	}
	return s.notifications.Create(ctx, req.UserID, req.Message)
}

func (s *NotificationService) ListForUser(ctx context.Context, actor authz.Identity, userID string) ([]model.Notification, error) {
	if err := authz.Authorize(actor, authz.ResourceNotification, authz.ActionRead, authz.Subject{OwnerID: userID}); err != nil {
		return nil, err
	}
	return s.notifications.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, actor authz.Identity, notificationID string) error {
	notification, err := s.findNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ResourceNotification, authz.ActionUpdate, authz.Subject{OwnerID: notification.UserID}); err != nil {
		return err
	}
	return s.notifications.MarkRead(ctx, notification.ID)
}

func (s *NotificationService) Delete(ctx context.Context, actor authz.Identity, notificationID string) error {
	notification, err := s.findNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if err := authz.Authorize(actor, authz.ResourceNotification, authz.ActionDelete, authz.Subject{OwnerID: notification.UserID}); err != nil {
		return err
	}
	return s.notifications.Delete(ctx, notification.ID)
}

func (s *NotificationService) findNotification(ctx context.Context, id string) (*model.Notification, error) {
	notification, err := s.notifications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, err
	}
	return notification, nil
}
