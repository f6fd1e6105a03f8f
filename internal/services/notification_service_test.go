package services

import (
	"context"
	"errors"
	"testing"

	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	repository "taskhive.com/taskhive/internal/repositories"
)

func TestNotificationService_SelfScoped(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice@example.com", constants.RoleEmployee)
	bob := f.createUser(t, "bob@example.com", constants.RoleEmployee)
	service := NewNotificationService(repository.NewNotificationRepository(f.db))

	ctx := context.Background()
	notification, err := service.Create(ctx, bob, dto.CreateNotificationRequest{
		UserID:  alice.UserID,
		Message: "You were assigned a task",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if notification.IsRead {
		t.Fatal("new notifications must start unread")
	}

	if _, err := service.ListForUser(ctx, bob, alice.UserID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign inbox, got %v", err)
	}

	list, err := service.ListForUser(ctx, alice, alice.UserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(list))
	}

	if err := service.MarkRead(ctx, bob, notification.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for foreign mark-read, got %v", err)
	}
	if err := service.MarkRead(ctx, alice, notification.ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	list, err = service.ListForUser(ctx, alice, alice.UserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !list[0].IsRead {
		t.Fatal("notification should be marked read")
	}

	if err := service.Delete(ctx, alice, notification.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := service.Delete(ctx, alice, notification.ID); !errors.Is(err, apperrors.ErrNotificationNotFound) {
		t.Fatalf("expected not-found on repeat delete, got %v", err)
	}
}
