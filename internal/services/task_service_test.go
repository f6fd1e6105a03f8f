package services

import (
	"context"
	"errors"
	"testing"

	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
)

func TestTaskService_CreateSeedsHistory(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	service := f.taskService()

	ctx := context.Background()
	task, err := service.Create(ctx, creator, dto.CreateTaskRequest{
		ProjectID: project.ID,
		Title:     "Draft landing page",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Status != constants.StatusPending {
		t.Fatalf("expected status %q, got %q", constants.StatusPending, task.Status)
	}

	entries, err := f.history.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("history query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 seeding history entry, got %d", len(entries))
	}
	if entries[0].OldStatus != constants.StatusPending || entries[0].NewStatus != constants.StatusPending {
		t.Fatalf("seeding entry should record %s -> %s, got %s -> %s",
			constants.StatusPending, constants.StatusPending, entries[0].OldStatus, entries[0].NewStatus)
	}
	if entries[0].ChangedBy != creator.UserID {
		t.Fatalf("seeding entry should be attributed to the creator")
	}
}

func TestTaskService_CreateRequiresProjectCreator(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	outsider := f.createUser(t, "outsider@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)

	_, err := f.taskService().Create(context.Background(), outsider, dto.CreateTaskRequest{
		ProjectID: project.ID,
		Title:     "Sneaky task",
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestTaskService_CreateRejectsUnknownAssignee(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)

	_, err := f.taskService().Create(context.Background(), creator, dto.CreateTaskRequest{
		ProjectID:  project.ID,
		Title:      "Orphan task",
		AssignedTo: strPtr("no-such-user"),
	})
	if !errors.Is(err, apperrors.ErrAssigneeNotFound) {
		t.Fatalf("expected assignee-not-found, got %v", err)
	}
}

func TestTaskService_AssigneeStatusChangeAppendsHistory(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))
	service := f.taskService()

	ctx := context.Background()
	updated, err := service.Update(ctx, assignee, task.ID, dto.UpdateTaskRequest{
		Status: strPtr("In Progress"),
	})
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if updated.Status != "In Progress" {
		t.Fatalf("expected status In Progress, got %q", updated.Status)
	}

	entries, err := f.history.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("history query failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected seeding entry plus one change, got %d entries", len(entries))
	}
	last := entries[len(entries)-1]
	if last.OldStatus != constants.StatusPending || last.NewStatus != "In Progress" {
		t.Fatalf("expected %s -> In Progress, got %s -> %s",
			constants.StatusPending, last.OldStatus, last.NewStatus)
	}
	if last.ChangedBy != assignee.UserID {
		t.Fatalf("history entry should be attributed to the assignee")
	}
}

func TestTaskService_CreatorCannotChangeStatus(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))

	_, err := f.taskService().Update(context.Background(), creator, task.ID, dto.UpdateTaskRequest{
		Status: strPtr("Completed"),
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for creator status change, got %v", err)
	}
}

func TestTaskService_AssigneeCannotEditDetails(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))

	_, err := f.taskService().Update(context.Background(), assignee, task.ID, dto.UpdateTaskRequest{
		Title: strPtr("Renamed by assignee"),
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for assignee detail edit, got %v", err)
	}
}

func TestTaskService_StatusPatchDropsDetailFields(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))
	service := f.taskService()

	ctx := context.Background()
	updated, err := service.Update(ctx, assignee, task.ID, dto.UpdateTaskRequest{
		Status: strPtr("In Progress"),
		Title:  strPtr("Should be ignored"),
	})
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if updated.Status != "In Progress" {
		t.Fatalf("status should be applied, got %q", updated.Status)
	}
	if updated.Title != task.Title {
		t.Fatalf("title should be dropped for a non-creator, got %q", updated.Title)
	}
}

func TestTaskService_CreatorDetailEditLeavesHistoryAlone(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, nil)
	service := f.taskService()

	ctx := context.Background()
	updated, err := service.Update(ctx, creator, task.ID, dto.UpdateTaskRequest{
		Title:       strPtr("Draft landing page v2"),
		Description: strPtr("Now with more detail"),
	})
	if err != nil {
		t.Fatalf("detail update failed: %v", err)
	}
	if updated.Title != "Draft landing page v2" {
		t.Fatalf("title not applied, got %q", updated.Title)
	}

	entries, err := f.history.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("history query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("detail edits must not append history, got %d entries", len(entries))
	}
}

func TestTaskService_EmptyPatchRejected(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, nil)

	_, err := f.taskService().Update(context.Background(), creator, task.ID, dto.UpdateTaskRequest{})
	if !errors.Is(err, apperrors.ErrNoFieldsToUpdate) {
		t.Fatalf("expected no-fields error, got %v", err)
	}
}

func TestTaskService_OutsiderUpdateRepeatedlyForbidden(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	outsider := f.createUser(t, "outsider@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, nil)
	service := f.taskService()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := service.Update(ctx, outsider, task.ID, dto.UpdateTaskRequest{
			Status: strPtr("Completed"),
		})
		if !errors.Is(err, apperrors.ErrForbidden) {
			t.Fatalf("attempt %d: expected forbidden, got %v", i+1, err)
		}
	}

	entries, err := f.history.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("history query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("denied attempts must not append history, got %d entries", len(entries))
	}
}

func TestTaskService_GetVisibility(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	outsider := f.createUser(t, "outsider@example.com", constants.RoleEmployee)
	admin := f.createUser(t, "admin@example.com", constants.RoleAdmin)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))
	service := f.taskService()

	ctx := context.Background()
	if _, err := service.Get(ctx, creator, task.ID); err != nil {
		t.Fatalf("creator read failed: %v", err)
	}
	if _, err := service.Get(ctx, assignee, task.ID); err != nil {
		t.Fatalf("assignee read failed: %v", err)
	}
	if _, err := service.Get(ctx, admin, task.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if _, err := service.Get(ctx, outsider, task.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for outsider read, got %v", err)
	}
}

func TestTaskService_DeleteCreatorOnly(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))
	service := f.taskService()

	ctx := context.Background()
	if err := service.Delete(ctx, assignee, task.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for assignee delete, got %v", err)
	}
	if err := service.Delete(ctx, creator, task.ID); err != nil {
		t.Fatalf("creator delete failed: %v", err)
	}
	if _, err := service.Get(ctx, creator, task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}
