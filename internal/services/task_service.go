package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/authz"
	"taskhive.com/taskhive/internal/cache"
	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/pkg/logger"
)

// TaskService enforces the task lifecycle split: the project creator
// owns detail edits, the assignee owns the status field, and every
// accepted status change appends exactly one history entry.
type TaskService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	cache    *cache.TaskCache
}

func NewTaskService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	taskCache *cache.TaskCache,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		users:    users,
		cache:    taskCache,
	}
}

// Create requires the actor to be the parent project's creator. The new
// task starts as Pending and its seeding history entry
// (old = new = Pending) is written in the same transaction.
func (s *TaskService) Create(ctx context.Context, actor authz.Identity, req dto.CreateTaskRequest) (*model.Task, error) {
	project, err := s.findProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceTask, authz.ActionCreate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied task creation",
			zap.String("actor", actor.UserID), zap.String("project_id", project.ID))
		return nil, err
	}

	if req.AssignedTo != nil {
		if err := s.requireUser(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.DefaultPriority
	}

	task := &model.Task{
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   actor.UserID,
		Status:      constants.StatusPending,
		Priority:    priority,
		DueDate:     req.DueDate,
	}
	if _, err := s.tasks.CreateWithHistory(ctx, task); err != nil {
		return nil, err
	}

	logger.Audit.Info("task created",
		zap.String("task_id", task.ID), zap.String("project_id", project.ID))
	return task, nil
}

// Update applies a partial patch under the two-actor rule. A status
// change (present and different from the stored value) is assignee-only;
// everything else is creator-only. Non-status fields in a status patch
// are silently dropped unless the actor is also the creator, matching
// how detail fields are filtered per actor class. The accepted patch is
// written as a version-keyed conditional update, with the history row in
// the same transaction when the status changed.
func (s *TaskService) Update(ctx context.Context, actor authz.Identity, taskID string, req dto.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	project, err := s.findProject(ctx, task.ProjectID)
	if err != nil {
		return nil, err
	}

	isCreator := project.CreatedBy == actor.UserID
	isAssignee := task.AssignedTo != nil && *task.AssignedTo == actor.UserID
	statusChange := req.Status != nil && *req.Status != task.Status

	subject := authz.Subject{CreatorID: project.CreatedBy, AssigneeID: task.AssignedTo}
	if statusChange {
		if err := authz.Authorize(actor, authz.ResourceTask, authz.ActionUpdateStatus, subject); err != nil {
			logger.Security.Warn("denied status update",
				zap.String("actor", actor.UserID), zap.String("task_id", taskID))
			return nil, err
		}
	} else {
		if err := authz.Authorize(actor, authz.ResourceTask, authz.ActionUpdateDetails, subject); err != nil {
			logger.Security.Warn("denied detail update",
				zap.String("actor", actor.UserID), zap.String("task_id", taskID))
			return nil, err
		}
	}

	fields := map[string]interface{}{}
	if isCreator {
		if req.Title != nil {
			fields["title"] = *req.Title
		}
		if req.Description != nil {
			fields["description"] = *req.Description
		}
		if req.AssignedTo != nil {
			if err := s.requireUser(ctx, *req.AssignedTo); err != nil {
				return nil, err
			}
			fields["assigned_to"] = *req.AssignedTo
		}
		if req.Priority != nil {
			fields["priority"] = *req.Priority
		}
		if req.DueDate != nil {
			fields["due_date"] = *req.DueDate
		}
	}
	if statusChange && isAssignee {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	var history *model.TaskHistory
	if statusChange {
		history = &model.TaskHistory{
			TaskID:    task.ID,
			ChangedBy: actor.UserID,
			OldStatus: task.Status,
			NewStatus: *req.Status,
			ChangedAt: time.Now().UTC(),
		}
	}

	if err := s.tasks.Update(ctx, task, fields, history); err != nil {
		if errors.Is(err, repository.ErrOptimisticLock) {
			return nil, apperrors.ErrTaskConflict
		}
		return nil, err
	}
	s.cache.Invalidate(ctx, task.ID)

	if statusChange {
		logger.Audit.Info("task status changed",
			zap.String("task_id", task.ID),
			zap.String("old_status", history.OldStatus),
			zap.String("new_status", history.NewStatus),
			zap.String("changed_by", actor.UserID))
	}

	updated, err := s.tasks.FindByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TaskService) Get(ctx context.Context, actor authz.Identity, taskID string) (*model.Task, error) {
	if task := s.cache.Get(ctx, taskID); task != nil {
		if err := s.authorizeRead(ctx, actor, task); err != nil {
			return nil, err
		}
		return task, nil
	}

	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRead(ctx, actor, task); err != nil {
		return nil, err
	}

	s.cache.Set(ctx, task)
	return task, nil
}

// ListByProject returns the project's tasks for admins and members.
func (s *TaskService) ListByProject(ctx context.Context, actor authz.Identity, projectID string) ([]model.Task, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	member, err := s.projects.IsMember(ctx, projectID, actor.UserID)
	if err != nil {
		return nil, err
	}
	subject := authz.Subject{CreatorID: project.CreatedBy, Member: member}
	if err := authz.Authorize(actor, authz.ResourceTask, authz.ActionRead, subject); err != nil {
		return nil, err
	}

	return s.tasks.ListByProject(ctx, projectID)
}

// ListByUser returns the tasks a user is referenced by. Non-admins may
// only ask about themselves.
func (s *TaskService) ListByUser(ctx context.Context, actor authz.Identity, userID string) ([]model.Task, error) {
	if userID == "" {
		userID = actor.UserID
	}
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionRead, authz.Subject{OwnerID: userID}); err != nil {
		return nil, err
	}
	return s.tasks.ListByUser(ctx, userID)
}

func (s *TaskService) Delete(ctx context.Context, actor authz.Identity, taskID string) error {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return err
	}
	project, err := s.findProject(ctx, task.ProjectID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceTask, authz.ActionDelete, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied task deletion",
			zap.String("actor", actor.UserID), zap.String("task_id", taskID))
		return err
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, taskID)

	logger.Audit.Info("task deleted", zap.String("task_id", taskID))
	return nil
}

func (s *TaskService) authorizeRead(ctx context.Context, actor authz.Identity, task *model.Task) error {
	project, err := s.findProject(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	member, err := s.projects.IsMember(ctx, task.ProjectID, actor.UserID)
	if err != nil {
		return err
	}
	return authz.Authorize(actor, authz.ResourceTask, authz.ActionRead, authz.Subject{
		CreatorID:  project.CreatedBy,
		AssigneeID: task.AssignedTo,
		Member:     member,
	})
}

func (s *TaskService) findTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *TaskService) findProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *TaskService) requireUser(ctx context.Context, userID string) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssigneeNotFound
		}
		return err
	}
	return nil
}
