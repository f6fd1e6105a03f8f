package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/authz"
	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/pkg/logger"
)

type ProjectService struct {
	projects *repository.ProjectRepository
}

func NewProjectService(projects *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// Create makes the actor the project's creator for its whole lifetime;
// creator authority is never transferable.
func (s *ProjectService) Create(ctx context.Context, actor authz.Identity, req dto.CreateProjectRequest) (*model.Project, error) {
	if err := authz.Authorize(actor, authz.ResourceProject, authz.ActionCreate, authz.Subject{}); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = constants.DefaultPriority
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   actor.UserID,
		DueDate:     req.DueDate,
		Priority:    priority,
		Category:    req.Category,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.Audit.Info("project created",
		zap.String("project_id", project.ID), zap.String("created_by", actor.UserID))
	return project, nil
}

// List returns the actor's own projects, or every project for admins.
func (s *ProjectService) List(ctx context.Context, actor authz.Identity) ([]model.Project, error) {
	if actor.Role.IsAdmin() {
		return s.projects.List(ctx)
	}
	return s.projects.ListByCreator(ctx, actor.UserID)
}

func (s *ProjectService) Get(ctx context.Context, actor authz.Identity, projectID string) (*model.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceProject, authz.ActionRead, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, actor authz.Identity, projectID string, req dto.UpdateProjectRequest) (*model.Project, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceProject, authz.ActionUpdate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied project update",
			zap.String("actor", actor.UserID), zap.String("project_id", projectID))
		return nil, err
	}

	project.Name = req.Name
	project.Description = req.Description
	project.DueDate = req.DueDate
	project.Category = req.Category
	project.Priority = req.Priority
	if project.Priority == "" {
		project.Priority = constants.DefaultPriority
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	logger.Audit.Info("project updated", zap.String("project_id", projectID))
	return project, nil
}

// Delete removes the project row only; tasks, boards and milestones
// under it are left in place.
func (s *ProjectService) Delete(ctx context.Context, actor authz.Identity, projectID string) error {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceProject, authz.ActionDelete, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied project deletion",
			zap.String("actor", actor.UserID), zap.String("project_id", projectID))
		return err
	}

	if err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}

	logger.Audit.Info("project deleted", zap.String("project_id", projectID))
	return nil
}

// Members lists the users associated with the project. Admins and
// members may look.
func (s *ProjectService) Members(ctx context.Context, actor authz.Identity, projectID string) ([]model.User, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	member, err := s.projects.IsMember(ctx, projectID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := authz.Authorize(actor, authz.ResourceProject, authz.ActionList, authz.Subject{CreatorID: project.CreatedBy, Member: member}); err != nil {
		return nil, err
	}

	return s.projects.Members(ctx, projectID)
}

// ListForUser returns the projects a user created. Non-admins may only
// ask about themselves.
func (s *ProjectService) ListForUser(ctx context.Context, actor authz.Identity, userID string) ([]model.Project, error) {
	if userID == "" {
		userID = actor.UserID
	}
	if err := authz.Authorize(actor, authz.ResourceUser, authz.ActionRead, authz.Subject{OwnerID: userID}); err != nil {
		return nil, err
	}
	return s.projects.ListByCreator(ctx, userID)
}

func (s *ProjectService) findProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}
