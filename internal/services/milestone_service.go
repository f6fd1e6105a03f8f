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

type MilestoneService struct {
	milestones *repository.MilestoneRepository
	projects   *repository.ProjectRepository
}

func NewMilestoneService(milestones *repository.MilestoneRepository, projects *repository.ProjectRepository) *MilestoneService {
	return &MilestoneService{milestones: milestones, projects: projects}
}

func (s *MilestoneService) Create(ctx context.Context, actor authz.Identity, req dto.CreateMilestoneRequest) (*model.Milestone, error) {
	project, err := s.findProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceMilestone, authz.ActionCreate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied milestone creation",
			zap.String("actor", actor.UserID), zap.String("project_id", project.ID))
		return nil, err
	}

	milestone, err := s.milestones.Create(ctx, project.ID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	logger.Audit.Info("milestone created",
		zap.String("milestone_id", milestone.ID), zap.String("project_id", project.ID))
	return milestone, nil
}

// ListForUser returns milestones across every project the actor belongs
// to.
func (s *MilestoneService) ListForUser(ctx context.Context, actor authz.Identity) ([]model.Milestone, error) {
	ids, err := s.projects.MemberProjectIDs(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.milestones.ListByProjects(ctx, ids)
}

// ListByProject is readable by admins, the creator, and members; this
// is the one spot where a global Admin gets read access into a project
// they have no relationship with.
func (s *MilestoneService) ListByProject(ctx context.Context, actor authz.Identity, projectID string) ([]model.Milestone, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeRead(ctx, actor, project); err != nil {
		return nil, err
	}

	return s.milestones.ListByProject(ctx, projectID)
}

func (s *MilestoneService) Get(ctx context.Context, actor authz.Identity, milestoneID string) (*model.Milestone, error) {
	milestone, err := s.findMilestone(ctx, milestoneID)
	if err != nil {
		return nil, err
	}
	project, err := s.findProject(ctx, milestone.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeRead(ctx, actor, project); err != nil {
		return nil, err
	}
	return milestone, nil
}

func (s *MilestoneService) Update(ctx context.Context, actor authz.Identity, milestoneID string, req dto.UpdateMilestoneRequest) error {
	milestone, err := s.findMilestone(ctx, milestoneID)
	if err != nil {
		return err
	}
	project, err := s.findProject(ctx, milestone.ProjectID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceMilestone, authz.ActionUpdate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return err
	}

	return s.milestones.Update(ctx, milestone.ID, req.Name, req.Description)
}

func (s *MilestoneService) Delete(ctx context.Context, actor authz.Identity, milestoneID string) error {
	milestone, err := s.findMilestone(ctx, milestoneID)
	if err != nil {
		return err
	}
	project, err := s.findProject(ctx, milestone.ProjectID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceMilestone, authz.ActionDelete, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return err
	}

	return s.milestones.Delete(ctx, milestone.ID)
}

func (s *MilestoneService) authorizeRead(ctx context.Context, actor authz.Identity, project *model.Project) error {
	member, err := s.projects.IsMember(ctx, project.ID, actor.UserID)
	if err != nil {
		return err
	}
	return authz.Authorize(actor, authz.ResourceMilestone, authz.ActionRead, authz.Subject{
		CreatorID: project.CreatedBy,
		Member:    member,
	})
}

func (s *MilestoneService) findMilestone(ctx context.Context, milestoneID string) (*model.Milestone, error) {
	milestone, err := s.milestones.FindByID(ctx, milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMilestoneNotFound
		}
		return nil, err
	}
	return milestone, nil
}

func (s *MilestoneService) findProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}
