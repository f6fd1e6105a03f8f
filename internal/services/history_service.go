package services

import (
	"context"

	"taskhive.com/taskhive/internal/authz"
	dto "taskhive.com/taskhive/internal/data_models"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

// HistoryService reads the append-only audit trail of task status
// changes. Entries are only ever written by TaskService, inside the same
// transaction as the status change itself.
type HistoryService struct {
	history  *repository.TaskHistoryRepository
	projects *repository.ProjectRepository
}

func NewHistoryService(history *repository.TaskHistoryRepository, projects *repository.ProjectRepository) *HistoryService {
	return &HistoryService{history: history, projects: projects}
}

// Query applies the caller's filters. Non-admin actors are implicitly
// restricted to projects they belong to, whatever filters they asked
// for. Zero matching rows is a successful empty result, not an error; a
// 404 is reserved for a missing parent entity.
func (s *HistoryService) Query(ctx context.Context, actor authz.Identity, q dto.HistoryQuery) ([]model.TaskHistory, error) {
	filter := repository.HistoryFilter{
		UserID:    q.UserID,
		ProjectID: q.ProjectID,
		TaskID:    q.TaskID,
	}

	if !actor.Role.IsAdmin() {
		ids, err := s.projects.MemberProjectIDs(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []string{}
		}
		filter.ProjectIn = ids
	}

	return s.history.Query(ctx, filter)
}
