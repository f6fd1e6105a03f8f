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

// BoardService maintains the kanban structures: one board per project,
// position-ordered columns, and position-ordered cards referencing
// tasks. Positions are caller-supplied and never renumbered; reads
// order by position with id as the tie-break.
type BoardService struct {
	boards   *repository.BoardRepository
	projects *repository.ProjectRepository
	tasks    *repository.TaskRepository
}

func NewBoardService(
	boards *repository.BoardRepository,
	projects *repository.ProjectRepository,
	tasks *repository.TaskRepository,
) *BoardService {
	return &BoardService{
		boards:   boards,
		projects: projects,
		tasks:    tasks,
	}
}

func (s *BoardService) CreateBoard(ctx context.Context, actor authz.Identity, req dto.CreateBoardRequest) (*model.KanbanBoard, error) {
	project, err := s.findProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceBoard, authz.ActionCreate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied board creation",
			zap.String("actor", actor.UserID), zap.String("project_id", project.ID))
		return nil, err
	}

	board, err := s.boards.CreateBoard(ctx, project.ID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrBoardExists) {
			return nil, apperrors.ErrBoardExists
		}
		return nil, err
	}

	logger.Audit.Info("board created",
		zap.String("board_id", board.ID), zap.String("project_id", project.ID))
	return board, nil
}

// GetBoard fetches the project's board for admins and members.
func (s *BoardService) GetBoard(ctx context.Context, actor authz.Identity, projectID string) (*model.KanbanBoard, error) {
	project, err := s.findProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMemberRead(ctx, actor, authz.ResourceBoard, project); err != nil {
		return nil, err
	}

	board, err := s.boards.FindBoardByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBoardNotFound
		}
		return nil, err
	}
	return board, nil
}

func (s *BoardService) RenameBoard(ctx context.Context, actor authz.Identity, boardID string, req dto.RenameBoardRequest) error {
	board, project, err := s.boardChain(ctx, boardID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceBoard, authz.ActionUpdate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return err
	}

	return s.boards.RenameBoard(ctx, board.ID, req.Name)
}

func (s *BoardService) DeleteBoard(ctx context.Context, actor authz.Identity, boardID string) error {
	board, project, err := s.boardChain(ctx, boardID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceBoard, authz.ActionDelete, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		logger.Security.Warn("denied board deletion",
			zap.String("actor", actor.UserID), zap.String("board_id", boardID))
		return err
	}

	if err := s.boards.DeleteBoard(ctx, board.ID); err != nil {
		return err
	}
	logger.Audit.Info("board deleted", zap.String("board_id", boardID))
	return nil
}

// CreateColumn accepts the caller-supplied position as-is: no duplicate
// detection, no renumbering of siblings, no gap filling.
func (s *BoardService) CreateColumn(ctx context.Context, actor authz.Identity, req dto.CreateColumnRequest) (*model.KanbanColumn, error) {
	_, project, err := s.boardChain(ctx, req.BoardID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceColumn, authz.ActionCreate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return nil, err
	}

	return s.boards.CreateColumn(ctx, req.BoardID, req.Name, req.Position)
}

func (s *BoardService) ListColumns(ctx context.Context, actor authz.Identity, boardID string) ([]model.KanbanColumn, error) {
	board, project, err := s.boardChain(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMemberRead(ctx, actor, authz.ResourceColumn, project); err != nil {
		return nil, err
	}

	return s.boards.ListColumns(ctx, board.ID)
}

func (s *BoardService) UpdateColumn(ctx context.Context, actor authz.Identity, columnID string, req dto.UpdateColumnRequest) error {
	_, _, project, err := s.columnChain(ctx, columnID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceColumn, authz.ActionUpdate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return err
	}

	return s.boards.UpdateColumn(ctx, columnID, req.Name, req.Position)
}

func (s *BoardService) DeleteColumn(ctx context.Context, actor authz.Identity, columnID string) error {
	_, _, project, err := s.columnChain(ctx, columnID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceColumn, authz.ActionDelete, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return err
	}

	return s.boards.DeleteColumn(ctx, columnID)
}

// CreateCard places a task reference on a column. The task must exist;
// the card only points at it and never owns it.
func (s *BoardService) CreateCard(ctx context.Context, actor authz.Identity, req dto.CreateCardRequest) (*model.KanbanCard, error) {
	_, _, project, err := s.columnChain(ctx, req.ColumnID)
	if err != nil {
		return nil, err
	}

	if err := authz.Authorize(actor, authz.ResourceCard, authz.ActionCreate, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return nil, err
	}

	if _, err := s.tasks.FindByID(ctx, req.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	return s.boards.CreateCard(ctx, req.ColumnID, req.TaskID, req.Position)
}

func (s *BoardService) ListCards(ctx context.Context, actor authz.Identity, columnID string) ([]model.KanbanCard, error) {
	column, _, project, err := s.columnChain(ctx, columnID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeMemberRead(ctx, actor, authz.ResourceCard, project); err != nil {
		return nil, err
	}

	return s.boards.ListCards(ctx, column.ID)
}

// MoveCard repositions a card, possibly into another column of the same
// project. Any project member may move cards; this is deliberately
// looser than the creator-only rule on other kanban mutations.
func (s *BoardService) MoveCard(ctx context.Context, actor authz.Identity, cardID string, req dto.MoveCardRequest) error {
	card, _, _, project, err := s.cardChain(ctx, cardID)
	if err != nil {
		return err
	}

	member, err := s.projects.IsMember(ctx, project.ID, actor.UserID)
	if err != nil {
		return err
	}
	subject := authz.Subject{CreatorID: project.CreatedBy, Member: member}
	if err := authz.Authorize(actor, authz.ResourceCard, authz.ActionMove, subject); err != nil {
		logger.Security.Warn("denied card move",
			zap.String("actor", actor.UserID), zap.String("card_id", cardID))
		return err
	}

	_, _, targetProject, err := s.columnChain(ctx, req.ColumnID)
	if err != nil {
		return err
	}
	if targetProject.ID != project.ID {
		return apperrors.ErrForbidden
	}

	if err := s.boards.MoveCard(ctx, card.ID, req.ColumnID, req.Position); err != nil {
		return err
	}

	logger.Audit.Info("card moved",
		zap.String("card_id", cardID), zap.String("column_id", req.ColumnID), zap.Int("position", req.Position))
	return nil
}

func (s *BoardService) DeleteCard(ctx context.Context, actor authz.Identity, cardID string) error {
	card, _, _, project, err := s.cardChain(ctx, cardID)
	if err != nil {
		return err
	}

	if err := authz.Authorize(actor, authz.ResourceCard, authz.ActionDelete, authz.Subject{CreatorID: project.CreatedBy}); err != nil {
		return err
	}

	return s.boards.DeleteCard(ctx, card.ID)
}

func (s *BoardService) authorizeMemberRead(ctx context.Context, actor authz.Identity, res authz.Resource, project *model.Project) error {
	member, err := s.projects.IsMember(ctx, project.ID, actor.UserID)
	if err != nil {
		return err
	}
	return authz.Authorize(actor, res, authz.ActionRead, authz.Subject{
		CreatorID: project.CreatedBy,
		Member:    member,
	})
}

func (s *BoardService) boardChain(ctx context.Context, boardID string) (*model.KanbanBoard, *model.Project, error) {
	board, err := s.boards.FindBoardByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrBoardNotFound
		}
		return nil, nil, err
	}
	project, err := s.findProject(ctx, board.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return board, project, nil
}

func (s *BoardService) columnChain(ctx context.Context, columnID string) (*model.KanbanColumn, *model.KanbanBoard, *model.Project, error) {
	column, err := s.boards.FindColumnByID(ctx, columnID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrColumnNotFound
		}
		return nil, nil, nil, err
	}
	board, project, err := s.boardChain(ctx, column.BoardID)
	if err != nil {
		return nil, nil, nil, err
	}
	return column, board, project, nil
}

func (s *BoardService) cardChain(ctx context.Context, cardID string) (*model.KanbanCard, *model.KanbanColumn, *model.KanbanBoard, *model.Project, error) {
	card, err := s.boards.FindCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, apperrors.ErrCardNotFound
		}
		return nil, nil, nil, nil, err
	}
	column, board, project, err := s.columnChain(ctx, card.ColumnID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return card, column, board, project, nil
}

func (s *BoardService) findProject(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}
