package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

type BoardRepository struct {
	db *gorm.DB
}

// ErrBoardExists is returned when a project already has a board. The
// existence check runs inside the insert transaction and the table also
// carries a unique index on project_id, so two racing creators cannot
// both succeed.
var ErrBoardExists = errors.New("board already exists for project")

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) CreateBoard(ctx context.Context, projectID, name string) (*model.KanbanBoard, error) {
	board := &model.KanbanBoard{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.KanbanBoard{}).
			Where("project_id = ?", projectID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrBoardExists
		}
		return tx.Create(board).Error
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

func (r *BoardRepository) FindBoardByID(ctx context.Context, id string) (*model.KanbanBoard, error) {
	var board model.KanbanBoard
	err := r.db.WithContext(ctx).First(&board, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) FindBoardByProject(ctx context.Context, projectID string) (*model.KanbanBoard, error) {
	var board model.KanbanBoard
	err := r.db.WithContext(ctx).First(&board, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) RenameBoard(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).Model(&model.KanbanBoard{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (r *BoardRepository) DeleteBoard(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.KanbanBoard{}, "id = ?", id).Error
}

func (r *BoardRepository) CreateColumn(ctx context.Context, boardID, name string, position int) (*model.KanbanColumn, error) {
	column := &model.KanbanColumn{
		ID:        uuid.NewString(),
		BoardID:   boardID,
		Name:      name,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(column).Error; err != nil {
		return nil, err
	}
	return column, nil
}

func (r *BoardRepository) FindColumnByID(ctx context.Context, id string) (*model.KanbanColumn, error) {
	var column model.KanbanColumn
	err := r.db.WithContext(ctx).First(&column, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &column, nil
}

// ListColumns orders by position ascending; ties break on id so the
// order stays stable across reads.
func (r *BoardRepository) ListColumns(ctx context.Context, boardID string) ([]model.KanbanColumn, error) {
	columns := []model.KanbanColumn{}
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("position asc, id asc").Find(&columns).Error
	return columns, err
}

func (r *BoardRepository) UpdateColumn(ctx context.Context, id, name string, position int) error {
	return r.db.WithContext(ctx).Model(&model.KanbanColumn{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     name,
			"position": position,
		}).Error
}

func (r *BoardRepository) DeleteColumn(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.KanbanColumn{}, "id = ?", id).Error
}

func (r *BoardRepository) CreateCard(ctx context.Context, columnID, taskID string, position int) (*model.KanbanCard, error) {
	card := &model.KanbanCard{
		ID:        uuid.NewString(),
		ColumnID:  columnID,
		TaskID:    taskID,
		Position:  position,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (r *BoardRepository) FindCardByID(ctx context.Context, id string) (*model.KanbanCard, error) {
	var card model.KanbanCard
	err := r.db.WithContext(ctx).First(&card, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *BoardRepository) ListCards(ctx context.Context, columnID string) ([]model.KanbanCard, error) {
	cards := []model.KanbanCard{}
	err := r.db.WithContext(ctx).
		Where("column_id = ?", columnID).
		Order("position asc, id asc").Find(&cards).Error
	return cards, err
}

// MoveCard updates the column reference and position in one statement.
func (r *BoardRepository) MoveCard(ctx context.Context, cardID, columnID string, position int) error {
	return r.db.WithContext(ctx).Model(&model.KanbanCard{}).
		Where("id = ?", cardID).
		Updates(map[string]interface{}{
			"column_id": columnID,
			"position":  position,
		}).Error
}

func (r *BoardRepository) DeleteCard(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.KanbanCard{}, "id = ?", id).Error
}
