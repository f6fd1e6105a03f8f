package services

import (
	"context"
	"errors"
	"testing"

	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	apperrors "taskhive.com/taskhive/internal/errors"
)

func (f *fixture) boardService() *BoardService {
	return NewBoardService(f.boards, f.projects, f.tasks)
}

func TestBoardService_OneBoardPerProject(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	service := f.boardService()

	ctx := context.Background()
	if _, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{
		ProjectID: project.ID,
		Name:      "Sprint board",
	}); err != nil {
		t.Fatalf("first board failed: %v", err)
	}

	_, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{
		ProjectID: project.ID,
		Name:      "Second board",
	})
	if !errors.Is(err, apperrors.ErrBoardExists) {
		t.Fatalf("expected board-exists conflict, got %v", err)
	}
	if apperrors.StatusCode(err) != 409 {
		t.Fatalf("expected status 409, got %d", apperrors.StatusCode(err))
	}
}

func TestBoardService_CreateBoardCreatorOnly(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	outsider := f.createUser(t, "outsider@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)

	_, err := f.boardService().CreateBoard(context.Background(), outsider, dto.CreateBoardRequest{
		ProjectID: project.ID,
		Name:      "Rogue board",
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestBoardService_MemberReadOutsiderDenied(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	outsider := f.createUser(t, "outsider@example.com", constants.RoleEmployee)
	admin := f.createUser(t, "admin@example.com", constants.RoleAdmin)
	project := f.createProject(t, creator)
	f.createTask(t, creator, project.ID, strPtr(assignee.UserID))
	service := f.boardService()

	ctx := context.Background()
	if _, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{
		ProjectID: project.ID,
		Name:      "Sprint board",
	}); err != nil {
		t.Fatalf("board creation failed: %v", err)
	}

	if _, err := service.GetBoard(ctx, assignee, project.ID); err != nil {
		t.Fatalf("member read failed: %v", err)
	}
	if _, err := service.GetBoard(ctx, admin, project.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if _, err := service.GetBoard(ctx, outsider, project.ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for outsider, got %v", err)
	}
}

func TestBoardService_ColumnOrderStableOnDuplicatePositions(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	service := f.boardService()

	ctx := context.Background()
	board, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{
		ProjectID: project.ID,
		Name:      "Sprint board",
	})
	if err != nil {
		t.Fatalf("board creation failed: %v", err)
	}

	for _, col := range []struct {
		name     string
		position int
	}{
		{"Done", 2},
		{"To Do", 0},
		{"Review", 1},
		{"In Progress", 1},
	} {
		if _, err := service.CreateColumn(ctx, creator, dto.CreateColumnRequest{
			BoardID:  board.ID,
			Name:     col.name,
			Position: col.position,
		}); err != nil {
			t.Fatalf("column %s failed: %v", col.name, err)
		}
	}

	columns, err := service.ListColumns(ctx, creator, board.ID)
	if err != nil {
		t.Fatalf("list columns failed: %v", err)
	}
	if len(columns) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(columns))
	}
	for i := 1; i < len(columns); i++ {
		prev, cur := columns[i-1], columns[i]
		if prev.Position > cur.Position {
			t.Fatalf("columns out of position order at %d: %d > %d", i, prev.Position, cur.Position)
		}
		if prev.Position == cur.Position && prev.ID > cur.ID {
			t.Fatalf("tied positions must order by id at %d", i)
		}
	}

	// Same filters, same order.
	again, err := service.ListColumns(ctx, creator, board.ID)
	if err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	for i := range columns {
		if columns[i].ID != again[i].ID {
			t.Fatalf("ordering not stable across reads at index %d", i)
		}
	}
}

func TestBoardService_MemberCanMoveCard(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	assignee := f.createUser(t, "assignee@example.com", constants.RoleEmployee)
	outsider := f.createUser(t, "outsider@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	task := f.createTask(t, creator, project.ID, strPtr(assignee.UserID))
	service := f.boardService()

	ctx := context.Background()
	board, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{
		ProjectID: project.ID,
		Name:      "Sprint board",
	})
	if err != nil {
		t.Fatalf("board creation failed: %v", err)
	}
	todo, err := service.CreateColumn(ctx, creator, dto.CreateColumnRequest{
		BoardID: board.ID, Name: "To Do", Position: 0,
	})
	if err != nil {
		t.Fatalf("column creation failed: %v", err)
	}
	doing, err := service.CreateColumn(ctx, creator, dto.CreateColumnRequest{
		BoardID: board.ID, Name: "In Progress", Position: 1,
	})
	if err != nil {
		t.Fatalf("column creation failed: %v", err)
	}
	card, err := service.CreateCard(ctx, creator, dto.CreateCardRequest{
		ColumnID: todo.ID, TaskID: task.ID, Position: 0,
	})
	if err != nil {
		t.Fatalf("card creation failed: %v", err)
	}

	if err := service.MoveCard(ctx, outsider, card.ID, dto.MoveCardRequest{
		ColumnID: doing.ID, Position: 0,
	}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for outsider move, got %v", err)
	}

	if err := service.MoveCard(ctx, assignee, card.ID, dto.MoveCardRequest{
		ColumnID: doing.ID, Position: 3,
	}); err != nil {
		t.Fatalf("member move failed: %v", err)
	}

	cards, err := service.ListCards(ctx, creator, doing.ID)
	if err != nil {
		t.Fatalf("list cards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != card.ID || cards[0].Position != 3 {
		t.Fatalf("card not moved as requested: %+v", cards)
	}
}

func TestBoardService_MoveCardAcrossProjectsDenied(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	projectA := f.createProject(t, creator)
	projectB := f.createProject(t, creator)
	task := f.createTask(t, creator, projectA.ID, nil)
	service := f.boardService()

	ctx := context.Background()
	boardA, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{ProjectID: projectA.ID, Name: "A"})
	if err != nil {
		t.Fatalf("board A failed: %v", err)
	}
	boardB, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{ProjectID: projectB.ID, Name: "B"})
	if err != nil {
		t.Fatalf("board B failed: %v", err)
	}
	colA, err := service.CreateColumn(ctx, creator, dto.CreateColumnRequest{BoardID: boardA.ID, Name: "To Do"})
	if err != nil {
		t.Fatalf("column A failed: %v", err)
	}
	colB, err := service.CreateColumn(ctx, creator, dto.CreateColumnRequest{BoardID: boardB.ID, Name: "To Do"})
	if err != nil {
		t.Fatalf("column B failed: %v", err)
	}
	card, err := service.CreateCard(ctx, creator, dto.CreateCardRequest{ColumnID: colA.ID, TaskID: task.ID})
	if err != nil {
		t.Fatalf("card failed: %v", err)
	}

	if err := service.MoveCard(ctx, creator, card.ID, dto.MoveCardRequest{
		ColumnID: colB.ID, Position: 0,
	}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for cross-project move, got %v", err)
	}
}

func TestBoardService_CardRequiresExistingTask(t *testing.T) {
	f := newFixture(t)
	creator := f.createUser(t, "creator@example.com", constants.RoleEmployee)
	project := f.createProject(t, creator)
	service := f.boardService()

	ctx := context.Background()
	board, err := service.CreateBoard(ctx, creator, dto.CreateBoardRequest{ProjectID: project.ID, Name: "Sprint board"})
	if err != nil {
		t.Fatalf("board creation failed: %v", err)
	}
	column, err := service.CreateColumn(ctx, creator, dto.CreateColumnRequest{BoardID: board.ID, Name: "To Do"})
	if err != nil {
		t.Fatalf("column creation failed: %v", err)
	}

	_, err = service.CreateCard(ctx, creator, dto.CreateCardRequest{
		ColumnID: column.ID,
		TaskID:   "no-such-task",
	})
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected task-not-found, got %v", err)
	}
}
