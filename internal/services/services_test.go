package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskhive.com/taskhive/internal/authz"
	"taskhive.com/taskhive/internal/constants"
	dto "taskhive.com/taskhive/internal/data_models"
	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/pkg/crypto"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
		&model.TaskHistory{},
		&model.KanbanBoard{},
		&model.KanbanColumn{},
		&model.KanbanCard{},
		&model.Milestone{},
		&model.UserAchievement{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type fixture struct {
	db           *gorm.DB
	users        *repository.UserRepository
	projects     *repository.ProjectRepository
	tasks        *repository.TaskRepository
	history      *repository.TaskHistoryRepository
	boards       *repository.BoardRepository
	milestones   *repository.MilestoneRepository
	achievements *repository.AchievementRepository
}

func newFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	return &fixture{
		db:           db,
		users:        repository.NewUserRepository(db),
		projects:     repository.NewProjectRepository(db),
		tasks:        repository.NewTaskRepository(db),
		history:      repository.NewTaskHistoryRepository(db),
		boards:       repository.NewBoardRepository(db),
		milestones:   repository.NewMilestoneRepository(db),
		achievements: repository.NewAchievementRepository(db),
	}
}

func (f *fixture) createUser(t *testing.T, email string, role constants.Role) authz.Identity {
	hash, err := crypto.HashPassword("secret-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user, err := f.users.Create(context.Background(), "Test", "User", email, hash, role)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return authz.Identity{UserID: user.ID, Role: user.Role}
}

func (f *fixture) createProject(t *testing.T, creator authz.Identity) *model.Project {
	project := &model.Project{
		Name:      "Website Redesign",
		CreatedBy: creator.UserID,
		Priority:  constants.DefaultPriority,
	}
	if err := f.projects.Create(context.Background(), project); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

func (f *fixture) taskService() *TaskService {
	return NewTaskService(f.tasks, f.projects, f.users, nil)
}

func (f *fixture) createTask(t *testing.T, creator authz.Identity, projectID string, assignee *string) *model.Task {
	task, err := f.taskService().Create(context.Background(), creator, dto.CreateTaskRequest{
		ProjectID:  projectID,
		Title:      "Draft landing page",
		AssignedTo: assignee,
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

func strPtr(s string) *string { return &s }

func timePtr(tm time.Time) *time.Time { return &tm }
