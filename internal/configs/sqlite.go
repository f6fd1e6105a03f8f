package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
