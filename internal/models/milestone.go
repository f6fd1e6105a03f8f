package model

import "time"

type Milestone struct {
	ID          string    `gorm:"primaryKey;size:36" json:"milestone_id"`
	ProjectID   string    `gorm:"size:36;not null;index" json:"project_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
