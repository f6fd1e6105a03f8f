package model

import "time"

type Task struct {
	ID          string     `gorm:"primaryKey;size:36" json:"task_id"`
	ProjectID   string     `gorm:"size:36;not null;index" json:"project_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	AssignedTo  *string    `gorm:"size:36;index" json:"assigned_to,omitempty"`
	CreatedBy   string     `gorm:"size:36;not null" json:"created_by"`
	Status      string     `gorm:"type:varchar(50);not null" json:"status"`
	Priority    string     `gorm:"type:varchar(20);not null" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Version     uint       `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
}
