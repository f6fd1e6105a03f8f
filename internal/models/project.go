package model

import "time"

type Project struct {
	ID          string     `gorm:"primaryKey;size:36" json:"project_id"`
	Name        string     `gorm:"not null" json:"project_name"`
	Description string     `json:"description"`
	CreatedBy   string     `gorm:"size:36;not null;index" json:"created_by"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    string     `gorm:"type:varchar(20);not null" json:"priority"`
	Category    string     `json:"category,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
