package model

import "time"

// TaskHistory rows are append-only. Nothing in the service updates or
// deletes them once written.
type TaskHistory struct {
	ID        string    `gorm:"primaryKey;size:36" json:"history_id"`
	TaskID    string    `gorm:"size:36;not null;index" json:"task_id"`
	ChangedBy string    `gorm:"size:36;not null;index" json:"changed_by"`
	OldStatus string    `gorm:"type:varchar(50);not null" json:"old_status"`
	NewStatus string    `gorm:"type:varchar(50);not null" json:"new_status"`
	ChangedAt time.Time `json:"changed_at"`
}
