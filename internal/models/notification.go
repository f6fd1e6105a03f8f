package model

import "time"

type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"notification_id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Message   string    `gorm:"not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
