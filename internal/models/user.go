package model

import (
	"time"

	"taskhive.com/taskhive/internal/constants"
)

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"user_id"`
	FirstName    string         `gorm:"not null" json:"first_name"`
	LastName     string         `gorm:"not null" json:"last_name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         constants.Role `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
}
