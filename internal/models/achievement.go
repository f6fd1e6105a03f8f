package model

import "time"

type UserAchievement struct {
	ID           string    `gorm:"primaryKey;size:36" json:"achievement_id"`
	UserID       string    `gorm:"size:36;not null;index" json:"user_id"`
	MilestoneID  string    `gorm:"size:36;not null" json:"milestone_id"`
	BadgeName    string    `gorm:"not null" json:"badge_name"`
	PointsEarned int       `gorm:"not null" json:"points_earned"`
	AchievedAt   time.Time `json:"achieved_at"`
}
