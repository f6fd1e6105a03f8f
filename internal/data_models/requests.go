package dto

import "time"

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateCredentialsRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" validate:"omitempty,min=8"`
}

type CreateProjectRequest struct {
	Name        string     `json:"project_name" validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
}

type UpdateProjectRequest struct {
	Name        string     `json:"project_name" validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
}

type CreateTaskRequest struct {
	ProjectID   string     `json:"project_id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	AssignedTo  *string    `json:"assigned_to"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

// UpdateTaskRequest is a partial patch; pointer fields distinguish
// "absent" from "set to zero value".
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssignedTo  *string    `json:"assigned_to"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"due_date"`
}

type CreateBoardRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
}

type RenameBoardRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateColumnRequest struct {
	BoardID  string `json:"board_id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Position int    `json:"position"`
}

type UpdateColumnRequest struct {
	Name     string `json:"name" validate:"required"`
	Position int    `json:"position"`
}

type CreateCardRequest struct {
	ColumnID string `json:"column_id" validate:"required"`
	TaskID   string `json:"task_id" validate:"required"`
	Position int    `json:"position"`
}

type MoveCardRequest struct {
	ColumnID string `json:"column_id" validate:"required"`
	Position int    `json:"position"`
}

type CreateMilestoneRequest struct {
	ProjectID   string `json:"project_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateMilestoneRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CreateAchievementRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	MilestoneID  string `json:"milestone_id" validate:"required"`
	BadgeName    string `json:"badge_name" validate:"required"`
	PointsEarned int    `json:"points_earned"`
}

type CreateNotificationRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// HistoryQuery filters come from query parameters; all are optional.
type HistoryQuery struct {
	UserID    string `query:"user_id"`
	ProjectID string `query:"project_id"`
	TaskID    string `query:"task_id"`
}
