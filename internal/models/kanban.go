package model

import "time"

// KanbanBoard is 1:1 with a project; the unique index backs the
// one-board-per-project invariant so a racing second create surfaces as
// a constraint violation instead of a silent duplicate.
type KanbanBoard struct {
	ID        string    `gorm:"primaryKey;size:36" json:"board_id"`
	ProjectID string    `gorm:"size:36;not null;uniqueIndex" json:"project_id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Position is caller-supplied and not required to be unique among
// siblings; reads order by position then id.
type KanbanColumn struct {
	ID        string    `gorm:"primaryKey;size:36" json:"column_id"`
	BoardID   string    `gorm:"size:36;not null;index" json:"board_id"`
	Name      string    `gorm:"not null" json:"name"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// KanbanCard references a task; it does not own it. Deleting a card
// leaves the task untouched.
type KanbanCard struct {
	ID        string    `gorm:"primaryKey;size:36" json:"card_id"`
	ColumnID  string    `gorm:"size:36;not null;index" json:"column_id"`
	TaskID    string    `gorm:"size:36;not null" json:"task_id"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
