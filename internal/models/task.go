package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// Task is one unit of work. Its current status lives in a separate status row
// and the reference is repointed on every transition, never edited in place.
type Task struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	Description  string            `gorm:"size:50;not null" json:"description"`
	DueDate      *time.Time        `json:"due_date,omitempty"`
	TaskStatusID uint              `gorm:"not null" json:"-"`
	TaskStatus   *TaskStatusRecord `gorm:"foreignKey:TaskStatusID" json:"-"`
	OwnerUserID  *string           `gorm:"size:20;index" json:"-"`
	Owner        *User             `gorm:"foreignKey:OwnerUserID" json:"-"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// TaskStatusRecord captures one point-in-time status value. Rows are
// append-only: superseded rows stay behind as implicit history.
type TaskStatusRecord struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	Value     constants.TaskStatus `gorm:"type:varchar(20);not null" json:"value"`
	CreatedAt time.Time            `json:"created_at"`
}

func (TaskStatusRecord) TableName() string {
	return "task_statuses"
}
