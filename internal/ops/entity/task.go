package entity

import "time"

// GrowerTask a greenhouse work item. Tasks are independent, no dependency
// ordering between them.
type GrowerTask struct {
	ID       string    `json:"id" gorm:"primaryKey;size:32"`
	Name     string    `json:"name" gorm:"size:200;not null"`
	Assignee string    `json:"assignee" gorm:"size:100;not null"`
	Priority string    `json:"priority" gorm:"size:10;not null"`
	DueDate  time.Time `json:"due_date"`
	Status   string    `json:"status" gorm:"size:20;not null;default:Incomplete"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (GrowerTask) TableName() string {
	return "ops_grower_tasks"
}

// Task priorities
const (
	TaskPriorityHigh   = "High"
	TaskPriorityMedium = "Medium"
	TaskPriorityLow    = "Low"
)

// Task statuses
const (
	TaskStatusIncomplete = "Incomplete"
	TaskStatusInProgress = "In Progress"
	TaskStatusComplete   = "Complete"
)

// IsTaskPriority reports whether p is a known priority.
func IsTaskPriority(p string) bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// IsTaskStatus reports whether s is a known task status.
func IsTaskStatus(s string) bool {
	switch s {
	case TaskStatusIncomplete, TaskStatusInProgress, TaskStatusComplete:
		return true
	}
	return false
}
