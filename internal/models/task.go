package models

import (
	"gorm.io/gorm"
)

// TaskStatus is the workflow column a task lives in.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "não-iniciado"
	StatusInProgress TaskStatus = "em-andamento"
	StatusDone       TaskStatus = "concluído"
)

// Valid reports whether s is one of the three known columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "baixa"
	PriorityMedium TaskPriority = "média"
	PriorityHigh   TaskPriority = "alta"
)

// Valid reports whether p is a known task priority.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a task in the system.
// ContactIDs and Attachments are stored as JSON columns so every linked
// contact survives a round trip, not just the first one.
// StartDate and DueDate are calendar dates in "2006-01-02" form, empty
// when unset; LastUpdated is RFC3339 and stamped on every mutation.
type Task struct {
	ID              string       `json:"id" gorm:"primaryKey"`
	Title           string       `json:"title" gorm:"not null"`
	Priority        TaskPriority `json:"priority" gorm:"default:'média'"`
	Status          TaskStatus   `json:"status" gorm:"not null;default:'não-iniciado'"`
	IsInterrupted   bool         `json:"isInterrupted" gorm:"column:is_interrupted"`
	ContactIDs      []string     `json:"contactIds" gorm:"column:contact_ids;serializer:json"`
	CategoryID      string       `json:"categoryId" gorm:"column:category_id;index"`
	StartDate       string       `json:"startDate" gorm:"column:start_date"`
	DueDate         string       `json:"dueDate" gorm:"column:due_date"`
	Attachments     []string     `json:"attachments" gorm:"serializer:json"`
	Notes           string       `json:"notes"`
	ReminderEnabled bool         `json:"reminderEnabled" gorm:"column:reminder_enabled"`
	LastUpdated     string       `json:"lastUpdated" gorm:"column:last_updated"`
	UserID          string       `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
