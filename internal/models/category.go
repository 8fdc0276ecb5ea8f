package models

import (
	"gorm.io/gorm"
)

// Category is a user-defined task bucket. Every task belongs to exactly
// one category, and at least one category must exist per user.
type Category struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"not null"`
	Color  string `json:"color"`
	UserID string `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// DefaultCategories returns the starter set provisioned for a user who
// has none yet.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Geral", Color: "#3B82F6"},
		{Name: "Urgente", Color: "#EF4444"},
		{Name: "Projeto", Color: "#10B981"},
	}
}

// TableName specifies the table name for Category Model
func (Category) TableName() string {
	return "categories"
}
