package models

import (
	"gorm.io/gorm"
)

// ContactCourseModality is the kind of course a faculty contact teaches.
type ContactCourseModality string

const (
	ModalityQualification ContactCourseModality = "qualificação"
	ModalityDevelopment   ContactCourseModality = "desenvolvimento"
	ModalityTechnical     ContactCourseModality = "técnico"
)

// Contact represents a person in the outreach registry.
//
// The faculty sub-record (Courses through AvailableShifts) only exists
// when IsFaculty is true; otherwise the fields are nil/empty and must
// not be treated as defaults. Normalize enforces that.
type Contact struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email" gorm:"not null"`
	Phone       string `json:"phone"`
	Institution string `json:"institution"`
	City        string `json:"city"`
	Position    string `json:"position"`
	Notes       string `json:"notes"`
	IsFaculty   bool   `json:"isFaculty" gorm:"column:is_faculty"`

	Courses         []string              `json:"courses,omitempty" gorm:"serializer:json"`
	SGNLink         string                `json:"sgnLink,omitempty" gorm:"column:sgn_link"`
	CourseModality  ContactCourseModality `json:"courseModality,omitempty" gorm:"column:course_modality"`
	ClassDays       []string              `json:"classDays,omitempty" gorm:"column:class_days;serializer:json"`
	AvailableDays   []string              `json:"availableDays,omitempty" gorm:"column:available_days;serializer:json"`
	AvailableShifts []string              `json:"availableShifts,omitempty" gorm:"column:available_shifts;serializer:json"`

	UserID string `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// Normalize clears the faculty sub-record when the contact is not
// flagged as faculty, so stale values never leak through an edit.
func (c *Contact) Normalize() {
	if c.IsFaculty {
		return
	}
	c.Courses = nil
	c.SGNLink = ""
	c.CourseModality = ""
	c.ClassDays = nil
	c.AvailableDays = nil
	c.AvailableShifts = nil
}

// TableName specifies the table name for Contact Model
func (Contact) TableName() string {
	return "contacts"
}
