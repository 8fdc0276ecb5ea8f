package models

import (
	"gorm.io/gorm"
)

// CoursePeriod is the shift a course runs in.
type CoursePeriod string

const (
	PeriodMorning   CoursePeriod = "matutino"
	PeriodAfternoon CoursePeriod = "vespertino"
	PeriodEvening   CoursePeriod = "noturno"
)

// CourseModality distinguishes in-person from remote courses.
type CourseModality string

const (
	CourseInPerson CourseModality = "presencial"
	CourseRemote   CourseModality = "remoto"
)

// CoursePriority ranks courses. Note the token set is distinct from
// TaskPriority: "media" here carries no accent. The two domains are
// never interchangeable.
type CoursePriority string

const (
	CoursePriorityHigh   CoursePriority = "alta"
	CoursePriorityMedium CoursePriority = "media"
	CoursePriorityLow    CoursePriority = "baixa"
)

// Rank maps a course priority to its fixed sort rank (alta first).
// Unknown tokens rank after all known ones.
func (p CoursePriority) Rank() int {
	switch p {
	case CoursePriorityHigh:
		return 1
	case CoursePriorityMedium:
		return 2
	case CoursePriorityLow:
		return 3
	}
	return 4
}

// Course represents an InfoTec course offering.
// StudentDays and ClassDays are free-text day lists ("Segunda-feira,
// Quarta-feira"); Duration is whole hours.
type Course struct {
	ID          string         `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Period      CoursePeriod   `json:"period" gorm:"default:'matutino'"`
	Modality    CourseModality `json:"modality" gorm:"default:'presencial'"`
	Color       string         `json:"color"`
	StartDate   string         `json:"startDate" gorm:"column:start_date"`
	StudentDays string         `json:"studentDays" gorm:"column:student_days"`
	ClassDays   string         `json:"classDays" gorm:"column:class_days"`
	Duration    int            `json:"duration"`
	Priority    CoursePriority `json:"priority" gorm:"default:'media'"`
	UserID      string         `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

// TableName specifies the table name for Course Model
func (Course) TableName() string {
	return "courses"
}
