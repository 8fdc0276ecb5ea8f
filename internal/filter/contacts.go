package filter

import (
	"github.com/brandoline/Kanbanize.me/internal/models"
)

// Faculty tri-state filter values. The empty string is unconstrained.
const (
	FacultyOnly    = "faculty"
	NonFacultyOnly = "non-faculty"
)

// ContactFilter selects contacts by search term and facets.
type ContactFilter struct {
	Search      string
	Faculty     string // "", FacultyOnly or NonFacultyOnly
	City        string
	Institution string
	CourseID    string
}

// Apply returns the contacts matching every predicate, in input order.
func (f ContactFilter) Apply(contacts []models.Contact) []models.Contact {
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f ContactFilter) matches(c models.Contact) bool {
	if !containsFold(c.Name, f.Search) &&
		!containsFold(c.Email, f.Search) &&
		!containsFold(c.Institution, f.Search) {
		return false
	}
	switch f.Faculty {
	case FacultyOnly:
		if !c.IsFaculty {
			return false
		}
	case NonFacultyOnly:
		if c.IsFaculty {
			return false
		}
	}
	if f.City != "" && !containsFold(c.City, f.City) {
		return false
	}
	if f.Institution != "" && !containsFold(c.Institution, f.Institution) {
		return false
	}
	if f.CourseID != "" {
		// course membership only exists on the faculty sub-record
		if !c.IsFaculty || !contains(c.Courses, f.CourseID) {
			return false
		}
	}
	return true
}
