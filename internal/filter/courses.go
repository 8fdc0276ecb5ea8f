package filter

import (
	"sort"

	"github.com/brandoline/Kanbanize.me/internal/models"
)

// CourseFilter selects courses by search term and facets. Color is an
// exact token match, not a substring.
type CourseFilter struct {
	Search   string
	Period   models.CoursePeriod
	Modality models.CourseModality
	Priority models.CoursePriority
	Color    string
}

// Apply returns the matching courses sorted by priority rank (alta,
// media, baixa). The sort is fixed and applies after filtering,
// independent of any caller-chosen ordering.
func (f CourseFilter) Apply(courses []models.Course) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

func (f CourseFilter) matches(c models.Course) bool {
	if !containsFold(c.Name, f.Search) {
		return false
	}
	if f.Period != "" && c.Period != f.Period {
		return false
	}
	if f.Modality != "" && c.Modality != f.Modality {
		return false
	}
	if f.Priority != "" && c.Priority != f.Priority {
		return false
	}
	if f.Color != "" && c.Color != f.Color {
		return false
	}
	return true
}
