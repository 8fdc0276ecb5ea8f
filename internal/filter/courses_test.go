package filter

import (
	"testing"

	"github.com/brandoline/Kanbanize.me/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleCourses() []models.Course {
	return []models.Course{
		{ID: "k1", Name: "Informática Básica", Period: models.PeriodMorning, Modality: models.CourseInPerson, Priority: models.CoursePriorityLow, Color: "#3B82F6"},
		{ID: "k2", Name: "Robótica", Period: models.PeriodEvening, Modality: models.CourseRemote, Priority: models.CoursePriorityHigh, Color: "#EF4444"},
		{ID: "k3", Name: "Programação Web", Period: models.PeriodMorning, Modality: models.CourseRemote, Priority: models.CoursePriorityMedium, Color: "#3B82F6"},
	}
}

func courseIDs(courses []models.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestCourseFilter_FixedPrioritySort(t *testing.T) {
	// no constraints: everything visible, alta then media then baixa
	visible := CourseFilter{}.Apply(sampleCourses())
	require.Equal(t, []string{"k2", "k3", "k1"}, courseIDs(visible))
}

func TestCourseFilter_Facets(t *testing.T) {
	courses := sampleCourses()

	require.Equal(t, []string{"k3", "k1"}, courseIDs(CourseFilter{Period: models.PeriodMorning}.Apply(courses)))
	require.Equal(t, []string{"k2", "k3"}, courseIDs(CourseFilter{Modality: models.CourseRemote}.Apply(courses)))
	require.Equal(t, []string{"k2"}, courseIDs(CourseFilter{Priority: models.CoursePriorityHigh}.Apply(courses)))
}

func TestCourseFilter_ColorIsExactMatch(t *testing.T) {
	courses := sampleCourses()

	require.Equal(t, []string{"k3", "k1"}, courseIDs(CourseFilter{Color: "#3B82F6"}.Apply(courses)))
	// substrings do not match
	require.Empty(t, CourseFilter{Color: "#3B"}.Apply(courses))
}

func TestCourseFilter_SearchAndFacetANDed(t *testing.T) {
	courses := sampleCourses()

	visible := CourseFilter{Search: "rob", Modality: models.CourseRemote}.Apply(courses)
	require.Equal(t, []string{"k2"}, courseIDs(visible))

	require.Empty(t, CourseFilter{Search: "rob", Modality: models.CourseInPerson}.Apply(courses))
}

func TestCoursePriorityRank(t *testing.T) {
	require.Equal(t, 1, models.CoursePriorityHigh.Rank())
	require.Equal(t, 2, models.CoursePriorityMedium.Rank())
	require.Equal(t, 3, models.CoursePriorityLow.Rank())
	// task-priority token "média" is not a course priority
	require.Equal(t, 4, models.CoursePriority("média").Rank())
}

func TestUniqueFacetOptions(t *testing.T) {
	courses := sampleCourses()

	require.Equal(t, []string{"matutino", "noturno"}, UniquePeriods(courses))
	require.Equal(t, []string{"presencial", "remoto"}, UniqueModalities(courses))
	require.Equal(t, []string{"baixa", "alta", "media"}, UniqueCoursePriorities(courses))
	require.Equal(t, []string{"#3B82F6", "#EF4444"}, UniqueColors(courses))

	contacts := sampleContacts()
	require.Equal(t, []string{"São Paulo", "Campinas"}, UniqueCities(contacts))
	require.Equal(t, []string{"IFSP", "USP"}, UniqueInstitutions(contacts))
}
