package filter

import (
	"testing"

	"github.com/brandoline/Kanbanize.me/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleContacts() []models.Contact {
	return []models.Contact{
		{ID: "c1", Name: "Ana Souza", Email: "ana@ifsp.edu.br", City: "São Paulo", Institution: "IFSP", IsFaculty: true, Courses: []string{"go101"}},
		{ID: "c2", Name: "Bruno Lima", Email: "bruno@usp.br", City: "Campinas", Institution: "USP"},
		{ID: "c3", Name: "Carla Alves", Email: "carla@ifsp.edu.br", City: "São Paulo", Institution: "IFSP"},
	}
}

func contactIDs(contacts []models.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.ID)
	}
	return out
}

func TestContactFilter_EmptyMatchesEverything(t *testing.T) {
	visible := ContactFilter{}.Apply(sampleContacts())
	require.Len(t, visible, 3)
}

func TestContactFilter_SearchNameEmailInstitution(t *testing.T) {
	contacts := sampleContacts()

	require.Equal(t, []string{"c1"}, contactIDs(ContactFilter{Search: "ana s"}.Apply(contacts)))
	require.Equal(t, []string{"c2"}, contactIDs(ContactFilter{Search: "usp.br"}.Apply(contacts)))
	require.Equal(t, []string{"c1", "c3"}, contactIDs(ContactFilter{Search: "ifsp"}.Apply(contacts)))
}

func TestContactFilter_FacultyTriState(t *testing.T) {
	contacts := sampleContacts()

	require.Equal(t, []string{"c1"}, contactIDs(ContactFilter{Faculty: FacultyOnly}.Apply(contacts)))
	require.Equal(t, []string{"c2", "c3"}, contactIDs(ContactFilter{Faculty: NonFacultyOnly}.Apply(contacts)))
	require.Len(t, ContactFilter{Faculty: ""}.Apply(contacts), 3)
}

func TestContactFilter_CityAndInstitutionSubstring(t *testing.T) {
	contacts := sampleContacts()

	require.Equal(t, []string{"c1", "c3"}, contactIDs(ContactFilter{City: "são"}.Apply(contacts)))
	require.Equal(t, []string{"c2"}, contactIDs(ContactFilter{Institution: "usp"}.Apply(contacts)))
}

func TestContactFilter_CourseMembershipIsFacultyOnly(t *testing.T) {
	contacts := sampleContacts()

	require.Equal(t, []string{"c1"}, contactIDs(ContactFilter{CourseID: "go101"}.Apply(contacts)))
	require.Empty(t, ContactFilter{CourseID: "unknown"}.Apply(contacts))
}
