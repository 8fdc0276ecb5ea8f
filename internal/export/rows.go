// Package export builds the flat, already-labeled row objects served by
// the export endpoints. Rows carry display-ready values: localized
// dates, joined contact names, the owning category name.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/brandoline/Kanbanize.me/internal/models"
)

// Row is one export record: column label -> display value.
type Row struct {
	Headers []string
	Values  []string
}

// formatDate renders a stored "2006-01-02" date as dd/mm/yyyy (pt-BR).
// Empty or malformed input passes through unchanged.
func formatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// formatTimestamp renders an RFC3339 timestamp as dd/mm/yyyy.
func formatTimestamp(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

var taskHeaders = []string{
	"título", "prioridade", "status", "contatos",
	"data-início", "data-conclusão", "última-atualização",
	"observações", "categoria",
}

// TaskRows builds export rows for an already-filtered task list.
// Contact names are resolved from the snapshot and joined with ", ";
// categoryName is the active category the view was filtered to.
func TaskRows(tasks []models.Task, contacts []models.Contact, categoryName string) []Row {
	nameByID := make(map[string]string, len(contacts))
	for _, c := range contacts {
		nameByID[c.ID] = c.Name
	}

	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		names := make([]string, 0, len(t.ContactIDs))
		for _, id := range t.ContactIDs {
			if name, ok := nameByID[id]; ok {
				names = append(names, name)
			}
		}
		rows = append(rows, Row{
			Headers: taskHeaders,
			Values: []string{
				t.Title,
				string(t.Priority),
				string(t.Status),
				strings.Join(names, ", "),
				formatDate(t.StartDate),
				formatDate(t.DueDate),
				formatTimestamp(t.LastUpdated),
				t.Notes,
				categoryName,
			},
		})
	}
	return rows
}

var contactHeaders = []string{
	"nome", "email", "telefone", "instituição", "cidade", "cargo", "docente", "observações",
}

// ContactRows builds export rows for a contact list.
func ContactRows(contacts []models.Contact) []Row {
	rows := make([]Row, 0, len(contacts))
	for _, c := range contacts {
		faculty := "não"
		if c.IsFaculty {
			faculty = "sim"
		}
		rows = append(rows, Row{
			Headers: contactHeaders,
			Values: []string{
				c.Name, c.Email, c.Phone, c.Institution, c.City, c.Position, faculty, c.Notes,
			},
		})
	}
	return rows
}

var courseHeaders = []string{
	"nome", "período", "modalidade", "prioridade", "data-início",
	"dias-alunos", "dias-aula", "carga-horária",
}

// CourseRows builds export rows for a course list.
func CourseRows(courses []models.Course) []Row {
	rows := make([]Row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, Row{
			Headers: courseHeaders,
			Values: []string{
				c.Name,
				string(c.Period),
				string(c.Modality),
				string(c.Priority),
				formatDate(c.StartDate),
				c.StudentDays,
				c.ClassDays,
				strconv.Itoa(c.Duration),
			},
		})
	}
	return rows
}
