package filter

import (
	"testing"

	"github.com/brandoline/Kanbanize.me/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: "t1", Title: "Fix bug", Priority: models.PriorityHigh, Status: models.StatusNotStarted, ContactIDs: []string{"x", "y"}, CategoryID: "cat1", Notes: "urgente"},
		{ID: "t2", Title: "Write docs", Priority: models.PriorityLow, Status: models.StatusInProgress, ContactIDs: []string{"y"}, CategoryID: "cat1"},
		{ID: "t3", Title: "Plan visit", Priority: models.PriorityMedium, Status: models.StatusDone, ContactIDs: []string{}, CategoryID: "cat2", Notes: "escola municipal"},
	}
}

func taskIDs(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskFilter_EmptyMatchesEverything(t *testing.T) {
	visible := TaskFilter{}.Apply(sampleTasks())
	require.Equal(t, []string{"t1", "t2", "t3"}, taskIDs(visible))
}

func TestTaskFilter_PriorityFacetMonotone(t *testing.T) {
	tasks := sampleTasks()

	one := TaskFilter{Priorities: []models.TaskPriority{models.PriorityHigh}}.Apply(tasks)
	require.Equal(t, []string{"t1"}, taskIDs(one))

	// widening the facet can only grow the result
	two := TaskFilter{Priorities: []models.TaskPriority{models.PriorityHigh, models.PriorityLow}}.Apply(tasks)
	require.Equal(t, []string{"t1", "t2"}, taskIDs(two))

	all := TaskFilter{Priorities: nil}.Apply(tasks)
	require.Len(t, all, len(tasks))
}

func TestTaskFilter_SearchMatchesTitleOrNotes(t *testing.T) {
	tasks := sampleTasks()

	require.Equal(t, []string{"t1"}, taskIDs(TaskFilter{Search: "FIX"}.Apply(tasks)))
	// notes are searched too
	require.Equal(t, []string{"t3"}, taskIDs(TaskFilter{Search: "Municipal"}.Apply(tasks)))
	require.Empty(t, TaskFilter{Search: "nothing-here"}.Apply(tasks))
}

func TestTaskFilter_ContactFacetIntersects(t *testing.T) {
	tasks := sampleTasks()

	require.Equal(t, []string{"t1", "t2"}, taskIDs(TaskFilter{ContactIDs: []string{"y"}}.Apply(tasks)))
	require.Equal(t, []string{"t1"}, taskIDs(TaskFilter{ContactIDs: []string{"x"}}.Apply(tasks)))
	// a task with no contacts never intersects a non-empty facet
	require.Empty(t, TaskFilter{ContactIDs: []string{"z"}}.Apply(tasks))
}

func TestTaskFilter_FacetsAreANDed(t *testing.T) {
	tasks := sampleTasks()

	f := TaskFilter{
		Search:     "bug",
		Priorities: []models.TaskPriority{models.PriorityHigh},
		Statuses:   []models.TaskStatus{models.StatusNotStarted},
		ContactIDs: []string{"x"},
		CategoryID: "cat1",
	}
	require.Equal(t, []string{"t1"}, taskIDs(f.Apply(tasks)))

	// one failing facet empties the result
	f.CategoryID = "cat2"
	require.Empty(t, f.Apply(tasks))
}

func TestTaskFilter_CategoryRestriction(t *testing.T) {
	visible := TaskFilter{CategoryID: "cat2"}.Apply(sampleTasks())
	require.Equal(t, []string{"t3"}, taskIDs(visible))
}

func TestSortTasks_Priority(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, SortByPriority, true)
	require.Equal(t, []string{"t1", "t3", "t2"}, taskIDs(tasks))

	SortTasks(tasks, SortByPriority, false)
	require.Equal(t, []string{"t2", "t3", "t1"}, taskIDs(tasks))
}

func TestSortTasks_Title(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, SortByTitle, true)
	require.Equal(t, []string{"t1", "t3", "t2"}, taskIDs(tasks))
}

func TestSortTasks_DueDateAbsentLast(t *testing.T) {
	tasks := []models.Task{
		{ID: "none", Title: "a"},
		{ID: "late", Title: "b", DueDate: "2025-08-01"},
		{ID: "soon", Title: "c", DueDate: "2025-07-01"},
	}
	SortTasks(tasks, SortByDueDate, true)
	require.Equal(t, []string{"soon", "late", "none"}, taskIDs(tasks))
}

func TestSortTasks_UnknownFieldFallsBackToPriority(t *testing.T) {
	tasks := sampleTasks()
	SortTasks(tasks, "bogus", true)
	require.Equal(t, []string{"t1", "t3", "t2"}, taskIDs(tasks))
}
