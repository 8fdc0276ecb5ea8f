// Package filter computes visible subsets of the in-memory entity
// snapshots. Every filter follows the same rule: an empty facet means
// "no constraint" (never "match nothing"), facet values are ORed
// internally, and all facets are ANDed together after the free-text
// search predicate.
package filter

import (
	"sort"
	"strings"

	"github.com/brandoline/Kanbanize.me/internal/models"
)

// TaskFilter selects tasks by search term and multi-select facets.
// CategoryID restricts the board to the active category when set.
type TaskFilter struct {
	Search     string
	Priorities []models.TaskPriority
	Statuses   []models.TaskStatus
	ContactIDs []string
	CategoryID string
}

// Apply returns the tasks matching every predicate, in input order.
func (f TaskFilter) Apply(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (f TaskFilter) matches(t models.Task) bool {
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	if !containsFold(t.Title, f.Search) && !containsFold(t.Notes, f.Search) {
		return false
	}
	if len(f.Priorities) > 0 && !contains(f.Priorities, t.Priority) {
		return false
	}
	if len(f.Statuses) > 0 && !contains(f.Statuses, t.Status) {
		return false
	}
	if len(f.ContactIDs) > 0 && !intersects(t.ContactIDs, f.ContactIDs) {
		return false
	}
	return true
}

// TaskSortField names a user-chosen sort of the task list view.
type TaskSortField string

const (
	SortByTitle       TaskSortField = "title"
	SortByPriority    TaskSortField = "priority"
	SortByDueDate     TaskSortField = "dueDate"
	SortByLastUpdated TaskSortField = "lastUpdated"
)

// taskPriorityRank orders alta before média before baixa.
func taskPriorityRank(p models.TaskPriority) int {
	switch p {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	case models.PriorityLow:
		return 2
	}
	return 3
}

// SortTasks orders tasks by the chosen field. Unknown fields fall back
// to priority rank. Descending negates the whole comparison, so absent
// due dates move first under desc just like the list view does.
func SortTasks(tasks []models.Task, field TaskSortField, ascending bool) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		var cmp int
		switch field {
		case SortByTitle:
			cmp = strings.Compare(a.Title, b.Title)
		case SortByDueDate:
			cmp = compareDueDates(a.DueDate, b.DueDate)
		case SortByLastUpdated:
			cmp = strings.Compare(a.LastUpdated, b.LastUpdated)
		default:
			cmp = taskPriorityRank(a.Priority) - taskPriorityRank(b.Priority)
		}
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
}

// compareDueDates sorts absent dates after present ones, then ascending.
func compareDueDates(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return strings.Compare(a, b)
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}
