package board

import (
	"sort"
	"time"

	"github.com/brandoline/Kanbanize.me/internal/models"
)

// Columns is the fixed display order of the workflow columns.
var Columns = []models.TaskStatus{
	models.StatusNotStarted,
	models.StatusInProgress,
	models.StatusDone,
}

// Board maps each workflow status to its ordered column.
type Board map[models.TaskStatus][]models.Task

// ParseDate parses a calendar date in the storage format. The bool is
// false for empty or malformed input; a task with an unparseable due
// date behaves exactly like one with no due date.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsOverdue reports whether a task's due date has passed and the task
// is not done. Tasks without a due date are never overdue.
func IsOverdue(t models.Task, now time.Time) bool {
	due, ok := ParseDate(t.DueDate)
	if !ok {
		return false
	}
	return due.Before(now) && t.Status != models.StatusDone
}

// Partition splits tasks into the three workflow columns and orders
// each column. It is a pure function of its input snapshot; callers
// re-invoke it after any task mutation.
//
// Each column is ordered by a single composite comparator:
//  1. in the done column, interrupted tasks sort strictly after
//     non-interrupted ones;
//  2. tasks without a due date sort last;
//  3. overdue tasks sort before non-overdue ones regardless of date;
//  4. within the same overdue class, ascending due date.
//
// Ties keep input order (stable sort).
func Partition(tasks []models.Task, now time.Time) Board {
	b := make(Board, len(Columns))
	for _, status := range Columns {
		b[status] = []models.Task{}
	}
	for _, t := range tasks {
		if !t.Status.Valid() {
			continue
		}
		b[t.Status] = append(b[t.Status], t)
	}
	for _, status := range Columns {
		sortColumn(b[status], status, now)
	}
	return b
}

// sortColumn orders one column in place. The comparator is composite
// on purpose: splitting it into multiple sort passes would let a plain
// date comparison override the overdue tie-break.
func sortColumn(tasks []models.Task, status models.TaskStatus, now time.Time) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		if status == models.StatusDone && a.IsInterrupted != b.IsInterrupted {
			return !a.IsInterrupted
		}

		dueA, okA := ParseDate(a.DueDate)
		dueB, okB := ParseDate(b.DueDate)
		if !okA || !okB {
			// missing due date sorts last; both missing is a tie
			return okA
		}

		overA := dueA.Before(now) && a.Status != models.StatusDone
		overB := dueB.Before(now) && b.Status != models.StatusDone
		if overA != overB {
			return overA
		}

		return dueA.Before(dueB)
	})
}
