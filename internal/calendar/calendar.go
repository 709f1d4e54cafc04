// Package calendar holds the pure date math behind the planner views:
// the month grid, relative-date labels, the overdue predicate, and the
// filter/sort/group pipeline over in-memory task slices. Nothing here
// touches the database.
package calendar

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

// PriorityRank orders priorities for sorting; higher sorts first.
var PriorityRank = map[models.TaskPriority]int{
	models.PriorityUrgent: 4,
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// MonthGrid returns the classic fixed six-row month grid for the month
// containing ref: 6 weeks of 7 days, starting on the most recent Sunday
// on or before the 1st, including leading/trailing days from adjacent
// months.
func MonthGrid(ref time.Time) [][]time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([][]time.Time, 6)
	day := 0
	for w := 0; w < 6; w++ {
		week := make([]time.Time, 7)
		for d := 0; d < 7; d++ {
			week[d] = start.AddDate(0, 0, day)
			day++
		}
		grid[w] = week
	}
	return grid
}

// DaysUntil is the ceiling integer day difference from now to target.
// Negative means target has passed.
func DaysUntil(target, now time.Time) int {
	return int(math.Ceil(target.Sub(now).Hours() / 24))
}

// RelativeLabel maps a target datetime to a human label relative to now.
func RelativeLabel(target, now time.Time) string {
	diff := DaysUntil(target, now)
	switch {
	case diff < 0:
		return fmt.Sprintf("%d days overdue", -diff)
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Tomorrow"
	case diff <= 7:
		return fmt.Sprintf("In %d days", diff)
	case diff <= 30:
		return fmt.Sprintf("In %d weeks", (diff+6)/7)
	default:
		return fmt.Sprintf("In %d months", (diff+29)/30)
	}
}

// IsOverdue reports whether the task's start has passed without it being
// completed. Comparisons use local time semantics, matching how dates
// were entered.
func IsOverdue(t models.Task, now time.Time) bool {
	return t.Status != models.TaskCompleted && t.StartAt.Before(now)
}

// EffectiveStatus is the status a task should be displayed with: the
// stored status, except that an overdue task surfaces as overdue. The
// stored status is never mutated.
func EffectiveStatus(t models.Task, now time.Time) models.TaskStatus {
	if t.Status == models.TaskCompleted || t.Status == models.TaskCancelled {
		return t.Status
	}
	if IsOverdue(t, now) {
		return models.TaskOverdue
	}
	return t.Status
}

func FilterByStatus(tasks []models.Task, status models.TaskStatus) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

func FilterByType(tasks []models.Task, typ models.TaskType) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}

func FilterByPriority(tasks []models.Task, priority models.TaskPriority) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Priority == priority {
			out = append(out, t)
		}
	}
	return out
}

// SortByDate returns a copy ordered by start date. Stable.
func SortByDate(tasks []models.Task, ascending bool) []models.Task {
	out := append([]models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].StartAt.Before(out[j].StartAt)
		}
		return out[i].StartAt.After(out[j].StartAt)
	})
	return out
}

// SortByPriority returns a copy ordered urgent > high > medium > low.
// Tasks of equal priority keep their relative input order.
func SortByPriority(tasks []models.Task) []models.Task {
	out := append([]models.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return PriorityRank[out[i].Priority] > PriorityRank[out[j].Priority]
	})
	return out
}

// GroupByStatus buckets tasks by effective status in a single pass. All
// five buckets are always present so views can render empty sections.
func GroupByStatus(tasks []models.Task, now time.Time) map[models.TaskStatus][]models.Task {
	groups := map[models.TaskStatus][]models.Task{
		models.TaskOverdue:    {},
		models.TaskNotStarted: {},
		models.TaskInProgress: {},
		models.TaskCompleted:  {},
		models.TaskCancelled:  {},
	}
	for _, t := range tasks {
		eff := EffectiveStatus(t, now)
		groups[eff] = append(groups[eff], t)
	}
	return groups
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayKey formats a date as the YYYY-MM-DD key used by calendar views
// and the reminder digest table.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDate is the long display form used in digests and API payloads.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
