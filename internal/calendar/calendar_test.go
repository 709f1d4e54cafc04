package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

func TestMonthGrid(t *testing.T) {
	refs := []time.Time{
		time.Date(2026, time.February, 14, 12, 0, 0, 0, time.Local),
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), // month starting on a Sunday
		time.Date(2024, time.February, 29, 23, 59, 0, 0, time.Local),
		time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local),
	}

	for _, ref := range refs {
		t.Run(ref.Format("2006-01"), func(t *testing.T) {
			grid := MonthGrid(ref)
			require.Len(t, grid, 6)

			total := 0
			containsFirst := false
			var prev time.Time
			for _, week := range grid {
				require.Len(t, week, 7)
				for _, day := range week {
					if total == 0 {
						assert.Equal(t, time.Sunday, day.Weekday())
					} else {
						assert.Equal(t, prev.AddDate(0, 0, 1), day, "days must be consecutive")
					}
					if day.Day() == 1 && day.Month() == ref.Month() && day.Year() == ref.Year() {
						containsFirst = true
					}
					prev = day
					total++
				}
			}
			assert.Equal(t, 42, total)
			assert.True(t, containsFirst, "grid must contain the 1st of the reference month")
		})
	}
}

func TestRelativeLabel(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	tests := []struct {
		name string
		days int
		want string
	}{
		{"one day overdue", -1, "1 days overdue"},
		{"three days overdue", -3, "3 days overdue"},
		{"today", 0, "Today"},
		{"tomorrow", 1, "Tomorrow"},
		{"week boundary", 7, "In 7 days"},
		{"just past a week", 8, "In 2 weeks"},
		{"two weeks exactly", 14, "In 2 weeks"},
		{"month boundary", 30, "In 5 weeks"},
		{"past a month", 31, "In 2 months"},
		{"far out", 90, "In 3 months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := now.AddDate(0, 0, tt.days)
			assert.Equal(t, tt.want, RelativeLabel(target, now))
		})
	}
}

func TestDaysUntilCeiling(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)

	// a partial day forward rounds up to one full day
	assert.Equal(t, 1, DaysUntil(now.Add(2*time.Hour), now))
	// an hour in the past still rounds to zero ("Today")
	assert.Equal(t, 0, DaysUntil(now.Add(-time.Hour), now))
	assert.Equal(t, -1, DaysUntil(now.Add(-25*time.Hour), now))
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name   string
		task   models.Task
		expect bool
	}{
		{"past and in progress", models.Task{Status: models.TaskInProgress, StartAt: past}, true},
		{"past and not started", models.Task{Status: models.TaskNotStarted, StartAt: past}, true},
		{"past but completed", models.Task{Status: models.TaskCompleted, StartAt: past}, false},
		{"future", models.Task{Status: models.TaskNotStarted, StartAt: future}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsOverdue(tt.task, now))
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour * 30)

	assert.Equal(t, models.TaskOverdue,
		EffectiveStatus(models.Task{Status: models.TaskInProgress, StartAt: past}, now))
	assert.Equal(t, models.TaskCompleted,
		EffectiveStatus(models.Task{Status: models.TaskCompleted, StartAt: past}, now))
	assert.Equal(t, models.TaskCancelled,
		EffectiveStatus(models.Task{Status: models.TaskCancelled, StartAt: past}, now))
	assert.Equal(t, models.TaskInProgress,
		EffectiveStatus(models.Task{Status: models.TaskInProgress, StartAt: now.Add(time.Hour)}, now))
}

func TestFilterIdempotence(t *testing.T) {
	tasks := []models.Task{
		{Title: "a", Status: models.TaskInProgress, Type: models.TypeDeadline, Priority: models.PriorityHigh},
		{Title: "b", Status: models.TaskCompleted, Type: models.TypeTask, Priority: models.PriorityLow},
		{Title: "c", Status: models.TaskInProgress, Type: models.TypeTask, Priority: models.PriorityHigh},
	}

	once := FilterByStatus(tasks, models.TaskInProgress)
	twice := FilterByStatus(once, models.TaskInProgress)
	assert.Equal(t, once, twice)

	// filters must not touch the input slice
	assert.Len(t, tasks, 3)
	assert.Equal(t, "b", tasks[1].Title)

	byType := FilterByType(tasks, models.TypeTask)
	assert.Equal(t, byType, FilterByType(byType, models.TypeTask))

	byPrio := FilterByPriority(tasks, models.PriorityHigh)
	assert.Equal(t, byPrio, FilterByPriority(byPrio, models.PriorityHigh))
}

func TestSortByPriorityStable(t *testing.T) {
	tasks := []models.Task{
		{Title: "low-1", Priority: models.PriorityLow},
		{Title: "urgent-1", Priority: models.PriorityUrgent},
		{Title: "high-1", Priority: models.PriorityHigh},
		{Title: "high-2", Priority: models.PriorityHigh},
		{Title: "medium-1", Priority: models.PriorityMedium},
		{Title: "high-3", Priority: models.PriorityHigh},
	}

	sorted := SortByPriority(tasks)

	got := make([]string, len(sorted))
	for i, tk := range sorted {
		got[i] = tk.Title
	}
	assert.Equal(t, []string{"urgent-1", "high-1", "high-2", "high-3", "medium-1", "low-1"}, got)

	// input untouched
	assert.Equal(t, "low-1", tasks[0].Title)
}

func TestSortByDate(t *testing.T) {
	base := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)
	tasks := []models.Task{
		{Title: "second", StartAt: base.AddDate(0, 0, 5)},
		{Title: "first", StartAt: base},
		{Title: "third", StartAt: base.AddDate(0, 0, 9)},
	}

	asc := SortByDate(tasks, true)
	assert.Equal(t, "first", asc[0].Title)
	assert.Equal(t, "third", asc[2].Title)

	desc := SortByDate(tasks, false)
	assert.Equal(t, "third", desc[0].Title)
	assert.Equal(t, "first", desc[2].Title)
}

func TestGroupByStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-72 * time.Hour)
	future := now.Add(72 * time.Hour)

	tasks := []models.Task{
		{Title: "stale", Status: models.TaskInProgress, StartAt: past},
		{Title: "active", Status: models.TaskInProgress, StartAt: future},
		{Title: "fresh", Status: models.TaskNotStarted, StartAt: future},
		{Title: "done", Status: models.TaskCompleted, StartAt: past},
		{Title: "dropped", Status: models.TaskCancelled, StartAt: past},
	}

	groups := GroupByStatus(tasks, now)
	require.Len(t, groups, 5)

	// the stale in-progress task is displayed as overdue...
	require.Len(t, groups[models.TaskOverdue], 1)
	assert.Equal(t, "stale", groups[models.TaskOverdue][0].Title)
	// ...but its stored status is left untouched
	assert.Equal(t, models.TaskInProgress, groups[models.TaskOverdue][0].Status)

	assert.Len(t, groups[models.TaskInProgress], 1)
	assert.Len(t, groups[models.TaskNotStarted], 1)
	assert.Len(t, groups[models.TaskCompleted], 1)
	assert.Len(t, groups[models.TaskCancelled], 1)
}
