package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

func TestComposeDigest(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	tasks := []models.Task{
		{Title: "Submit FAFSA", Status: models.TaskInProgress, StartAt: now.AddDate(0, 0, -2)},
		{Title: "Request transcript", Status: models.TaskNotStarted, StartAt: now.AddDate(0, 0, 1)},
	}

	body := composeDigest(tasks, now)

	assert.Contains(t, body, "[OVERDUE] Submit FAFSA — 2 days overdue")
	assert.Contains(t, body, "[due] Request transcript — Tomorrow")
	assert.Contains(t, body, "Sep 2, 2026")
}
