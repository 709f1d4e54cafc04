package workers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/calendar"
	"github.com/Akr1040317/CollegeApp-sub000/internal/metrics"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

// dueSoonWindow is how far ahead the digest looks for upcoming tasks.
const dueSoonWindow = 48 * time.Hour

// ReminderWorker emails each student one digest per day listing their
// overdue and due-soon tasks. The reminder_digests unique index makes
// the send idempotent per calendar day.
type ReminderWorker struct {
	DB       *gorm.DB
	Email    ai.Emailer
	Interval time.Duration
}

func (w *ReminderWorker) Run(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.processOnce(ctx, time.Now()); err != nil {
				log.Printf("reminder worker error: %v", err)
			}
		}
	}
}

func (w *ReminderWorker) processOnce(ctx context.Context, now time.Time) error {
	var profiles []models.StudentProfile
	if err := w.DB.WithContext(ctx).Find(&profiles).Error; err != nil {
		return err
	}

	today := calendar.DayKey(now)
	for _, p := range profiles {
		var already int64
		w.DB.Model(&models.ReminderDigest{}).
			Where("student_id = ? AND digest_date = ?", p.ID, today).
			Count(&already)
		if already > 0 {
			continue
		}

		var tasks []models.Task
		if err := w.DB.WithContext(ctx).
			Where("student_id = ? AND status NOT IN ?", p.ID,
				[]models.TaskStatus{models.TaskCompleted, models.TaskCancelled}).
			Where("start_at < ?", now.Add(dueSoonWindow)).
			Order("start_at asc").
			Find(&tasks).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			continue
		}

		body := composeDigest(tasks, now)
		msg := ai.Email{
			To:      p.Email,
			Subject: fmt.Sprintf("You have %d task(s) needing attention", len(tasks)),
			Body:    body,
		}
		if err := w.Email.Send(ctx, msg); err != nil {
			log.Printf("reminder send failed for student=%s: %v", p.ID, err)
			continue
		}

		digest := models.ReminderDigest{
			StudentID:  p.ID,
			DigestDate: today,
			TaskCount:  len(tasks),
			SentAt:     now,
		}
		if err := w.DB.Create(&digest).Error; err != nil {
			log.Printf("recording digest failed for student=%s: %v", p.ID, err)
			continue
		}
		metrics.RemindersSent.Inc()
	}
	return nil
}

func composeDigest(tasks []models.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString("Your application planner:\n\n")
	for _, t := range tasks {
		marker := "due"
		if calendar.IsOverdue(t, now) {
			marker = "OVERDUE"
		}
		fmt.Fprintf(&b, "- [%s] %s — %s (%s)\n",
			marker, t.Title, calendar.RelativeLabel(t.StartAt, now), calendar.FormatDate(t.StartAt))
	}
	return b.String()
}
