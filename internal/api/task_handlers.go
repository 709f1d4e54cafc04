package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/calendar"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

var taskFields = map[string]bool{
	"title": true, "description": true, "start_at": true, "end_at": true,
	"type": true, "status": true, "priority": true, "progress": true,
	"tracker_id": true, "essay_id": true, "college_id": true,
	"reminder_offset_hours": true,
}

// taskView decorates a stored task with the two derived display fields.
type taskView struct {
	models.Task
	EffectiveStatus models.TaskStatus `json:"effective_status"`
	RelativeDate    string            `json:"relative_date"`
}

func toTaskView(t models.Task, now time.Time) taskView {
	return taskView{
		Task:            t,
		EffectiveStatus: calendar.EffectiveStatus(t, now),
		RelativeDate:    calendar.RelativeLabel(t.StartAt, now),
	}
}

func toTaskViews(tasks []models.Task, now time.Time) []taskView {
	out := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskView(t, now))
	}
	return out
}

func validateTaskEnums(typ models.TaskType, status models.TaskStatus, priority models.TaskPriority) string {
	if _, ok := models.ValidTaskType[typ]; !ok {
		return "invalid type"
	}
	if _, ok := models.ValidTaskStatus[status]; !ok {
		return "invalid status"
	}
	if _, ok := models.ValidTaskPriority[priority]; !ok {
		return "invalid priority"
	}
	return ""
}

func (s *Server) studentTasks(r *http.Request, studentID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task
	err := s.Store.Filter(r.Context(), store.Tasks,
		map[string]any{"student_id": studentID}, "start_at", "asc", &tasks)
	return tasks, err
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	tasks, err := s.studentTasks(r, p.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskViews(tasks, time.Now()))
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	var task models.Task
	if err := decodeBody(r, &task); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if task.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if task.StartAt.IsZero() {
		writeError(w, http.StatusBadRequest, "start_at is required")
		return
	}
	if task.Type == "" {
		task.Type = models.TypeTask
	}
	if task.Status == "" {
		task.Status = models.TaskNotStarted
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if msg := validateTaskEnums(task.Type, task.Status, task.Priority); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if task.Progress < 0 || task.Progress > 100 {
		writeError(w, http.StatusBadRequest, "progress must be between 0 and 100")
		return
	}
	task.ID = uuid.UUID{}
	task.StudentID = p.ID

	if err := s.Store.Create(r.Context(), store.Tasks, &task); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskView(task, time.Now()))
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	s.updateOwned(w, r, store.Tasks, taskFields, func(raw map[string]any) string {
		if v, ok := raw["type"].(string); ok {
			if _, valid := models.ValidTaskType[models.TaskType(v)]; !valid {
				return "invalid type"
			}
		}
		if v, ok := raw["status"].(string); ok {
			if _, valid := models.ValidTaskStatus[models.TaskStatus(v)]; !valid {
				return "invalid status"
			}
		}
		if v, ok := raw["priority"].(string); ok {
			if _, valid := models.ValidTaskPriority[models.TaskPriority(v)]; !valid {
				return "invalid priority"
			}
		}
		if v, ok := raw["progress"].(float64); ok && (v < 0 || v > 100) {
			return "progress must be between 0 and 100"
		}
		return ""
	})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	s.deleteOwned(w, r, store.Tasks)
}

type calendarDay struct {
	Date       string     `json:"date"`
	InMonth    bool       `json:"in_month"`
	IsToday    bool       `json:"is_today"`
	DayOfMonth int        `json:"day_of_month"`
	Tasks      []taskView `json:"tasks"`
}

// handleTaskCalendar renders the six-week grid for ?month=YYYY-MM
// (default: the current month), with each day carrying its tasks.
func (s *Server) handleTaskCalendar(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	now := time.Now()
	ref := now
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := time.ParseInLocation("2006-01", m, now.Location())
		if err != nil {
			writeError(w, http.StatusBadRequest, "month must be formatted YYYY-MM")
			return
		}
		ref = parsed
	}

	tasks, err := s.studentTasks(r, p.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	grid := calendar.MonthGrid(ref)
	weeks := make([][]calendarDay, len(grid))
	for wi, week := range grid {
		days := make([]calendarDay, len(week))
		for di, day := range week {
			cell := calendarDay{
				Date:       calendar.DayKey(day),
				InMonth:    day.Month() == ref.Month(),
				IsToday:    calendar.SameDay(day, now),
				DayOfMonth: day.Day(),
				Tasks:      []taskView{},
			}
			for _, t := range tasks {
				if calendar.SameDay(t.StartAt, day) {
					cell.Tasks = append(cell.Tasks, toTaskView(t, now))
				}
			}
			days[di] = cell
		}
		weeks[wi] = days
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"month": ref.Format("2006-01"),
		"weeks": weeks,
	})
}

// handleTasksGrouped is the list-view pipeline: optional equality
// filters, a sort, then the five effective-status buckets.
func (s *Server) handleTasksGrouped(w http.ResponseWriter, r *http.Request) {
	p, _, err := s.profileFor(r)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	tasks, err := s.studentTasks(r, p.ID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	q := r.URL.Query()
	if v := q.Get("status"); v != "" {
		if _, ok := models.ValidTaskStatus[models.TaskStatus(v)]; !ok {
			writeError(w, http.StatusBadRequest, "invalid status")
			return
		}
		tasks = calendar.FilterByStatus(tasks, models.TaskStatus(v))
	}
	if v := q.Get("type"); v != "" {
		if _, ok := models.ValidTaskType[models.TaskType(v)]; !ok {
			writeError(w, http.StatusBadRequest, "invalid type")
			return
		}
		tasks = calendar.FilterByType(tasks, models.TaskType(v))
	}
	if v := q.Get("priority"); v != "" {
		if _, ok := models.ValidTaskPriority[models.TaskPriority(v)]; !ok {
			writeError(w, http.StatusBadRequest, "invalid priority")
			return
		}
		tasks = calendar.FilterByPriority(tasks, models.TaskPriority(v))
	}

	switch q.Get("sort") {
	case "", "date_asc":
		tasks = calendar.SortByDate(tasks, true)
	case "date_desc":
		tasks = calendar.SortByDate(tasks, false)
	case "priority":
		tasks = calendar.SortByPriority(tasks)
	default:
		writeError(w, http.StatusBadRequest, "sort must be date_asc, date_desc, or priority")
		return
	}

	now := time.Now()
	grouped := calendar.GroupByStatus(tasks, now)
	out := make(map[string][]taskView, len(grouped))
	for status, bucket := range grouped {
		out[string(status)] = toTaskViews(bucket, now)
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": out})
}
