package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ---------------- USERS (auth accounts) ----------------
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	PasswordHash   string    `gorm:"not null"`
	DisplayName    string
	ResetToken     *string
	ResetExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ---------------- STUDENT PROFILES ----------------
type ProfileStatus string

const (
	ProfileInProgress ProfileStatus = "in_progress"
	ProfileComplete   ProfileStatus = "complete"
)

// APScore is one element of StudentProfile.APScores.
type APScore struct {
	Subject string `json:"subject"`
	Score   int    `json:"score"`
	Year    int    `json:"year"`
}

// PreferenceSet is stored as JSONB on the profile.
type PreferenceSet struct {
	Locations  []string `json:"locations"`
	Region     string   `json:"region"`
	CampusSize string   `json:"campus_size"` // small | medium | large
	MaxCost    float64  `json:"max_cost"`
	Culture    []string `json:"culture"`
}

type StudentProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	// personal info
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Address     string `json:"address"`

	// academics
	GPA       *float64       `json:"gpa,omitempty"`
	GPAScale  float64        `gorm:"default:4.0" json:"gpa_scale"`
	ClassRank *int           `json:"class_rank,omitempty"`
	ClassSize *int           `json:"class_size,omitempty"`
	SATScore  *int           `json:"sat_score,omitempty"`
	SATMath   *int           `json:"sat_math,omitempty"`
	SATVerbal *int           `json:"sat_verbal,omitempty"`
	ACTScore  *int           `json:"act_score,omitempty"`
	APScores  datatypes.JSON `json:"ap_scores"` // []APScore

	// activities
	Extracurriculars datatypes.JSON `json:"extracurriculars"` // []string
	Leadership       datatypes.JSON `json:"leadership"`       // []string
	VolunteerWork    datatypes.JSON `json:"volunteer_work"`   // []string
	WorkExperience   datatypes.JSON `json:"work_experience"`  // []string
	Awards           datatypes.JSON `json:"awards"`           // []string

	// preferences + school mix
	Preferences   datatypes.JSON `json:"preferences"` // PreferenceSet
	SafetyPercent int            `json:"safety_percent"`
	TargetPercent int            `json:"target_percent"`
	ReachPercent  int            `json:"reach_percent"`

	WizardStep int           `gorm:"default:1" json:"wizard_step"`
	Status     ProfileStatus `gorm:"type:text;default:'in_progress'" json:"status"`

	// cached output of the last recommendation run
	CollegeRecommendations datatypes.JSON `json:"college_recommendations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p StudentProfile) PrimaryID() uuid.UUID { return p.ID }

// ---------------- APPLICATION TRACKERS ----------------
type TrackerStatus string

const (
	TrackerNotStarted TrackerStatus = "not_started"
	TrackerInProgress TrackerStatus = "in_progress"
	TrackerSubmitted  TrackerStatus = "submitted"
	TrackerAccepted   TrackerStatus = "accepted"
	TrackerRejected   TrackerStatus = "rejected"
)

var ValidTrackerStatus = map[TrackerStatus]struct{}{
	TrackerNotStarted: {}, TrackerInProgress: {}, TrackerSubmitted: {},
	TrackerAccepted: {}, TrackerRejected: {},
}

type ApplicationTracker struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID    uuid.UUID      `gorm:"type:uuid;index;not null" json:"student_id"`
	CollegeName  string         `gorm:"not null" json:"college_name"`
	Deadline     *time.Time     `json:"deadline,omitempty"`
	DecisionType string         `json:"decision_type"` // early_action | early_decision | regular | rolling
	Status       TrackerStatus  `gorm:"type:text;default:'not_started'" json:"status"`
	Requirements datatypes.JSON `json:"requirements"` // map[string]bool
	FeeAmount    *float64       `json:"fee_amount,omitempty"`
	FeePaid      bool           `json:"fee_paid"`
	Notes        string         `json:"notes"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (t ApplicationTracker) PrimaryID() uuid.UUID { return t.ID }
func (t ApplicationTracker) OwnerID() uuid.UUID   { return t.StudentID }

// ---------------- ESSAYS ----------------
type EssayStatus string

const (
	EssayDraft    EssayStatus = "draft"
	EssayInReview EssayStatus = "in_review"
	EssayFinal    EssayStatus = "final"
)

var ValidEssayStatus = map[EssayStatus]struct{}{
	EssayDraft: {}, EssayInReview: {}, EssayFinal: {},
}

type Essay struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID      `gorm:"type:uuid;index;not null" json:"student_id"`
	Title     string         `gorm:"not null" json:"title"`
	Prompt    string         `json:"prompt"`
	Content   string         `json:"content"`
	WordCount int            `json:"word_count"`
	CharCount int            `json:"char_count"`
	Status    EssayStatus    `gorm:"type:text;default:'draft'" json:"status"`
	Feedback  datatypes.JSON `json:"feedback"`  // advisor.EssayFeedback
	Reviewers datatypes.JSON `json:"reviewers"` // []string emails
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (e Essay) PrimaryID() uuid.UUID { return e.ID }
func (e Essay) OwnerID() uuid.UUID   { return e.StudentID }

// ---------------- TASKS / CALENDAR EVENTS ----------------
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "not_started"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
	// TaskOverdue is derived, never stored. See calendar.EffectiveStatus.
	TaskOverdue TaskStatus = "overdue"
)

var ValidTaskStatus = map[TaskStatus]struct{}{
	TaskNotStarted: {}, TaskInProgress: {}, TaskCompleted: {}, TaskCancelled: {},
}

type TaskType string

const (
	TypeDeadline TaskType = "deadline"
	TypeTask     TaskType = "task"
	TypeEvent    TaskType = "event"
	TypeReminder TaskType = "reminder"
)

var ValidTaskType = map[TaskType]struct{}{
	TypeDeadline: {}, TypeTask: {}, TypeEvent: {}, TypeReminder: {},
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

var ValidTaskPriority = map[TaskPriority]struct{}{
	PriorityLow: {}, PriorityMedium: {}, PriorityHigh: {}, PriorityUrgent: {},
}

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   uuid.UUID    `gorm:"type:uuid;index;not null" json:"student_id"`
	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	StartAt     time.Time    `gorm:"not null;index" json:"start_at"`
	EndAt       *time.Time   `json:"end_at,omitempty"`
	Type        TaskType     `gorm:"type:text;default:'task'" json:"type"`
	Status      TaskStatus   `gorm:"type:text;default:'not_started'" json:"status"`
	Priority    TaskPriority `gorm:"type:text;default:'medium'" json:"priority"`

	// optional links to the record this task is about
	TrackerID *uuid.UUID `gorm:"type:uuid" json:"tracker_id,omitempty"`
	EssayID   *uuid.UUID `gorm:"type:uuid" json:"essay_id,omitempty"`
	CollegeID *uuid.UUID `gorm:"type:uuid" json:"college_id,omitempty"`

	Progress            int       `json:"progress"` // 0-100
	ReminderOffsetHours *int      `json:"reminder_offset_hours,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (t Task) PrimaryID() uuid.UUID { return t.ID }
func (t Task) OwnerID() uuid.UUID   { return t.StudentID }

// ---------------- SCHOLARSHIPS ----------------
type ScholarshipStatus string

const (
	ScholarshipDiscovered ScholarshipStatus = "discovered"
	ScholarshipInterested ScholarshipStatus = "interested"
	ScholarshipApplying   ScholarshipStatus = "applying"
	ScholarshipSubmitted  ScholarshipStatus = "submitted"
	ScholarshipAwarded    ScholarshipStatus = "awarded"
	ScholarshipRejected   ScholarshipStatus = "rejected"
)

var ValidScholarshipStatus = map[ScholarshipStatus]struct{}{
	ScholarshipDiscovered: {}, ScholarshipInterested: {}, ScholarshipApplying: {},
	ScholarshipSubmitted: {}, ScholarshipAwarded: {}, ScholarshipRejected: {},
}

type Scholarship struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   uuid.UUID         `gorm:"type:uuid;index;not null" json:"student_id"`
	Name        string            `gorm:"not null" json:"name"`
	Provider    string            `json:"provider"`
	Amount      *float64          `json:"amount,omitempty"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Eligibility string            `json:"eligibility"`
	MatchScore  *float64          `json:"match_score,omitempty"`
	Status      ScholarshipStatus `gorm:"type:text;default:'discovered'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (s Scholarship) PrimaryID() uuid.UUID { return s.ID }
func (s Scholarship) OwnerID() uuid.UUID   { return s.StudentID }

// ---------------- SELECTED COLLEGES ----------------
type CollegeCategory string

const (
	CategorySafety CollegeCategory = "safety"
	CategoryTarget CollegeCategory = "target"
	CategoryReach  CollegeCategory = "reach"
)

var ValidCollegeCategory = map[CollegeCategory]struct{}{
	CategorySafety: {}, CategoryTarget: {}, CategoryReach: {},
}

type SelectedCollege struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"student_id"`
	CollegeName       string          `gorm:"not null" json:"college_name"`
	Category          CollegeCategory `gorm:"type:text;default:'target'" json:"category"`
	Notes             string          `json:"notes"`
	Rating            *int            `json:"rating,omitempty"` // 1-5
	ApplicationStatus string          `json:"application_status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (c SelectedCollege) PrimaryID() uuid.UUID { return c.ID }
func (c SelectedCollege) OwnerID() uuid.UUID   { return c.StudentID }

// ---------------- OUTBOX (for search-index sync) ----------------
type Outbox struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EntityType string    `gorm:"index;not null"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null"`
	Op         string    `gorm:"not null"` // UPSERT | DELETE
	Payload    datatypes.JSON
	CreatedAt  time.Time
	Processed  bool `gorm:"default:false"`
}

// ---------------- REMINDER DIGESTS ----------------
// One row per student per day; uniqueness is what makes the daily
// reminder idempotent.
type ReminderDigest struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_digest_student_day"`
	DigestDate string    `gorm:"not null;uniqueIndex:idx_digest_student_day"` // YYYY-MM-DD
	TaskCount  int
	SentAt     time.Time
}
