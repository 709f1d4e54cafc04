package search

import (
	"encoding/json"
	"time"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

type ScholarshipDoc struct {
	StudentID   string     `json:"student_id"`
	Name        string     `json:"name"`
	Provider    string     `json:"provider"`
	Amount      *float64   `json:"amount,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Eligibility string     `json:"eligibility"`
	MatchScore  *float64   `json:"match_score,omitempty"`
	Status      string     `json:"status"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func BuildScholarshipDoc(s models.Scholarship) ([]byte, error) {
	return json.Marshal(ScholarshipDoc{
		StudentID: s.StudentID.String(), Name: s.Name, Provider: s.Provider,
		Amount: s.Amount, Deadline: s.Deadline, Eligibility: s.Eligibility,
		MatchScore: s.MatchScore, Status: string(s.Status), UpdatedAt: s.UpdatedAt,
	})
}

type StudentDoc struct {
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	GPA              *float64  `json:"gpa,omitempty"`
	SATScore         *int      `json:"sat_score,omitempty"`
	ACTScore         *int      `json:"act_score,omitempty"`
	Extracurriculars []string  `json:"extracurriculars"`
	Status           string    `json:"status"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func BuildStudentDoc(p models.StudentProfile) ([]byte, error) {
	var ecs []string
	_ = json.Unmarshal(p.Extracurriculars, &ecs)
	return json.Marshal(StudentDoc{
		FirstName: p.FirstName, LastName: p.LastName, Email: p.Email,
		GPA: p.GPA, SATScore: p.SATScore, ACTScore: p.ACTScore,
		Extracurriculars: ecs, Status: string(p.Status), UpdatedAt: p.UpdatedAt,
	})
}
