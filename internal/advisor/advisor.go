// Package advisor owns the three LLM-backed operations: college
// recommendations, essay feedback, and scholarship discovery. Every
// response is unmarshalled into a typed struct and validated before
// anything is persisted; failures are returned to the caller rather
// than papered over with canned data.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

// recordStore is the slice of the document store the advisor writes
// through: caching results onto owning records and batch-inserting
// discovered scholarships.
type recordStore interface {
	Update(ctx context.Context, col string, id uuid.UUID, fields map[string]any) error
	BulkCreate(ctx context.Context, col string, recs any) error
}

type Advisor struct {
	AI    ai.Client
	Store recordStore
}

func New(client ai.Client, st recordStore) *Advisor {
	return &Advisor{AI: client, Store: st}
}

// profileSummary renders the profile fields the prompts embed.
func profileSummary(p *models.StudentProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student: %s %s\n", p.FirstName, p.LastName)
	if p.GPA != nil {
		fmt.Fprintf(&b, "GPA: %.2f / %.1f\n", *p.GPA, p.GPAScale)
	}
	if p.ClassRank != nil && p.ClassSize != nil {
		fmt.Fprintf(&b, "Class rank: %d of %d\n", *p.ClassRank, *p.ClassSize)
	}
	if p.SATScore != nil {
		fmt.Fprintf(&b, "SAT composite: %d\n", *p.SATScore)
	}
	if p.ACTScore != nil {
		fmt.Fprintf(&b, "ACT composite: %d\n", *p.ACTScore)
	}

	var aps []models.APScore
	if len(p.APScores) > 0 && json.Unmarshal(p.APScores, &aps) == nil && len(aps) > 0 {
		b.WriteString("AP scores:\n")
		for _, a := range aps {
			fmt.Fprintf(&b, "  - %s: %d (%d)\n", a.Subject, a.Score, a.Year)
		}
	}

	writeList := func(label string, raw json.RawMessage) {
		var items []string
		if len(raw) > 0 && json.Unmarshal(raw, &items) == nil && len(items) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(items, ", "))
		}
	}
	writeList("Extracurriculars", json.RawMessage(p.Extracurriculars))
	writeList("Leadership", json.RawMessage(p.Leadership))
	writeList("Volunteer work", json.RawMessage(p.VolunteerWork))
	writeList("Work experience", json.RawMessage(p.WorkExperience))
	writeList("Awards", json.RawMessage(p.Awards))

	var prefs models.PreferenceSet
	if len(p.Preferences) > 0 && json.Unmarshal(p.Preferences, &prefs) == nil {
		if len(prefs.Locations) > 0 {
			fmt.Fprintf(&b, "Preferred locations: %s\n", strings.Join(prefs.Locations, ", "))
		}
		if prefs.CampusSize != "" {
			fmt.Fprintf(&b, "Preferred campus size: %s\n", prefs.CampusSize)
		}
		if prefs.MaxCost > 0 {
			fmt.Fprintf(&b, "Maximum annual cost: $%.0f\n", prefs.MaxCost)
		}
		if len(prefs.Culture) > 0 {
			fmt.Fprintf(&b, "Campus culture: %s\n", strings.Join(prefs.Culture, ", "))
		}
	}

	fmt.Fprintf(&b, "School mix: %d%% safety, %d%% target, %d%% reach\n",
		p.SafetyPercent, p.TargetPercent, p.ReachPercent)

	return b.String()
}
