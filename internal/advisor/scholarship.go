package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Akr1040317/CollegeApp-sub000/internal/ai"
	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
	"github.com/Akr1040317/CollegeApp-sub000/internal/store"
)

type ScholarshipMatch struct {
	Name        string   `json:"name"`
	Provider    string   `json:"provider"`
	Amount      *float64 `json:"amount"`
	Deadline    string   `json:"deadline"` // YYYY-MM-DD, may be empty
	Eligibility string   `json:"eligibility"`
	MatchScore  float64  `json:"match_score"`
}

type scholarshipResponse struct {
	Scholarships []ScholarshipMatch `json:"scholarships"`
}

func (r *scholarshipResponse) validate() error {
	if len(r.Scholarships) == 0 {
		return fmt.Errorf("response contains no scholarships")
	}
	for i, s := range r.Scholarships {
		if s.Name == "" {
			return fmt.Errorf("scholarship %d is missing a name", i)
		}
		if s.MatchScore < 0 || s.MatchScore > 100 {
			return fmt.Errorf("scholarship %q has match score %v outside 0-100", s.Name, s.MatchScore)
		}
		if s.Deadline != "" {
			if _, err := time.Parse("2006-01-02", s.Deadline); err != nil {
				return fmt.Errorf("scholarship %q has unparseable deadline %q", s.Name, s.Deadline)
			}
		}
	}
	return nil
}

const scholarshipSchema = `{
  "scholarships": [
    {
      "name": "string, scholarship name",
      "provider": "string, awarding organization",
      "amount": "number, award amount in USD, or null",
      "deadline": "string, YYYY-MM-DD, or empty if rolling",
      "eligibility": "string, eligibility summary",
      "match_score": "number, 0-100"
    }
  ]
}`

func buildScholarshipPrompt(p *models.StudentProfile) string {
	return fmt.Sprintf(`Find 8 scholarships this applicant is plausibly eligible for.

%s
Prefer national and regional awards matching the student's academics and activities. Only include scholarships whose eligibility the profile plausibly satisfies.`, profileSummary(p))
}

// DiscoverScholarships asks the model for matching scholarships and
// bulk-creates them in the discovered state. The sync worker mirrors
// them into the search index.
func (a *Advisor) DiscoverScholarships(ctx context.Context, p *models.StudentProfile) ([]models.Scholarship, error) {
	raw, err := a.AI.Invoke(ctx, ai.InvokeRequest{
		Prompt:         buildScholarshipPrompt(p),
		ResponseSchema: scholarshipSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("scholarship discovery call failed: %w", err)
	}

	var resp scholarshipResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("scholarship response is not valid JSON: %w", err)
	}
	if err := resp.validate(); err != nil {
		return nil, fmt.Errorf("scholarship response failed validation: %w", err)
	}

	records := make([]models.Scholarship, 0, len(resp.Scholarships))
	for _, m := range resp.Scholarships {
		rec := models.Scholarship{
			StudentID:   p.ID,
			Name:        m.Name,
			Provider:    m.Provider,
			Amount:      m.Amount,
			Eligibility: m.Eligibility,
			Status:      models.ScholarshipDiscovered,
		}
		score := m.MatchScore
		rec.MatchScore = &score
		if m.Deadline != "" {
			if d, err := time.Parse("2006-01-02", m.Deadline); err == nil {
				rec.Deadline = &d
			}
		}
		records = append(records, rec)
	}

	if err := a.Store.BulkCreate(ctx, store.Scholarships, &records); err != nil {
		return nil, fmt.Errorf("storing discovered scholarships: %w", err)
	}
	return records, nil
}
